package engine

import (
	"regexp"
	"strings"
)

// expand returns the full enumeration of n: alternatives in listed order,
// sequences as the left-to-right cartesian product.
func expand(n *Node) []string {
	switch n.Kind {
	case KindText:
		return []string{n.Text}
	case KindRange:
		return rangeValues(n)
	case KindAlt:
		var out []string
		for _, branch := range n.Nodes {
			out = append(out, expand(branch)...)
		}
		return out
	default: // KindSeq
		out := []string{""}
		for _, child := range n.Nodes {
			parts := expand(child)
			if len(parts) == 1 {
				for i := range out {
					out[i] += parts[0]
				}
				continue
			}
			next := make([]string, 0, len(out)*len(parts))
			for _, prefix := range out {
				for _, p := range parts {
					next = append(next, prefix+p)
				}
			}
			out = next
		}
		return out
	}
}

// translate emits an unanchored regex source string equivalent to matching
// any string n denotes. Literal runs are quoted; escape placeholders resolve
// to their quoted literal character.
func translate(n *Node) string {
	var b strings.Builder
	writeRegex(&b, n)
	return b.String()
}

func writeRegex(b *strings.Builder, n *Node) {
	switch n.Kind {
	case KindText:
		b.WriteString(regexp.QuoteMeta(resolvePlaceholders(n.Text)))
	case KindRange:
		b.WriteString(rangeRegex(n))
	case KindAlt:
		b.WriteString("(?:")
		for i, branch := range n.Nodes {
			if i > 0 {
				b.WriteByte('|')
			}
			writeRegex(b, branch)
		}
		b.WriteByte(')')
	default: // KindSeq
		for _, child := range n.Nodes {
			writeRegex(b, child)
		}
	}
}

// rangeRegex prefers a character class for contiguous single-character
// ranges and falls back to a quoted alternation.
func rangeRegex(n *Node) string {
	if n.Step == 1 && n.Pad == 0 {
		lo, hi := n.Lo, n.Hi
		if lo > hi {
			lo, hi = hi, lo
		}
		switch {
		case !n.Alpha && lo >= 0 && hi <= 9:
			return "[" + digitChar(lo) + "-" + digitChar(hi) + "]"
		case n.Alpha && sameLetterRun(lo, hi):
			return "[" + string(rune(lo)) + "-" + string(rune(hi)) + "]"
		}
	}
	vals := rangeValues(n)
	for i, v := range vals {
		vals[i] = regexp.QuoteMeta(v)
	}
	return "(?:" + strings.Join(vals, "|") + ")"
}

func digitChar(d int) string {
	return string(rune('0' + d))
}

// sameLetterRun reports that lo..hi (ascending) stays within a single
// letter run, so a character class cannot pick up punctuation between
// 'Z' and 'a'.
func sameLetterRun(lo, hi int) bool {
	return (lo >= 'a' && hi <= 'z') || (lo >= 'A' && hi <= 'Z')
}
