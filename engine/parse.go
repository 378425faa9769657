package engine

import (
	"fmt"
	"strings"
)

// Kind discriminates AST nodes.
type Kind uint8

const (
	// KindSeq is an ordered concatenation of children.
	KindSeq Kind = iota
	// KindText is a literal run (may contain escape placeholders).
	KindText
	// KindAlt is a comma-separated brace group; children are KindSeq branches.
	KindAlt
	// KindRange is a numeric or alphabetic range group.
	KindRange
)

// Node is a brace-expression AST node.
type Node struct {
	Kind  Kind
	Text  string  // KindText
	Nodes []*Node // KindSeq children, KindAlt branches

	// KindRange. Lo and Hi are as written (Lo may exceed Hi for descending
	// ranges); for alphabetic ranges they hold the letter byte values.
	Lo, Hi, Step int
	Pad          int // zero-pad width inferred from the bounds; 0 = none
	Alpha        bool
}

func textNode(s string) *Node { return &Node{Kind: KindText, Text: s} }

// braceFrame tracks one open "{" during parsing.
type braceFrame struct {
	alts  []*Node // completed branches, each a KindSeq
	cur   *Node   // branch being filled
	comma bool
}

// Parse tokenizes an escaped pattern (see Escape) into an AST. Unmatched
// braces and comma-less groups stay literal; complete groups nested inside
// them keep their structure.
func (e *Engine) Parse(pattern string) (*Node, error) {
	if len(pattern) > e.maxLength() {
		return nil, &PatternError{
			Pattern: pattern,
			Reason:  fmt.Sprintf("input longer than %d bytes", e.maxLength()),
		}
	}

	root := &Node{Kind: KindSeq}
	cur := root
	var stack []*braceFrame
	var sb strings.Builder

	flush := func() {
		if sb.Len() > 0 {
			cur.Nodes = append(cur.Nodes, textNode(sb.String()))
			sb.Reset()
		}
	}
	parent := func() *Node {
		if len(stack) > 0 {
			return stack[len(stack)-1].cur
		}
		return root
	}

	for i := 0; i < len(pattern); i++ {
		switch ch := pattern[i]; ch {
		case '\\':
			// unrecognized escape left by Escape; keep both bytes literal
			sb.WriteByte(ch)
			if i+1 < len(pattern) {
				i++
				sb.WriteByte(pattern[i])
			}
		case '{':
			flush()
			fr := &braceFrame{cur: &Node{Kind: KindSeq}}
			stack = append(stack, fr)
			cur = fr.cur
		case ',':
			if len(stack) == 0 {
				sb.WriteByte(ch)
				break
			}
			flush()
			fr := stack[len(stack)-1]
			fr.comma = true
			fr.alts = append(fr.alts, fr.cur)
			fr.cur = &Node{Kind: KindSeq}
			cur = fr.cur
		case '}':
			if len(stack) == 0 {
				sb.WriteByte(ch)
				break
			}
			flush()
			fr := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			fr.alts = append(fr.alts, fr.cur)
			nodes, err := e.closeGroup(fr)
			if err != nil {
				return nil, err
			}
			cur = parent()
			cur.Nodes = append(cur.Nodes, nodes...)
		default:
			sb.WriteByte(ch)
		}
	}
	flush()

	// Unmatched "{": unwind innermost-first, keeping the group literal.
	for len(stack) > 0 {
		fr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nodes := []*Node{textNode("{")}
		for _, alt := range fr.alts {
			nodes = append(nodes, alt.Nodes...)
			nodes = append(nodes, textNode(","))
		}
		nodes = append(nodes, fr.cur.Nodes...)
		cur = parent()
		cur.Nodes = append(cur.Nodes, nodes...)
	}
	return root, nil
}

// closeGroup turns a completed frame into AST nodes. A comma-less group is
// either a range or a literal "{...}" whose inner nodes keep their structure.
func (e *Engine) closeGroup(fr *braceFrame) ([]*Node, error) {
	if fr.comma {
		return []*Node{{Kind: KindAlt, Nodes: fr.alts}}, nil
	}
	branch := fr.alts[0]
	if len(branch.Nodes) == 1 && branch.Nodes[0].Kind == KindText {
		rn, ok, err := e.parseRange(branch.Nodes[0].Text)
		if err != nil {
			return nil, err
		}
		if ok {
			return []*Node{rn}, nil
		}
	}
	nodes := []*Node{textNode("{")}
	nodes = append(nodes, branch.Nodes...)
	nodes = append(nodes, textNode("}"))
	return nodes, nil
}
