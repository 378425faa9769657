package engine

import "strings"

// Escape placeholders. Private byte values that cannot appear meaningfully
// in a pattern; they survive parsing as plain text and are resolved by
// Unescape (expansion output) or by the regex translator (quoted literals).
const (
	phBackslash  = "\x01"
	phLeftBrace  = "\x02"
	phRightBrace = "\x03"
	phComma      = "\x04"
	phDot        = "\x05"
)

// Escape rewrites backslash-escaped metacharacters ("\\", "\{", "\}", "\,",
// "\.") to placeholder bytes so the parser sees them as plain text.
// Unrecognized escape sequences are left alone. Reversed by Unescape.
func Escape(s string) string {
	if !strings.Contains(s, `\`) { // short-cut without a string copy
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			b.WriteByte(c)
			continue
		}
		switch s[i+1] {
		case '\\':
			b.WriteString(phBackslash)
			i++
		case '{':
			b.WriteString(phLeftBrace)
			i++
		case '}':
			b.WriteString(phRightBrace)
			i++
		case ',':
			b.WriteString(phComma)
			i++
		case '.':
			b.WriteString(phDot)
			i++
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

var (
	unescapeDrop = strings.NewReplacer(
		phBackslash, `\`,
		phLeftBrace, "{",
		phRightBrace, "}",
		phComma, ",",
		phDot, ".",
	)
	unescapeKeep = strings.NewReplacer(
		phBackslash, `\\`,
		phLeftBrace, `\{`,
		phRightBrace, `\}`,
		phComma, `\,`,
		phDot, `\.`,
	)
)

// Unescape resolves the placeholders introduced by Escape. When drop is
// true the escaping backslash is removed ("\{" becomes "{"); otherwise the
// original backslash sequence is restored.
func Unescape(s string, drop bool) string {
	if drop {
		return unescapeDrop.Replace(s)
	}
	return unescapeKeep.Replace(s)
}

// resolvePlaceholders is Unescape with drop semantics, used by the regex
// translator which re-quotes the literals itself.
func resolvePlaceholders(s string) string {
	return unescapeDrop.Replace(s)
}
