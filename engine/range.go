package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// parseRange recognizes "lo..hi" and "lo..hi..step" group bodies with
// integer or single-letter bounds. ok is false when body is not range
// syntax (the group then stays literal); the error fires only when the
// range is syntactically valid but produces more elements than the limit.
func (e *Engine) parseRange(body string) (rn *Node, ok bool, err error) {
	parts := strings.Split(body, "..")
	if len(parts) < 2 || len(parts) > 3 {
		return nil, false, nil
	}
	step := 1
	if len(parts) == 3 {
		n, aerr := strconv.Atoi(parts[2])
		if aerr != nil || n == 0 {
			return nil, false, nil
		}
		if n < 0 {
			n = -n
		}
		step = n
	}

	lo, hi := parts[0], parts[1]
	rn = &Node{Kind: KindRange, Step: step}
	switch {
	case isInteger(lo) && isInteger(hi):
		rn.Lo, _ = strconv.Atoi(lo)
		rn.Hi, _ = strconv.Atoi(hi)
		if zeroPadded(lo) || zeroPadded(hi) {
			rn.Pad = max(len(lo), len(hi))
		}
	case isLetter(lo) && isLetter(hi):
		rn.Alpha = true
		rn.Lo = int(lo[0])
		rn.Hi = int(hi[0])
	default:
		return nil, false, nil
	}

	if limit := e.rangeLimit(); limit > 0 {
		if count := rangeCount(rn); count > uint64(limit) {
			return nil, false, &PatternError{
				Pattern: body,
				Reason:  fmt.Sprintf("range produces %d elements, limit is %d", count, limit),
			}
		}
	}
	return rn, true, nil
}

// rangeCount returns the number of elements the range produces. The span is
// computed in uint64 so bounds near the integer limits cannot wrap to a
// negative count and slip past the limit check; a range covering the whole
// int domain with step 1 saturates at the maximum.
func rangeCount(n *Node) uint64 {
	lo, hi := n.Lo, n.Hi
	if lo > hi {
		lo, hi = hi, lo
	}
	span := uint64(hi) - uint64(lo)
	q := span / uint64(n.Step)
	if q+1 == 0 {
		return q
	}
	return q + 1
}

// rangeValues enumerates the range in written order (descending when the
// bounds are written high-to-low). The loop is count-driven so a bound at
// the integer limit cannot wrap the loop variable past the terminator.
func rangeValues(n *Node) []string {
	count := rangeCount(n)
	capHint := 0
	if count <= uint64(int(^uint(0)>>1)) {
		capHint = int(count)
	}
	out := make([]string, 0, capHint)
	stride := n.Step
	if n.Hi < n.Lo {
		stride = -stride
	}
	v := n.Lo
	for i := uint64(0); i < count; i++ {
		switch {
		case n.Alpha:
			out = append(out, string(rune(v)))
		case n.Pad > 0:
			out = append(out, fmt.Sprintf("%0*d", n.Pad, v))
		default:
			out = append(out, strconv.Itoa(v))
		}
		v += stride
	}
	return out
}

func isInteger(s string) bool {
	if strings.HasPrefix(s, "-") {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// zeroPadded reports a leading zero that is not the number itself ("01",
// "-007"), which switches the whole range to fixed-width output.
func zeroPadded(s string) bool {
	if strings.HasPrefix(s, "-") {
		s = s[1:]
	}
	return len(s) > 1 && s[0] == '0'
}

func isLetter(s string) bool {
	if len(s) != 1 {
		return false
	}
	c := s[0]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
