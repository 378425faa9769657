package util

import (
	"sort"
	"strings"
)

// CanonicalKey builds a deterministic cache key from a pattern and its
// option pairs: the pairs are sorted and appended as ";name=value", so two
// equal option sets always produce the same key regardless of the order
// they were collected in.
func CanonicalKey(pattern string, pairs []string) string {
	if len(pairs) == 0 {
		return pattern
	}
	s := make([]string, len(pairs))
	copy(s, pairs)
	sort.Strings(s)
	return pattern + ";" + strings.Join(s, ";")
}
