package braces

import (
	"strconv"

	"github.com/bracekit/braces/internal/util"
)

// Options control a single compile or match call. The zero value is the
// documented default for every field. Options are never mutated by the
// façade; Expand copies them before forcing its mode.
type Options struct {
	// Expand requests expansion-mode output (the full literal enumeration)
	// instead of a regex source string.
	Expand bool

	// MakeRe requests regex-mode output. Mutually redundant with the default
	// mode; kept so Expand can force it off explicitly.
	MakeRe bool

	// Unescape drops the escaping backslash from escaped metacharacters in
	// expansion output ("\{" becomes "{"). Regex output always resolves
	// escapes into quoted literals regardless of this flag.
	Unescape bool

	// Nodupes removes duplicate strings from expansion output, keeping the
	// first occurrence.
	Nodupes bool

	// NoCache disables reads from the regexp cache. Writes still happen, and
	// the output cache is unaffected. Excluded from cache-key construction.
	NoCache bool

	// Failglob makes Match fail with *NoMatchError when nothing matched.
	Failglob bool

	// Nonull makes Match return the pattern itself (backslashes removed)
	// when nothing matched. Failglob takes precedence.
	Nonull bool

	// Nullglob is an alias for Nonull kept for bash familiarity.
	Nullglob bool

	// MaxLength caps the pattern length accepted by the engine.
	// 0 means engine.DefaultMaxLength.
	MaxLength int

	// RangeLimit caps the number of elements a single range may produce.
	// 0 means engine.DefaultRangeLimit; negative disables the cap.
	RangeLimit int
}

// get normalizes a possibly-nil *Options to a value.
func (o *Options) get() Options {
	if o == nil {
		return Options{}
	}
	return *o
}

// cacheKey derives the canonical identity for the matcher and regexp caches:
// the pattern followed by a ";name=value" pair for every non-default field,
// sorted by name. NoCache is a cache-control directive, not a compilation
// input, so it never alters the key: a write performed under NoCache must be
// observable by a later cached call with the same remaining options.
func (o *Options) cacheKey(pattern string) string {
	v := o.get()
	var pairs []string
	add := func(name string, set bool) {
		if set {
			pairs = append(pairs, name+"=true")
		}
	}
	add("expand", v.Expand)
	add("makeRe", v.MakeRe)
	add("unescape", v.Unescape)
	add("nodupes", v.Nodupes)
	add("failglob", v.Failglob)
	add("nonull", v.Nonull)
	add("nullglob", v.Nullglob)
	if v.MaxLength != 0 {
		pairs = append(pairs, "maxLength="+strconv.Itoa(v.MaxLength))
	}
	if v.RangeLimit != 0 {
		pairs = append(pairs, "rangeLimit="+strconv.Itoa(v.RangeLimit))
	}
	return util.CanonicalKey(pattern, pairs)
}
