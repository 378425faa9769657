package braces

import "testing"

func TestCacheKeyCanonical(t *testing.T) {
	var nilOpts *Options
	if got := nilOpts.cacheKey("a{b,c}"); got != "a{b,c}" {
		t.Fatalf("nil options key = %q, want bare pattern", got)
	}
	if got := (&Options{}).cacheKey("a{b,c}"); got != "a{b,c}" {
		t.Fatalf("default options key = %q, want bare pattern", got)
	}

	got := (&Options{Failglob: true, Expand: true, MaxLength: 100}).cacheKey("p")
	want := "p;expand=true;failglob=true;maxLength=100"
	if got != want {
		t.Fatalf("key = %q, want %q", got, want)
	}
}

// TestCacheKeyDeterministic: equal option sets always produce equal keys.
func TestCacheKeyDeterministic(t *testing.T) {
	a := &Options{Nonull: true, Nodupes: true, RangeLimit: 9}
	b := &Options{RangeLimit: 9, Nodupes: true, Nonull: true}
	if a.cacheKey("p") != b.cacheKey("p") {
		t.Fatalf("keys differ: %q vs %q", a.cacheKey("p"), b.cacheKey("p"))
	}
}

// TestCacheKeyExcludesNoCache: NoCache is a cache-control directive; a write
// performed under it must be observable by a later cached call.
func TestCacheKeyExcludesNoCache(t *testing.T) {
	with := (&Options{NoCache: true, Expand: true}).cacheKey("p")
	without := (&Options{Expand: true}).cacheKey("p")
	if with != without {
		t.Fatalf("NoCache must not alter the key: %q vs %q", with, without)
	}
}

func TestCacheKeyDistinguishesOptionSets(t *testing.T) {
	a := (&Options{Expand: true}).cacheKey("p")
	b := (&Options{Unescape: true}).cacheKey("p")
	if a == b {
		t.Fatalf("distinct option sets collided: %q", a)
	}
}
