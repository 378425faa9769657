package braces

import (
	"context"
	"regexp"
	"time"

	c "github.com/bracekit/braces/codec"
	st "github.com/bracekit/braces/store"
)

// MatchFunc reports whether a candidate string matches a compiled pattern in
// its entirety (full-match semantics, not substring search).
type MatchFunc func(string) bool

// Braces is the compile-and-match façade. All methods are safe for
// concurrent use.
type Braces interface {
	// Compile compiles pattern through the output cache. The cache is keyed
	// by pattern text only: a hit is returned immediately and opt is ignored
	// entirely, even when it differs from the options the entry was compiled
	// under. Callers that need option-sensitive results for the same pattern
	// text must use CompileUncached.
	Compile(pattern string, opt *Options) (Output, error)

	// CompileUncached compiles pattern without consulting or populating the
	// output cache: escape, parse, compile, unescape. Pure; option-sensitive.
	CompileUncached(pattern string, opt *Options) (Output, error)

	// Expand returns the full literal enumeration of pattern. Expansion-mode
	// options are forced: caller-supplied Expand, MakeRe and Unescape values
	// are never honored here. Patterns of length <= 2 cannot contain a
	// complete brace group and are returned as a one-element slice unchanged,
	// without invoking the engine.
	Expand(pattern string, opt *Options) ([]string, error)

	// Match retains, in original order, every candidate matching pattern.
	// When nothing matched: Failglob fails with *NoMatchError; otherwise
	// Nonull/Nullglob return the pattern itself (backslashes removed) as a
	// one-element slice; otherwise the empty slice is returned.
	Match(candidates []string, pattern string, opt *Options) ([]string, error)

	// IsMatch reports whether candidate matches pattern, memoizing the
	// predicate in the matcher cache under the pattern+options key.
	IsMatch(candidate, pattern string, opt *Options) (bool, error)

	// Matcher returns a full-match predicate for pattern.
	Matcher(pattern string, opt *Options) (MatchFunc, error)

	// MakeRe compiles pattern into an anchored regular expression, memoized
	// in the regexp cache under the pattern+options key. Options.NoCache
	// disables only the cache read; the freshly compiled expression is
	// always written back.
	MakeRe(pattern string, opt *Options) (*regexp.Regexp, error)

	// Stats returns a snapshot of cache hit/miss counters.
	Stats() Stats

	// Close releases the output-cache provider.
	Close(context.Context) error
}

// Config tunes a Braces instance. Every field is optional.
type Config struct {
	// Outputs backs the output cache. Nil selects an unbounded in-process
	// store that lives until Close; swap in a bounded provider (ristretto,
	// bigcache) or a shared one (redis) to change that trade-off.
	Outputs st.Provider

	// Codec serializes cached outputs. Nil selects codec.JSON[Record].
	Codec c.Codec[Record]

	// Logger receives cache-traffic logs. Nil disables logging.
	Logger Logger

	// OutputTTL is forwarded to the provider on output-cache writes.
	// 0 means entries never expire.
	OutputTTL time.Duration

	// Disabled bypasses the output cache entirely. The matcher and regexp
	// caches are unaffected.
	Disabled bool
}

// New constructs a Braces instance with its own three stores.
func New(cfg Config) Braces {
	return newFacade(cfg)
}

// std backs the package-level functions. Its caches are created at package
// load and live for the process lifetime; entries are never evicted.
var std = New(Config{})

// Compile calls Compile on the shared package-level instance.
func Compile(pattern string, opt *Options) (Output, error) {
	return std.Compile(pattern, opt)
}

// CompileUncached calls CompileUncached on the shared package-level instance.
func CompileUncached(pattern string, opt *Options) (Output, error) {
	return std.CompileUncached(pattern, opt)
}

// Expand calls Expand on the shared package-level instance.
func Expand(pattern string, opt *Options) ([]string, error) {
	return std.Expand(pattern, opt)
}

// Match calls Match on the shared package-level instance.
func Match(candidates []string, pattern string, opt *Options) ([]string, error) {
	return std.Match(candidates, pattern, opt)
}

// IsMatch calls IsMatch on the shared package-level instance.
func IsMatch(candidate, pattern string, opt *Options) (bool, error) {
	return std.IsMatch(candidate, pattern, opt)
}

// Matcher calls Matcher on the shared package-level instance.
func Matcher(pattern string, opt *Options) (MatchFunc, error) {
	return std.Matcher(pattern, opt)
}

// MakeRe calls MakeRe on the shared package-level instance.
func MakeRe(pattern string, opt *Options) (*regexp.Regexp, error) {
	return std.MakeRe(pattern, opt)
}
