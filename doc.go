// Package braces compiles brace-expression patterns (e.g. "a{b,c}d",
// "{1..10}") to either the full literal enumeration or a single regular
// expression, and uses the result to filter or test candidate strings.
// Compiled results are memoized in three independent stores.
//
// Components:
//   - engine: the pattern engine. Parses an escaped pattern into an AST and
//     compiles it to an expansion list or a regex source string.
//   - store.Provider: byte store backing the output cache (in-process memory
//     by default; Ristretto, BigCache and Redis providers are available).
//   - codec.Codec[V]: (de)serializes cached outputs (JSON by default).
//
// Stores:
//
//	output cache   pattern text -> Output         (options-blind; see Compile)
//	matcher cache  pattern;opts -> MatchFunc      (in-process)
//	regexp cache   pattern;opts -> *regexp.Regexp (in-process; NoCache gates
//	               only the read path, never the write)
//
// The package-level functions share one process-wide instance whose caches
// live for the process lifetime and are never evicted. Construct an instance
// with New to control the backing store, serialization, logging and lifetime,
// e.g. for test isolation or a bounded cache.
package braces
