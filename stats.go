package braces

import "sync/atomic"

// Stats is a point-in-time snapshot of cache effectiveness, one hit/miss
// pair per store. Useful for hit-ratio analysis and for asserting in tests
// that a cached path did not recompile.
type Stats struct {
	OutputHits    uint64
	OutputMisses  uint64
	MatcherHits   uint64
	MatcherMisses uint64
	RegexHits     uint64
	RegexMisses   uint64
}

type counters struct {
	outputHits    atomic.Uint64
	outputMisses  atomic.Uint64
	matcherHits   atomic.Uint64
	matcherMisses atomic.Uint64
	regexHits     atomic.Uint64
	regexMisses   atomic.Uint64
}

func (c *counters) snapshot() Stats {
	return Stats{
		OutputHits:    c.outputHits.Load(),
		OutputMisses:  c.outputMisses.Load(),
		MatcherHits:   c.matcherHits.Load(),
		MatcherMisses: c.matcherMisses.Load(),
		RegexHits:     c.regexHits.Load(),
		RegexMisses:   c.regexMisses.Load(),
	}
}
