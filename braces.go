package braces

import (
	"context"
	"regexp"
	"strings"
	"sync"
	"time"

	c "github.com/bracekit/braces/codec"
	"github.com/bracekit/braces/engine"
	"github.com/bracekit/braces/internal/wire"
	st "github.com/bracekit/braces/store"
	"github.com/bracekit/braces/store/memory"
)

type facade struct {
	outputs st.Provider
	codec   c.Codec[Record]
	log     Logger
	ttl     time.Duration
	enabled bool

	matchers sync.Map // cache key -> MatchFunc
	regexps  sync.Map // cache key -> *regexp.Regexp

	stats counters
}

func newFacade(cfg Config) *facade {
	f := &facade{
		ttl:     cfg.OutputTTL,
		enabled: !cfg.Disabled,
	}

	// defaults
	f.log = coalesce[Logger](cfg.Logger, NopLogger{})
	f.codec = coalesce[c.Codec[Record]](cfg.Codec, c.JSON[Record]{})
	if cfg.Outputs != nil {
		f.outputs = cfg.Outputs
	} else {
		f.outputs = memory.New()
	}
	return f
}

func (f *facade) Close(ctx context.Context) error {
	return f.outputs.Close(ctx)
}

func (f *facade) Stats() Stats { return f.stats.snapshot() }

// outputKey isolates output-cache entries in the provider keyspace.
func outputKey(pattern string) string { return "output:" + pattern }

func (f *facade) Compile(pattern string, opt *Options) (Output, error) {
	ctx := context.Background()
	key := outputKey(pattern)
	if f.enabled {
		if out, ok := f.readOutput(ctx, key); ok {
			f.stats.outputHits.Add(1)
			f.log.Debug("output cache hit", Fields{"pattern": pattern})
			return out, nil
		}
	}
	f.stats.outputMisses.Add(1)

	out, err := f.CompileUncached(pattern, opt)
	if err != nil {
		return nil, err
	}
	if f.enabled {
		f.writeOutput(ctx, key, pattern, out)
	}
	return out, nil
}

// readOutput returns a cached output on hit. Corrupt or undecodable entries
// are deleted so the next call recompiles.
func (f *facade) readOutput(ctx context.Context, key string) (Output, bool) {
	raw, ok, err := f.outputs.Get(ctx, key)
	if err != nil {
		f.log.Warn("output cache read error", Fields{"key": key, "err": err})
		return nil, false
	}
	if !ok {
		return nil, false
	}
	payload, err := wire.Decode(raw)
	if err == nil {
		rec, derr := f.codec.Decode(payload)
		if derr == nil {
			return rec.output(), true
		}
		err = derr
	}
	// self-heal corrupt
	_ = f.outputs.Del(ctx, key)
	f.log.Warn("dropped corrupt output entry", Fields{"key": key, "err": err})
	return nil, false
}

// writeOutput is best-effort; failures are logged, never surfaced.
func (f *facade) writeOutput(ctx context.Context, key, pattern string, out Output) {
	payload, err := f.codec.Encode(newRecord(out))
	if err != nil {
		f.log.Warn("output encode failed", Fields{"pattern": pattern, "err": err})
		return
	}
	b := wire.Encode(payload)
	ok, err := f.outputs.Set(ctx, key, b, int64(len(b)), f.ttl)
	if err != nil {
		f.log.Warn("output cache write error", Fields{"pattern": pattern, "err": err})
		return
	}
	if !ok {
		f.log.Debug("output write rejected by provider (pressure)", Fields{"pattern": pattern})
	}
}

func (f *facade) CompileUncached(pattern string, opt *Options) (Output, error) {
	v := opt.get()
	eng := engine.New(engineOptions(v))
	ast, err := eng.Parse(engine.Escape(pattern))
	if err != nil {
		return nil, err
	}
	res, err := eng.Compile(ast)
	if err != nil {
		return nil, err
	}
	if res.Mode != engine.ModeExpand {
		return Pattern(res.Regex), nil
	}

	list := make([]string, 0, len(res.List))
	var seen map[string]struct{}
	if v.Nodupes {
		seen = make(map[string]struct{}, len(res.List))
	}
	for _, s := range res.List {
		u := engine.Unescape(s, v.Unescape)
		if seen != nil {
			if _, dup := seen[u]; dup {
				continue
			}
			seen[u] = struct{}{}
		}
		list = append(list, u)
	}
	return Expansion(list), nil
}

func (f *facade) Expand(pattern string, opt *Options) ([]string, error) {
	// No pattern of length <= 2 can contain a complete brace group.
	if len(pattern) <= 2 {
		return []string{pattern}, nil
	}
	forced := opt.get()
	forced.Expand = true
	forced.MakeRe = false
	forced.Unescape = true
	out, err := f.Compile(pattern, &forced)
	if err != nil {
		return nil, err
	}
	if exp, ok := out.(Expansion); ok {
		return exp, nil
	}
	// The options-blind output cache may hold a regex-mode entry for this
	// pattern text; its single string is returned as-is.
	return []string{string(out.(Pattern))}, nil
}

func (f *facade) Match(candidates []string, pattern string, opt *Options) ([]string, error) {
	isMatch, err := f.Matcher(pattern, opt)
	if err != nil {
		return nil, err
	}
	matched := make([]string, 0, len(candidates))
	for _, cand := range candidates {
		if isMatch(cand) {
			matched = append(matched, cand)
		}
	}
	if len(matched) > 0 {
		return matched, nil
	}
	v := opt.get()
	switch {
	case v.Failglob:
		return nil, &NoMatchError{Pattern: pattern}
	case v.Nonull || v.Nullglob:
		return []string{strings.ReplaceAll(pattern, `\`, "")}, nil
	}
	return matched, nil
}

func (f *facade) IsMatch(candidate, pattern string, opt *Options) (bool, error) {
	key := opt.cacheKey(pattern)
	if v, ok := f.matchers.Load(key); ok {
		f.stats.matcherHits.Add(1)
		return v.(MatchFunc)(candidate), nil
	}
	f.stats.matcherMisses.Add(1)
	fn, err := f.Matcher(pattern, opt)
	if err != nil {
		return false, err
	}
	f.matchers.Store(key, fn)
	return fn(candidate), nil
}

func (f *facade) Matcher(pattern string, opt *Options) (MatchFunc, error) {
	re, err := f.MakeRe(pattern, opt)
	if err != nil {
		return nil, err
	}
	// re is fully anchored by the engine, so MatchString is a whole-string
	// test, not a substring search.
	return re.MatchString, nil
}

func (f *facade) MakeRe(pattern string, opt *Options) (*regexp.Regexp, error) {
	v := opt.get()
	key := opt.cacheKey(pattern)
	if !v.NoCache {
		if cached, ok := f.regexps.Load(key); ok {
			f.stats.regexHits.Add(1)
			return cached.(*regexp.Regexp), nil
		}
	}
	f.stats.regexMisses.Add(1)

	eng := engine.New(engineOptions(v))
	src, err := eng.MakeRe(pattern)
	if err != nil {
		return nil, err
	}
	re, err := regexp.Compile(src)
	if err != nil {
		return nil, err
	}
	// NoCache gates only the read above; the write is unconditional.
	f.regexps.Store(key, re)
	return re, nil
}

func engineOptions(v Options) engine.Options {
	return engine.Options{
		Expand:     v.Expand && !v.MakeRe,
		MaxLength:  v.MaxLength,
		RangeLimit: v.RangeLimit,
	}
}
