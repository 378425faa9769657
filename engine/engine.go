// Package engine parses brace-expression patterns into an AST and compiles
// the AST to either the full literal enumeration (expand mode) or a regular
// expression source string (regex mode).
//
// Malformed input never fails; it degrades to literal text the way bash
// treats it: an unmatched "{", a comma-less group and an invalid range all
// stay literal, while complete groups nested inside them still expand.
// The engine fails only on inputs over MaxLength and on ranges producing
// more than RangeLimit elements.
package engine

import "fmt"

const (
	// DefaultMaxLength is the pattern length cap applied when
	// Options.MaxLength is zero.
	DefaultMaxLength = 65536

	// DefaultRangeLimit is the per-range element cap applied when
	// Options.RangeLimit is zero.
	DefaultRangeLimit = 10000
)

// Options scope an Engine instance.
type Options struct {
	// Expand selects expansion-mode compilation; otherwise Compile emits a
	// regex source string. The mode is decided here and nowhere else.
	Expand bool

	// MaxLength caps the input length accepted by Parse. 0 means
	// DefaultMaxLength.
	MaxLength int

	// RangeLimit caps the number of elements a single range may produce.
	// 0 means DefaultRangeLimit; negative disables the cap.
	RangeLimit int
}

// Engine compiles brace expressions under a fixed option set.
type Engine struct {
	opts Options
}

func New(opts Options) *Engine {
	return &Engine{opts: opts}
}

// Mode tags a compile Result.
type Mode int

const (
	ModeRegex Mode = iota
	ModeExpand
)

// Result is the raw compiler output. Exactly one of List and Regex is
// populated, according to Mode. Strings still carry escape placeholders;
// callers unescape them (see Unescape).
type Result struct {
	Mode  Mode
	List  []string
	Regex string
}

// Compile compiles a parsed AST under the engine's options.
func (e *Engine) Compile(ast *Node) (Result, error) {
	if e.opts.Expand {
		return Result{Mode: ModeExpand, List: expand(ast)}, nil
	}
	return Result{Mode: ModeRegex, Regex: translate(ast)}, nil
}

// MakeRe compiles a raw (unescaped) pattern directly into an anchored
// regular expression source string suitable for regexp.Compile.
func (e *Engine) MakeRe(pattern string) (string, error) {
	ast, err := e.Parse(Escape(pattern))
	if err != nil {
		return "", err
	}
	return "^(?:" + translate(ast) + ")$", nil
}

func (e *Engine) maxLength() int {
	if e.opts.MaxLength > 0 {
		return e.opts.MaxLength
	}
	return DefaultMaxLength
}

func (e *Engine) rangeLimit() int {
	if e.opts.RangeLimit != 0 {
		return e.opts.RangeLimit
	}
	return DefaultRangeLimit
}

// PatternError reports a pattern the engine refused to process.
type PatternError struct {
	Pattern string
	Reason  string
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("engine: cannot process %q: %s", e.Pattern, e.Reason)
}
