package braces

// Output is the result of a compile: exactly one of the two variants below.
// The variant mirrors what the engine decided from the options; the façade
// never changes the mode.
type Output interface {
	isOutput()
}

// Expansion is the expand-mode variant: the ordered literal enumeration of
// every string the pattern denotes.
type Expansion []string

func (Expansion) isOutput() {}

// Pattern is the regex-mode variant: a single regular-expression source
// string equivalent to matching any string the pattern denotes.
type Pattern string

func (Pattern) isOutput() {}

// Record is the storable form of an Output, crossing the output-cache Codec.
// Use `msgpack`/`cbor` tags when swapping codecs that need explicit control.
type Record struct {
	Expanded bool     `json:"expanded,omitempty" msgpack:"e" cbor:"1,keyasint,omitempty"`
	Regex    string   `json:"regex,omitempty" msgpack:"r" cbor:"2,keyasint,omitempty"`
	List     []string `json:"list,omitempty" msgpack:"l" cbor:"3,keyasint,omitempty"`
}

func newRecord(out Output) Record {
	switch v := out.(type) {
	case Expansion:
		return Record{Expanded: true, List: v}
	case Pattern:
		return Record{Regex: string(v)}
	}
	return Record{}
}

func (r Record) output() Output {
	if r.Expanded {
		if r.List == nil {
			return Expansion{}
		}
		return Expansion(r.List)
	}
	return Pattern(r.Regex)
}
