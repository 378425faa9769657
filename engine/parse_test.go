package engine

import (
	"errors"
	"strings"
	"testing"
)

func TestParseTooLong(t *testing.T) {
	e := New(Options{MaxLength: 8})
	_, err := e.Parse(strings.Repeat("a", 9))

	var perr *PatternError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *PatternError, got %v", err)
	}
	if !strings.Contains(perr.Reason, "8") {
		t.Fatalf("reason should name the limit, got %q", perr.Reason)
	}
}

func TestParseAtMaxLength(t *testing.T) {
	e := New(Options{MaxLength: 8})
	if _, err := e.Parse(strings.Repeat("a", 8)); err != nil {
		t.Fatalf("pattern at the limit should parse: %v", err)
	}
}

func TestParseRangeLimit(t *testing.T) {
	e := New(Options{RangeLimit: 10})
	_, err := e.Parse("{1..100}")

	var perr *PatternError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *PatternError, got %v", err)
	}
}

func TestParseRangeLimitDisabled(t *testing.T) {
	e := New(Options{RangeLimit: -1})
	if _, err := e.Parse("{1..50000}"); err != nil {
		t.Fatalf("negative RangeLimit should disable the cap: %v", err)
	}
}

func TestParseRangeHugeBounds(t *testing.T) {
	e := New(Options{})
	cases := []string{
		"{0..9223372036854775807}",
		"{-9223372036854775808..9223372036854775807}",
		"{-9223372036854775808..9223372036854775807..2}",
		"{9223372036854775807..-9223372036854775808}",
	}
	for _, p := range cases {
		_, err := e.Parse(p)
		var perr *PatternError
		if !errors.As(err, &perr) {
			t.Errorf("Parse(%q): expected *PatternError, got %v", p, err)
		}
	}
}

func TestParseRangeWithinLimit(t *testing.T) {
	e := New(Options{RangeLimit: 10})
	// step reduces the element count below the cap
	if _, err := e.Parse("{1..100..20}"); err != nil {
		t.Fatalf("stepped range within limit should parse: %v", err)
	}
}

func TestParseRangeNode(t *testing.T) {
	e := New(Options{})
	root, err := e.Parse("{-03..4..2}")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(root.Nodes) != 1 || root.Nodes[0].Kind != KindRange {
		t.Fatalf("expected a single range node, got %+v", root.Nodes)
	}
	rn := root.Nodes[0]
	if rn.Lo != -3 || rn.Hi != 4 || rn.Step != 2 || rn.Pad != 3 || rn.Alpha {
		t.Fatalf("range fields = %+v", rn)
	}
}

func TestParseNestedStructure(t *testing.T) {
	e := New(Options{})
	root, err := e.Parse("a{b,c}")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(root.Nodes) != 2 {
		t.Fatalf("expected text + group, got %d nodes", len(root.Nodes))
	}
	if root.Nodes[0].Kind != KindText || root.Nodes[0].Text != "a" {
		t.Fatalf("first node = %+v", root.Nodes[0])
	}
	alt := root.Nodes[1]
	if alt.Kind != KindAlt || len(alt.Nodes) != 2 {
		t.Fatalf("second node = %+v", alt)
	}
}
