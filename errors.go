package braces

import "fmt"

// NoMatchError is returned by Match when no candidate matched and the
// Failglob option is set. It carries the offending pattern text.
type NoMatchError struct {
	Pattern string
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("braces: no matches found for %q", e.Pattern)
}
