package contcompile

import (
	"github.com/bdwalton/ccanim/anim"
	"github.com/bdwalton/ccanim/contast"
)

// ErrorSet accumulates the advisory errors one Compile call produced
// for its one marcher. calchart.Compile folds every marcher's
// ErrorSet, from every sheet, into one anim.ErrorTable keyed by
// marcher index.
type ErrorSet struct {
	tripped [anim.NumErrorKinds]bool
	span    [anim.NumErrorKinds]contast.Span
}

// Record notes that kind occurred at span. Only the first span per
// kind is retained.
func (s *ErrorSet) Record(kind anim.ErrorKind, span contast.Span) {
	if s.tripped[kind] {
		return
	}
	s.tripped[kind] = true
	s.span[kind] = span
}

// Has reports whether kind was recorded.
func (s ErrorSet) Has(kind anim.ErrorKind) bool { return s.tripped[kind] }

// Span returns the span kind was first recorded at.
func (s ErrorSet) Span(kind anim.ErrorKind) contast.Span { return s.span[kind] }

// Kinds returns every error kind this set recorded.
func (s ErrorSet) Kinds() []anim.ErrorKind {
	var out []anim.ErrorKind
	for k := anim.ErrorKind(0); k < anim.NumErrorKinds; k++ {
		if s.tripped[k] {
			out = append(out, k)
		}
	}
	return out
}
