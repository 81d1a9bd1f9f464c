// Package anim owns the playback runtime: the per-sheet command
// chains a compile pass produces, the cursor that steps them
// beat-by-beat in either direction, and the collision detector and
// error table layered on top.
package anim

import "github.com/bdwalton/ccanim/contast"

// ErrorKind is one of the ten compile-time problem categories §4.6
// names. Compile errors are never Go errors — they are buffered here
// so a pass can report as many as possible rather than aborting on
// the first one.
type ErrorKind int

const (
	ErrOutOfTime ErrorKind = iota
	ErrExtraTime
	ErrWrongPlace
	ErrInvalidCM
	ErrInvalidFountain
	ErrDivisionZero
	ErrUndefined
	ErrSyntax
	ErrNonInt
	ErrNegInt
	NumErrorKinds
)

func (k ErrorKind) String() string {
	names := [...]string{
		"OUTOFTIME", "EXTRATIME", "WRONGPLACE", "INVALID_CM", "INVALID_FNTN",
		"DIVISION_ZERO", "UNDEFINED", "SYNTAX", "NONINT", "NEGINT",
	}
	if int(k) < 0 || int(k) >= len(names) {
		return "?"
	}
	return names[k]
}

// ErrorTable groups, for each error kind, every marcher index that
// tripped it on any sheet of one compile pass, and the source span of
// the first occurrence. It does not record which sheet an error came
// from. The UI retrieves this once per compile; it never drives
// control flow inside the core.
type ErrorTable struct {
	marchers  [NumErrorKinds]map[int]bool
	firstSpan [NumErrorKinds]contast.Span
	hasSpan   [NumErrorKinds]bool
}

// NewErrorTable returns an empty table.
func NewErrorTable() *ErrorTable {
	t := &ErrorTable{}
	for k := range t.marchers {
		t.marchers[k] = make(map[int]bool)
	}
	return t
}

// Record notes that marcher tripped kind at span. Only the first span
// per kind is retained.
func (t *ErrorTable) Record(kind ErrorKind, marcher int, span contast.Span) {
	if t.marchers[kind] == nil {
		t.marchers[kind] = make(map[int]bool)
	}
	t.marchers[kind][marcher] = true
	if !t.hasSpan[kind] {
		t.firstSpan[kind] = span
		t.hasSpan[kind] = true
	}
}

// Marchers returns the sorted marcher indices that tripped kind.
func (t *ErrorTable) Marchers(kind ErrorKind) []int {
	out := make([]int, 0, len(t.marchers[kind]))
	for m := range t.marchers[kind] {
		out = append(out, m)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

// FirstSpan returns the span of kind's first recorded occurrence, and
// whether kind was recorded at all.
func (t *ErrorTable) FirstSpan(kind ErrorKind) (contast.Span, bool) {
	return t.firstSpan[kind], t.hasSpan[kind]
}

// Empty reports whether no marcher tripped any error kind.
func (t *ErrorTable) Empty() bool {
	for k := range t.marchers {
		if len(t.marchers[k]) > 0 {
			return false
		}
	}
	return true
}
