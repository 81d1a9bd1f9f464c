// Package calchart assembles the headless external interfaces §6
// names: the Show a caller supplies, and Compile, the single entry
// point that turns one into a playable Animation.
package calchart

import "github.com/bdwalton/ccanim/geom"

// ContinuityRecord is one (id, name, text) entry from a show's
// continuity library — the raw DSL text a marcher's ContinuityID
// selects on a given sheet.
type ContinuityRecord struct {
	ID   int
	Name string
	Text string
}

// ShowSource is everything the compiler needs from a caller's in-memory
// show (§6's Show-consuming interface). The reference *Show type in
// sheet.go satisfies it directly; a caller with its own show
// representation only needs to implement this interface, not embed
// anything from this package.
type ShowSource interface {
	NumMarchers() int
	NumSheets() int

	Name(sheet int) string
	Beats(sheet int) int
	IsAnimated(sheet int) bool
	// Position returns marcher's position on sheet. ref == 0 is the
	// marcher's own position; 1..3 select one of its reference points.
	Position(sheet, marcher, ref int) geom.Coord
	Symbol(sheet, marcher int) string
	ContinuityID(sheet, marcher int) int
	Continuities(sheet int) []ContinuityRecord
}
