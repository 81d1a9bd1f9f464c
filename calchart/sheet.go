package calchart

import "github.com/bdwalton/ccanim/geom"

// Marcher is one performer's per-sheet placement: a primary position
// plus up to three reference points a continuity program can aim at.
type Marcher struct {
	Sym          string
	ContID       int
	Pos          geom.Coord
	RefPositions [3]geom.Coord // ref 1..3; ref 0 is Pos itself
}

// Sheet is one formation: a beat budget, every marcher's placement,
// and the continuity library available to this sheet's marchers.
type Sheet struct {
	SheetName   string
	SheetBeats  int
	Marchers    []Marcher
	ContLibrary []ContinuityRecord
}

// Show is the reference in-memory implementation of the ShowSource
// interface — analogous to the teacher's nesrom.ROM standing in as
// the concrete "cartridge" a mapper is built from. A caller can build
// one directly or embed it in a richer type (e.g. one backed by a
// show file loader, which is explicitly out of this core's scope).
type Show struct {
	Marchers int
	Sheets   []Sheet
}

func (s *Show) NumMarchers() int { return s.Marchers }
func (s *Show) NumSheets() int   { return len(s.Sheets) }

func (s *Show) Name(sheet int) string  { return s.Sheets[sheet].SheetName }
func (s *Show) Beats(sheet int) int    { return s.Sheets[sheet].SheetBeats }
func (s *Show) IsAnimated(sheet int) bool {
	return s.Sheets[sheet].SheetBeats > 0
}

func (s *Show) Position(sheet, marcher, ref int) geom.Coord {
	m := s.Sheets[sheet].Marchers[marcher]
	if ref == 0 {
		return m.Pos
	}
	return m.RefPositions[ref-1]
}

func (s *Show) Symbol(sheet, marcher int) string {
	return s.Sheets[sheet].Marchers[marcher].Sym
}

func (s *Show) ContinuityID(sheet, marcher int) int {
	return s.Sheets[sheet].Marchers[marcher].ContID
}

func (s *Show) Continuities(sheet int) []ContinuityRecord {
	return s.Sheets[sheet].ContLibrary
}
