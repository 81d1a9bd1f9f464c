package anim

import (
	"github.com/bdwalton/ccanim/animcmd"
	"github.com/bdwalton/ccanim/geom"
)

// AnimateSheet holds one compiled sheet's command chains, one per
// marcher, plus each marcher's cached position once every command in
// its chain has run — used to bootstrap a reverse walk onto the
// sheet without re-deriving it from the chain (§3 AnimateSheet).
type AnimateSheet struct {
	beats   int
	chains  []*animcmd.Chain
	postPos []geom.Coord
}

// NewAnimateSheet allocates an empty sheet for numMarchers marchers,
// beats beats long.
func NewAnimateSheet(numMarchers, beats int) *AnimateSheet {
	return &AnimateSheet{
		beats:   beats,
		chains:  make([]*animcmd.Chain, numMarchers),
		postPos: make([]geom.Coord, numMarchers),
	}
}

// SetMarcher installs marcher i's compiled chain and its final
// position after the chain runs to completion.
func (s *AnimateSheet) SetMarcher(i int, chain *animcmd.Chain, postPos geom.Coord) {
	s.chains[i] = chain
	s.postPos[i] = postPos
}

// Beats is this sheet's beat budget.
func (s *AnimateSheet) Beats() int { return s.beats }

// NumMarchers is the number of marcher slots this sheet has.
func (s *AnimateSheet) NumMarchers() int { return len(s.chains) }

// Chain returns marcher i's command chain, or nil if it was never
// set (an unanimated placeholder).
func (s *AnimateSheet) Chain(i int) *animcmd.Chain { return s.chains[i] }

// PostPosition returns marcher i's position once its chain has run to
// completion.
func (s *AnimateSheet) PostPosition(i int) geom.Coord { return s.postPos[i] }
