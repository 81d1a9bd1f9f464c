package anim

import (
	"github.com/bdwalton/ccanim/animcmd"
	"github.com/bdwalton/ccanim/geom"
)

// CollisionPolicy selects how the collision detector behaves.
type CollisionPolicy int

const (
	CollisionNone CollisionPolicy = iota
	CollisionShow
	CollisionBeep
)

// CommandKind is a closed enum mirroring which concrete animcmd
// command a marcher is currently running, for UI highlighting — a
// plain tag, not the command itself, so callers can't reach in and
// mutate chain state.
type CommandKind int

const (
	CommandNone CommandKind = iota
	CommandHold
	CommandMove
	CommandRotate
)

func commandKindOf(c animcmd.Command) CommandKind {
	switch c.(type) {
	case *animcmd.Hold:
		return CommandHold
	case *animcmd.Move:
		return CommandMove
	case *animcmd.Rotate:
		return CommandRotate
	default:
		return CommandNone
	}
}

type marcherCursor struct {
	node      *animcmd.Node
	pos       geom.Coord
	colliding bool
}

// Animation owns the ordered per-sheet command chains and the global
// playback cursor (§4.4). Structurally immutable after construction:
// only the cursor, per-marcher positions, and collision flags mutate.
type Animation struct {
	sheets   []*AnimateSheet
	startPos [][]geom.Coord // per sheet, per marcher starting position

	curSheet int
	curBeat  int
	marchers []marcherCursor

	policy CollisionPolicy
	beeped bool
}

// NewAnimation builds an Animation over sheets, whose i-th marcher's
// starting position on sheet k is startPos[k][i]. Lands on sheet 0,
// beat 0.
func NewAnimation(sheets []*AnimateSheet, startPos [][]geom.Coord, numMarchers int) *Animation {
	a := &Animation{
		sheets:   sheets,
		startPos: startPos,
		marchers: make([]marcherCursor, numMarchers),
	}
	if len(sheets) > 0 {
		a.GotoSheet(0)
	}
	return a
}

// NumSheets returns how many animated sheets this Animation covers.
func (a *Animation) NumSheets() int { return len(a.sheets) }

// advancePastZeroBeat walks node forward, applying and skipping every
// zero-beat command, until Begin lands on a live one or the chain is
// exhausted.
func advancePastZeroBeat(node *animcmd.Node, pt *geom.Coord) *animcmd.Node {
	for node != nil {
		if ok := node.Cmd.Begin(pt); ok {
			return node
		}
		node.Cmd.ApplyForward(pt)
		node = node.Next()
	}
	return nil
}

// retreatPastZeroBeat is advancePastZeroBeat's mirror, used when
// landing on a chain from its tail end.
func retreatPastZeroBeat(node *animcmd.Node, pt *geom.Coord) *animcmd.Node {
	for node != nil {
		if ok := node.Cmd.End(pt); ok {
			return node
		}
		node.Cmd.ApplyBackward(pt)
		node = node.Prev()
	}
	return nil
}

// GotoSheet relocates the cursor to the k-th animated sheet, beat 0.
func (a *Animation) GotoSheet(k int) bool {
	if k < 0 || k >= len(a.sheets) {
		return false
	}
	a.curSheet = k
	a.curBeat = 0
	sheet := a.sheets[k]
	for i := range a.marchers {
		pos := a.startPos[k][i]
		a.marchers[i].pos = pos
		var head *animcmd.Node
		if sheet.Chain(i) != nil {
			head = sheet.Chain(i).Head()
		}
		a.marchers[i].node = advancePastZeroBeat(head, &a.marchers[i].pos)
	}
	a.checkCollisions()
	return true
}

// NextBeat advances the cursor by one beat, or rolls over to the next
// sheet. A sheet of B beats has B+1 valid beat frames (0..B); frame B
// coincides with the next sheet's frame 0 by the compiler's terminal-
// alignment guarantee. Returns false only when there is no next sheet
// and the cursor was already at frame B.
func (a *Animation) NextBeat() bool {
	if len(a.sheets) == 0 {
		return false
	}
	sheet := a.sheets[a.curSheet]
	if a.curBeat >= sheet.Beats() {
		return a.NextSheet()
	}
	a.curBeat++
	for i := range a.marchers {
		m := &a.marchers[i]
		if m.node == nil {
			continue
		}
		// A finished command hands over to the next live one before
		// stepping; at the end of the chain the marcher stays on it.
		if m.node.Cmd.Beat() >= m.node.Cmd.NumBeats() {
			if next := advancePastZeroBeat(m.node.Next(), &m.pos); next != nil {
				m.node = next
			}
		}
		m.node.Cmd.NextBeat(&m.pos)
	}
	a.checkCollisions()
	return true
}

// PrevBeat is NextBeat's mirror image.
func (a *Animation) PrevBeat() bool {
	if a.curBeat == 0 {
		return a.prevSheetEnd()
	}
	a.curBeat--
	for i := range a.marchers {
		m := &a.marchers[i]
		if m.node == nil {
			continue
		}
		if m.node.Cmd.Beat() <= 0 {
			if prev := retreatPastZeroBeat(m.node.Prev(), &m.pos); prev != nil {
				m.node = prev
			}
		}
		m.node.Cmd.PrevBeat(&m.pos)
	}
	a.checkCollisions()
	return true
}

func (a *Animation) prevSheetEnd() bool {
	if a.curSheet == 0 {
		return false
	}
	a.curSheet--
	sheet := a.sheets[a.curSheet]
	a.curBeat = sheet.Beats()
	for i := range a.marchers {
		m := &a.marchers[i]
		m.pos = sheet.PostPosition(i)
		var tail *animcmd.Node
		if sheet.Chain(i) != nil {
			tail = sheet.Chain(i).Tail()
		}
		m.node = retreatPastZeroBeat(tail, &m.pos)
	}
	a.checkCollisions()
	return true
}

// NextSheet moves to the next animated sheet's beat 0.
func (a *Animation) NextSheet() bool {
	if a.curSheet+1 >= len(a.sheets) {
		return false
	}
	return a.GotoSheet(a.curSheet + 1)
}

// PrevSheet moves to the previous animated sheet's beat 0.
func (a *Animation) PrevSheet() bool {
	if a.curSheet == 0 {
		return false
	}
	return a.GotoSheet(a.curSheet - 1)
}

// EnableCollisions sets the active collision policy and immediately
// re-evaluates collisions for the current beat.
func (a *Animation) EnableCollisions(p CollisionPolicy) {
	a.policy = p
	a.checkCollisions()
}

// Beeped reports whether the most recent cursor move produced a new
// collision onset under the BEEP policy.
func (a *Animation) Beeped() bool { return a.beeped }

// MarcherSnapshot is one marcher's read-only state at the current
// cursor position.
type MarcherSnapshot struct {
	Position        geom.Coord
	FacingDirection float64
	Colliding       bool
	CurrentCommand  CommandKind
}

// Snapshot is the current cursor's state, §6's Current() return shape.
type Snapshot struct {
	Sheet    int
	Beat     int
	Marchers []MarcherSnapshot
}

// Current reports every marcher's position, facing, collision state,
// and running command kind at the cursor's current (sheet, beat).
func (a *Animation) Current() Snapshot {
	snap := Snapshot{
		Sheet:    a.curSheet,
		Beat:     a.curBeat,
		Marchers: make([]MarcherSnapshot, len(a.marchers)),
	}
	for i := range a.marchers {
		m := &a.marchers[i]
		ms := MarcherSnapshot{Position: m.pos, Colliding: m.colliding}
		if m.node != nil {
			ms.FacingDirection = m.node.Cmd.Direction()
			ms.CurrentCommand = commandKindOf(m.node.Cmd)
		}
		snap.Marchers[i] = ms
	}
	return snap
}

func (a *Animation) checkCollisions() {
	prev := make([]bool, len(a.marchers))
	for i := range a.marchers {
		prev[i] = a.marchers[i].colliding
		a.marchers[i].colliding = false
	}
	a.beeped = false
	if a.policy == CollisionNone {
		return
	}
	for i := 0; i < len(a.marchers); i++ {
		for j := i + 1; j < len(a.marchers); j++ {
			if a.marchers[i].pos.Collides(a.marchers[j].pos) {
				a.marchers[i].colliding = true
				a.marchers[j].colliding = true
			}
		}
	}
	if a.policy != CollisionBeep {
		return
	}
	for i := range a.marchers {
		if a.marchers[i].colliding && !prev[i] {
			a.beeped = true
			break
		}
	}
}
