// Package animcmd implements the primitive motion commands a
// compiled continuity program lowers to (§4.3), and the doubly
// linked chain that strings them together for one marcher's one
// sheet.
//
// Unlike contast's tagged-struct variants, Command is a small
// interface with three concrete implementations (Hold, Move,
// Rotate): each variant's forward/reverse stepping arithmetic is
// different enough, and self-contained enough, that it reads better
// living next to its own type than behind one large switch.
package animcmd

import "github.com/bdwalton/ccanim/geom"

// Command is one primitive motion a marcher performs for some number
// of beats.
type Command interface {
	// NumBeats is this command's beat budget (may be 0).
	NumBeats() int
	// Beat is the current position of this command's own 0..NumBeats
	// cursor.
	Beat() int

	// Begin seeks the cursor to 0. It does not move pt: the caller
	// already holds pt at the command's entry position. Returns false
	// iff NumBeats() == 0.
	Begin(pt *geom.Coord) bool
	// End seeks the cursor to NumBeats(). It does not move pt: the
	// caller already holds pt at the command's exit position. Returns
	// false iff NumBeats() == 0.
	End(pt *geom.Coord) bool

	// NextBeat advances the cursor by one beat and moves pt by that
	// beat's share of the command's motion. Returns false once the
	// cursor has reached NumBeats().
	NextBeat(pt *geom.Coord) bool
	// PrevBeat is NextBeat's mirror image, walking the cursor back
	// towards 0.
	PrevBeat(pt *geom.Coord) bool

	// ApplyForward translates pt by the command's whole displacement,
	// irrespective of the cursor.
	ApplyForward(pt *geom.Coord)
	// ApplyBackward is ApplyForward's inverse.
	ApplyBackward(pt *geom.Coord)

	// Clip returns an equivalent command truncated to its first beats
	// beats, scaling any displacement down proportionally — used by
	// the compiler when a procedure overruns a sheet's remaining
	// beats (§4.2 step 2, the OUTOFTIME case).
	Clip(beats int) Command

	// Direction is the 8-way facing direction the renderer draws at
	// the command's current beat.
	Direction() float64
	// RealDirection is the unsnapped facing direction.
	RealDirection() float64
	// MotionDirection is the direction of travel, which for a
	// backwards march differs from the facing direction.
	MotionDirection() float64
}

// Node is one link of a marcher's command chain.
type Node struct {
	Cmd        Command
	next, prev *Node
}

// Next returns the following node, or nil at the tail.
func (n *Node) Next() *Node { return n.next }

// Prev returns the preceding node, or nil at the head.
func (n *Node) Prev() *Node { return n.prev }

// Chain is a doubly linked list of Commands, owned via its head —
// the representation §9's Design Note calls for in place of the
// source's prev/next-pointer-in-a-virtual-base scheme.
type Chain struct {
	head, tail *Node
}

// Head returns the first node, or nil if the chain is empty.
func (c *Chain) Head() *Node { return c.head }

// Tail returns the last node, or nil if the chain is empty.
func (c *Chain) Tail() *Node { return c.tail }

// Append links cmd onto the tail of the chain and returns its node.
func (c *Chain) Append(cmd Command) *Node {
	n := &Node{Cmd: cmd}
	if c.tail == nil {
		c.head, c.tail = n, n
		return n
	}
	n.prev = c.tail
	c.tail.next = n
	c.tail = n
	return n
}

// floorDiv computes floor(a/b) for integers, matching Go's truncating
// division only when signs agree.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// interpStep returns floor(beat*delta/numbeats), the drift-free
// integer position offset §4.3 specifies for Move.
func interpStep(beat, numbeats int, delta int32) int32 {
	if numbeats == 0 {
		return 0
	}
	return int32(floorDiv(int64(beat)*int64(delta), int64(numbeats)))
}
