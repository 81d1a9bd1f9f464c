// Package geom implements the fixed-point 2-D coordinate system the
// continuity pipeline positions marchers in.
//
// https://en.wikipedia.org/wiki/Fixed-point_arithmetic
package geom

import "math"

// FracBits is the number of fractional bits a Coord component carries.
const FracBits = 4

// Step is the number of fixed-point units in one marching "step" —
// the unit continuity programs are written in.
const Step = 1 << FracBits // 16

// Coord is a 2-D position in fixed-point units (X, Y each carry
// FracBits fractional bits). One Step == one marching step.
type Coord struct {
	X, Y int32
}

// FromSteps builds a Coord from a position expressed in steps (the
// unit the DSL and the show file use).
func FromSteps(x, y float64) Coord {
	return Coord{X: round32(x * Step), Y: round32(y * Step)}
}

// Steps returns c expressed in steps, as float64s.
func (c Coord) Steps() (x, y float64) {
	return float64(c.X) / Step, float64(c.Y) / Step
}

func round32(f float64) int32 {
	return int32(math.Round(f))
}

// Add returns c + o.
func (c Coord) Add(o Coord) Coord {
	return Coord{c.X + o.X, c.Y + o.Y}
}

// Sub returns c - o.
func (c Coord) Sub(o Coord) Coord {
	return Coord{c.X - o.X, c.Y - o.Y}
}

// Neg returns -c.
func (c Coord) Neg() Coord {
	return Coord{-c.X, -c.Y}
}

// Scale returns c scaled by num/den (den == 0 is treated as 1).
func (c Coord) Scale(num, den float64) Coord {
	if den == 0 {
		den = 1
	}
	f := num / den
	return Coord{round32(float64(c.X) * f), round32(float64(c.Y) * f)}
}

// Equal reports whether c and o are the same fixed-point position.
func (c Coord) Equal(o Coord) bool {
	return c.X == o.X && c.Y == o.Y
}

// IsZero reports whether c is the origin.
func (c Coord) IsZero() bool {
	return c.X == 0 && c.Y == 0
}

// Magnitude returns the Euclidean length of c, in steps.
func (c Coord) Magnitude() float64 {
	x, y := c.Steps()
	return math.Hypot(x, y)
}

// DMMagnitude returns the Euclidean length of c, except when |x| ==
// |y| (a pure diagonal), in which case it returns |x| — a diagonal
// military move of N steps covers N steps, not N*sqrt(2).
func (c Coord) DMMagnitude() float64 {
	x, y := c.Steps()
	if math.Abs(x) == math.Abs(y) {
		return math.Abs(x)
	}
	return math.Hypot(x, y)
}

// Direction returns the angle from c to the +X axis, in degrees, with
// Y inverted: +X is 0 (DirN) and -Y is 90 (DirW). The result lies in
// (-180, 180]. Returns 0 for the zero vector.
func (c Coord) Direction() float64 {
	if c.IsZero() {
		return 0
	}
	x, y := c.Steps()
	return math.Atan2(-y, x) * 180 / math.Pi
}

// DirectionOf is Direction's underlying formula for a raw (not
// fixed-point) vector, in steps. Used where a direction is derived
// from a continuous quantity (e.g. a Rotate command's tangent) rather
// than from a stored Coord.
func DirectionOf(x, y float64) float64 {
	if x == 0 && y == 0 {
		return 0
	}
	return Normalize360(math.Atan2(-y, x) * 180 / math.Pi)
}

// Direction8 snaps deg to the nearest of the eight compass directions,
// the granularity the renderer draws a marcher's facing at.
func Direction8(deg float64) float64 {
	return Normalize360(math.Round(Normalize360(deg)/45) * 45)
}

// Collides reports whether c and o are within one step of each other
// in both axes and within one step Euclidean distance — the §4.5
// pairwise proximity test.
func (c Coord) Collides(o Coord) bool {
	dx := int64(c.X - o.X)
	dy := int64(c.Y - o.Y)
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dx > Step || dy > Step {
		return false
	}
	return dx*dx+dy*dy <= int64(Step)*int64(Step)
}

// Normalize360 folds deg into [0, 360).
func Normalize360(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// Normalize180 folds deg into (-180, 180].
func Normalize180(deg float64) float64 {
	deg = Normalize360(deg)
	if deg > 180 {
		deg -= 360
	}
	return deg
}

// IsDiagonal reports whether deg (after Normalize360) is one of the
// four 45-degree diagonals.
func IsDiagonal(deg float64) bool {
	d := Normalize360(deg)
	switch d {
	case 45, 135, 225, 315:
		return true
	}
	return false
}

// CreateVector returns the coord of magnitude mag (in steps) pointing
// in direction dir (degrees). Diagonal directions are computed
// exactly (no trig rounding, both axes get the full magnitude rather
// than mag/sqrt2 — a diagonal military move of N steps displaces N
// steps on each axis); all others go through sin/cos.
func CreateVector(dir, mag float64) Coord {
	d := Normalize360(dir)
	if IsDiagonal(d) {
		x, y := mag, mag
		if d > 50 && d < 310 {
			x = -x
		}
		if d < 180 {
			y = -y
		}
		return FromSteps(x, y)
	}
	rad := d * math.Pi / 180
	return FromSteps(mag*math.Cos(rad), -mag*math.Sin(rad))
}
