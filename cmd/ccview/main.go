// Command ccview is an optional, headless-core-external playback
// viewer: it compiles a Show via calchart.Compile and steps the
// resulting Animation with the keyboard, exactly analogous to
// gintendo.go's ebiten.RunGame wiring around a console.machine.
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/bdwalton/ccanim/anim"
	"github.com/bdwalton/ccanim/calchart"
)

var (
	fps        = flag.Int("fps", 30, "Playback frame rate (ticks per second).")
	collisions = flag.Bool("collisions", false, "Highlight colliding marchers.")
)

func main() {
	flag.Parse()

	show := demoShow()
	animation, errTable := calchart.Compile(show)
	if !errTable.Empty() {
		for _, k := range []anim.ErrorKind{
			anim.ErrOutOfTime, anim.ErrExtraTime, anim.ErrWrongPlace,
			anim.ErrInvalidCM, anim.ErrInvalidFountain, anim.ErrDivisionZero,
			anim.ErrUndefined, anim.ErrSyntax, anim.ErrNonInt, anim.ErrNegInt,
		} {
			if marchers := errTable.Marchers(k); len(marchers) > 0 {
				log.Printf("%s: marchers %v", k, marchers)
			}
		}
	}

	if *collisions {
		animation.EnableCollisions(anim.CollisionShow)
	}

	ebiten.SetTPS(*fps)

	game := newGame(animation)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

// demoShow is a small built-in formation: this viewer is a consumer
// of the core, not a show-file loader (explicitly out of scope), so
// there is nothing to read a show from — it exercises the core
// against a formation built in memory.
func demoShow() *calchart.Show {
	return &calchart.Show{
		Marchers: 4,
		Sheets: []calchart.Sheet{
			{
				SheetName:  "block",
				SheetBeats: 16,
				Marchers: []calchart.Marcher{
					{Sym: "open", ContID: 1, Pos: fieldPos(0, 0)},
					{Sym: "open", ContID: 1, Pos: fieldPos(4, 0)},
					{Sym: "solid", ContID: 2, Pos: fieldPos(0, 4)},
					{Sym: "solid", ContID: 2, Pos: fieldPos(4, 4)},
				},
				ContLibrary: []calchart.ContinuityRecord{
					{ID: 1, Name: "right", Text: "MARCH 1 8 E\n"},
					{ID: 2, Name: "left", Text: "MARCH 1 8 W\n"},
				},
			},
			{
				SheetName:  "cross",
				SheetBeats: 0,
				Marchers: []calchart.Marcher{
					{Sym: "open", Pos: fieldPos(8, 0)},
					{Sym: "open", Pos: fieldPos(12, 0)},
					{Sym: "solid", Pos: fieldPos(-8, 4)},
					{Sym: "solid", Pos: fieldPos(-4, 4)},
				},
			},
		},
	}
}
