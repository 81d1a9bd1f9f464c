package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/bdwalton/ccanim/anim"
	"github.com/bdwalton/ccanim/geom"
)

const (
	windowWidth  = 960
	windowHeight = 540

	pixelsPerStep = 12
	marcherRadius = 4
)

var (
	colorOpen      = color.RGBA{0x40, 0xa0, 0xff, 0xff}
	colorColliding = color.RGBA{0xff, 0x30, 0x30, 0xff}
)

// fieldPos is a demoShow convenience: build a start position directly
// in steps, same unit continuity programs are written in.
func fieldPos(x, y float64) geom.Coord {
	return geom.FromSteps(x, y)
}

// game is the ebiten.Game driving ccview's playback: it owns nothing
// but a compiled Animation; ebiten calls Layout/Draw/Update on every
// frame.
type game struct {
	animation *anim.Animation
}

func newGame(animation *anim.Animation) *game {
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("ccview")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return &game{animation: animation}
}

// Layout returns the constant logical resolution; ebiten scales the
// window to it rather than us handling arbitrary sizes.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return windowWidth, windowHeight
}

// Update steps the playback cursor off keyboard edges: left/right
// steps a beat, page up/down steps a sheet.
func (g *game) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		g.animation.NextBeat()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		g.animation.PrevBeat()
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown):
		g.animation.NextSheet()
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		g.animation.PrevSheet()
	}
	return nil
}

// Draw renders one filled circle per marcher at its current position,
// colliding marchers in colorColliding regardless of symbol.
func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x10, 0x30, 0x10, 0xff})

	snap := g.animation.Current()
	for _, m := range snap.Marchers {
		x, y := m.Position.Steps()
		px := float32(windowWidth/2 + x*pixelsPerStep)
		py := float32(windowHeight/2 + y*pixelsPerStep)

		c := colorOpen
		if m.Colliding {
			c = colorColliding
		}
		vector.DrawFilledCircle(screen, px, py, marcherRadius, c, true)
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("sheet %d beat %d", snap.Sheet, snap.Beat))
}
