// Package window renders the particle field on a real pixel canvas with
// ebiten. The window is resizable; every resize regenerates the field.
package window

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"tableflip.dev/today/pkg/app"
)

const (
	defaultWidth  = 1024
	defaultHeight = 640
)

var background = color.RGBA{R: 0x11, G: 0x10, B: 0x18, A: 0xff}

type game struct {
	svc    *app.Service
	width  int
	height int
	frame  app.Frame
}

// Update advances the field one tick and tracks the cursor. A cursor outside
// the canvas counts as the pointer leaving.
func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		doc, err := g.svc.AdvanceLocale()
		if err != nil {
			return err
		}
		ebiten.SetWindowTitle(doc.Title)
	}

	x, y := ebiten.CursorPosition()
	if ebiten.IsFocused() && x >= 0 && y >= 0 && x < g.width && y < g.height {
		g.svc.PointerMove(float64(x), float64(y))
	} else {
		g.svc.PointerLeave()
	}

	g.frame = g.svc.Frame()
	return nil
}

// Draw clears the canvas and paints every particle as a filled circle.
func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	for _, p := range g.frame.Particles {
		// image/color.RGBA is premultiplied; the particle tint is not.
		c := color.NRGBA{R: p.Color.R, G: p.Color.G, B: p.Color.B, A: p.Color.A}
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Radius), c, true)
	}
}

// Layout follows the window size and regenerates the field when it changes.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.svc.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it is closed.
func Run(svc *app.Service, fps int) error {
	snap, err := svc.Snapshot()
	if err != nil {
		return err
	}
	if fps > 0 {
		ebiten.SetTPS(fps)
	}
	ebiten.SetWindowSize(defaultWidth, defaultHeight)
	ebiten.SetWindowTitle(snap.Document.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(&game{svc: svc}); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
