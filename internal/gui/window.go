//go:build ebiten

package gui

import (
	"errors"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/san-kum/digirain/internal/palette"
	"github.com/san-kum/digirain/internal/viz"
)

const (
	cellW    = 7
	cellH    = 13
	baseline = 11
	title    = "The Matrix"
)

var background = color.RGBA{A: 255}

// Game adapts a rain simulation to the ebiten.Game interface.
type Game struct {
	pacer
	buf *viz.Buffer
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.toggle()
	}
	g.advance(time.Now())
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	_, h := g.buf.Size()
	for y := 0; y < h; y++ {
		for x, c := range g.buf.Row(y) {
			rgb, ok := palette.ColorRGB(c.Color)
			if !ok {
				continue
			}
			clr := color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
			text.Draw(screen, string(c.Ch), basicfont.Face7x13, x*cellW, y*cellH+baseline, clr)
		}
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.buf.Size()
	return w * cellW, h * cellH
}

// Run opens a window showing the rain until it is closed or Q/Esc is pressed.
func Run(build viz.Builder, width, height int, delay time.Duration) error {
	buf := viz.NewBuffer(width, height)
	sim, err := build(width, height, buf)
	if err != nil {
		return err
	}

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(width*cellW, height*cellH)
	ebiten.SetTPS(60)

	g := &Game{pacer: pacer{step: sim.Step, delay: delay}, buf: buf}
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
