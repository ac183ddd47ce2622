//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws optional grid lines at the cell pitch on top of the
// board, toggled with the G key.
type Overlay struct {
	dim   int
	scale int
	show  bool
	pixel *ebiten.Image
}

// NewOverlay constructs an overlay for a dim*dim grid at the given scale.
func NewOverlay(dim, scale int) *Overlay {
	o := &Overlay{dim: dim, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the overlay on key press.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.show = !o.show
	}
}

// Draw renders the grid lines onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show || o.dim <= 0 {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	span := float64(o.dim * scale)
	line := color.RGBA{R: 255, G: 255, B: 255, A: 40}
	for i := 1; i < o.dim; i++ {
		at := float64(i * scale)
		o.drawRect(screen, at, 0, 1, span, line)
		o.drawRect(screen, 0, at, span, 1, line)
	}
}

func (o *Overlay) drawRect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
