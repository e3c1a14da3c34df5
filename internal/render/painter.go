//go:build ebiten

package render

import (
	"image/color"

	"life3d/internal/engine"

	"github.com/hajimehoshi/ebiten/v2"
)

// CellPainter draws every cell of the universe as a quad scaled about its
// center by the wobble easing.
type CellPainter struct {
	w, h  int
	pixel *ebiten.Image
}

// NewCellPainter allocates a painter for a grid of size w*h.
func NewCellPainter(w, h int) *CellPainter {
	cp := &CellPainter{w: w, h: h}
	cp.pixel = ebiten.NewImage(1, 1)
	cp.pixel.Fill(color.White)
	return cp
}

// Blit renders the per-cell attributes onto dst at the given pixel scale.
// Cells whose wobble has collapsed to zero are skipped entirely.
func (cp *CellPainter) Blit(dst *ebiten.Image, attrs []engine.CellAttr, scale int) {
	if len(attrs) != cp.w*cp.h || scale <= 0 {
		return
	}
	for i, attr := range attrs {
		wobble := Wobble(attr.Alive, attr.Phase)
		if wobble <= 0 {
			continue
		}
		x := i % cp.w
		y := i / cp.w
		side := float64(scale) * wobble
		inset := (float64(scale) - side) / 2

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(side, side)
		op.GeoM.Translate(float64(x*scale)+inset, float64(y*scale)+inset)
		op.ColorScale.ScaleWithColor(CellColor(attr.Alive, attr.Phase))
		dst.DrawImage(cp.pixel, op)
	}
}

// Size returns the grid dimensions the painter was built for.
func (cp *CellPainter) Size() (int, int) { return cp.w, cp.h }
