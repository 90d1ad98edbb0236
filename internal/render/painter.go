//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"evosim/internal/core"
)

// GridPainter uploads the visible part of a display buffer to a texture and
// draws it scaled.
type GridPainter struct {
	img *ebiten.Image
	buf []byte
	w   int
	h   int
}

// NewGridPainter returns a painter with no texture yet; Blit sizes it.
func NewGridPainter() *GridPainter {
	return &GridPainter{}
}

// Blit draws view of the width-wide cells buffer at (offsetX, offsetY),
// scale pixels per tile.
func (p *GridPainter) Blit(screen *ebiten.Image, cells []uint8, width int, view core.Rect, palette []color.RGBA, scale, offsetX, offsetY int) {
	if view.W <= 0 || view.H <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	if p.img == nil || p.w != view.W || p.h != view.H {
		if p.img != nil {
			p.img.Dispose()
		}
		p.img = ebiten.NewImage(view.W, view.H)
		p.buf = make([]byte, view.W*view.H*4)
		p.w, p.h = view.W, view.H
	}
	FillViewportRGBA(p.buf, cells, width, view, palette)
	p.img.WritePixels(p.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(float64(offsetX), float64(offsetY))
	screen.DrawImage(p.img, op)
}
