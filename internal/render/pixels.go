// Package render converts display buffers into RGBA pixels for the ebiten
// viewer.
package render

import (
	"image/color"

	"evosim/internal/core"
)

// FillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func FillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:len(cells)*4])
		return
	}
	for i, c := range cells {
		writePixel(buf[i*4:], paletteAt(palette, c))
	}
}

// FillViewportRGBA writes the view rectangle of a width-wide cell buffer into
// buf, which must hold view.W*view.H pixels.
func FillViewportRGBA(buf []byte, cells []uint8, width int, view core.Rect, palette []color.RGBA) {
	for row := 0; row < view.H; row++ {
		src := cells[(view.Y+row)*width+view.X:][:view.W]
		dst := buf[row*view.W*4:]
		if len(palette) == 0 {
			clear(dst[:view.W*4])
			continue
		}
		for i, c := range src {
			writePixel(dst[i*4:], paletteAt(palette, c))
		}
	}
}

func paletteAt(palette []color.RGBA, c uint8) color.RGBA {
	idx := int(c)
	if last := len(palette) - 1; idx > last {
		idx = last
	}
	return palette[idx]
}

func writePixel(dst []byte, col color.RGBA) {
	dst[0] = col.R
	dst[1] = col.G
	dst[2] = col.B
	dst[3] = col.A
}
