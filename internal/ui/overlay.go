//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"evosim/internal/core"
	"evosim/internal/sims/evolution"
)

var (
	divisionColor = color.RGBA{R: 255, G: 255, B: 255, A: 220}
	birthColor    = color.RGBA{R: 255, G: 200, B: 220, A: 230}
	deathColor    = color.RGBA{R: 80, G: 0, B: 36, A: 230}
	cursorColor   = color.RGBA{R: 57, G: 255, B: 20, A: 200}
)

// Overlay animates the latest generation's events on top of the grid and
// outlines the hovered tile. Key 1 toggles the event animations.
type Overlay struct {
	showEvents bool
	pixel      *ebiten.Image
}

// NewOverlay constructs an overlay with event animations on.
func NewOverlay() *Overlay {
	o := &Overlay{showEvents: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the overlay's toggle key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showEvents = !o.showEvents
	}
}

// Draw renders event animations for frame (-1 when idle) and the hover
// outline.
func (o *Overlay) Draw(screen *ebiten.Image, w *evolution.World, view core.Rect, scale, offsetX, offsetY, frame int, hoverX, hoverY int, hovering bool) {
	if scale <= 0 {
		scale = 1
	}
	if o.showEvents && frame >= 0 {
		progress := Progress(frame)
		for _, m := range EventMarkers(w, view) {
			o.drawMarker(screen, m, view, scale, offsetX, offsetY, progress)
		}
	}
	if hovering {
		o.drawOutline(screen, hoverX, hoverY, view, scale, offsetX, offsetY)
	}
}

func (o *Overlay) drawMarker(screen *ebiten.Image, m Marker, view core.Rect, scale, offsetX, offsetY int, progress float64) {
	cx, cy := TileCenter(m.X, m.Y, view, scale, offsetX, offsetY)
	thickness := math.Max(1, float64(scale)*0.2)
	switch m.Kind {
	case evolution.EventDivision:
		x1, y1, x2, y2 := DivisionSegment(m, view, scale, offsetX, offsetY, progress)
		o.drawLine(screen, x1, y1, x2, y2, thickness, divisionColor)
	case evolution.EventBirth:
		o.drawPoint(screen, cx, cy, float64(scale)*0.7*progress, birthColor)
	case evolution.EventDeath:
		o.drawPoint(screen, cx, cy, float64(scale)*0.7*(1-progress), deathColor)
	}
}

func (o *Overlay) drawOutline(screen *ebiten.Image, x, y int, view core.Rect, scale, offsetX, offsetY int) {
	cx, cy := TileCenter(x, y, view, scale, offsetX, offsetY)
	half := float64(scale) / 2
	left, right := cx-half, cx+half
	top, bottom := cy-half, cy+half
	o.drawLine(screen, left, top, right, top, 1, cursorColor)
	o.drawLine(screen, right, top, right, bottom, 1, cursorColor)
	o.drawLine(screen, right, bottom, left, bottom, 1, cursorColor)
	o.drawLine(screen, left, bottom, left, top, 1, cursorColor)
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if o.pixel == nil || size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}
