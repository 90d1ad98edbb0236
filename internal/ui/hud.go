//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"evosim/internal/core"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
	TileReport(x, y int) []string
}

// HUD renders the parameter panel to the right of the world view.
type HUD struct {
	width      int
	panel      *ebiten.Image
	lastHeight int

	snapshot core.ParameterSnapshot
	tile     []string
	status   string
}

// NewHUD constructs a HUD with the given panel width.
func NewHUD(width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{width: width}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached snapshot, the hovered tile report and the
// status line.
func (h *HUD) Update(p parameterProvider, status string, hoverX, hoverY int, hovering bool) {
	if h == nil {
		return
	}
	h.snapshot = p.Parameters()
	h.status = status
	h.tile = nil
	if hovering {
		h.tile = p.TileReport(hoverX, hoverY)
	}
}

// Draw paints the HUD panel at offsetX, height pixels tall.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, "Evolution", face, panelPadding, y, headerColor)
	y += lineSpacing
	text.Draw(h.panel, h.status, face, panelPadding, y, valueColor)

	for _, group := range h.snapshot.Groups {
		y += groupSpacing
		text.Draw(h.panel, group.Name, face, panelPadding, y, headerColor)
		for _, p := range group.Params {
			y += lineSpacing
			text.Draw(h.panel, p.Label+": "+p.Value, face, panelPadding, y, valueColor)
		}
	}
	if len(h.tile) > 0 {
		y += groupSpacing
		text.Draw(h.panel, "Tile", face, panelPadding, y, headerColor)
		for _, line := range h.tile {
			y += lineSpacing
			text.Draw(h.panel, line, face, panelPadding, y, valueColor)
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

var (
	headerColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	valueColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
)

const (
	panelPadding   = 12
	headerBaseline = 18
	lineSpacing    = 16
	groupSpacing   = 26
)
