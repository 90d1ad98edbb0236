package tui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"evosim/internal/core"
	"evosim/internal/sims/evolution"
)

// Glyphs drawn over the energy-tinted background.
const (
	glyphEmpty    = ' '
	glyphCell     = 'o'
	glyphBirth    = '+'
	glyphDivision = '*'
	glyphDeath    = 'x'
)

var cursorStyle = lipgloss.NewStyle().Reverse(true)

// Glyph picks the rune for a display value.
func Glyph(v uint8) rune {
	_, cell, kind := evolution.DecodeDisplay(v)
	switch {
	case cell && kind == evolution.EventBirth:
		return glyphBirth
	case cell && kind == evolution.EventDivision:
		return glyphDivision
	case cell:
		return glyphCell
	case kind == evolution.EventDeath:
		return glyphDeath
	default:
		return glyphEmpty
	}
}

// Styles holds one lipgloss style per display value.
type Styles []lipgloss.Style

// NewStyles builds styles from a palette: the background carries the tile
// colour, the foreground keeps glyphs readable on top of it.
func NewStyles(palette []color.RGBA) Styles {
	styles := make(Styles, len(palette))
	for i, c := range palette {
		styles[i] = lipgloss.NewStyle().
			Background(lipgloss.Color(hexColor(c))).
			Foreground(lipgloss.Color("15"))
	}
	return styles
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// RenderGrid draws the part of a width-wide display buffer inside view.
// Runs of equal values share one styled segment to keep escape sequences
// down. The tile at (cursorX, cursorY) is drawn reversed.
func RenderGrid(cells []uint8, width int, view core.Rect, styles Styles, cursorX, cursorY int) string {
	var sb strings.Builder
	sb.Grow(view.W*view.H*2 + view.H)

	for row := 0; row < view.H; row++ {
		if row > 0 {
			sb.WriteRune('\n')
		}
		y := view.Y + row
		x := view.X
		for x < view.X+view.W {
			if x == cursorX && y == cursorY {
				sb.WriteString(cursorStyle.Render(string(Glyph(cells[y*width+x]))))
				x++
				continue
			}
			start := cells[y*width+x]
			var run strings.Builder
			for x < view.X+view.W && cells[y*width+x] == start && !(x == cursorX && y == cursorY) {
				run.WriteRune(Glyph(start))
				x++
			}
			style := lipgloss.NewStyle()
			if int(start) < len(styles) {
				style = styles[start]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
