package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"evosim/internal/core"
	"evosim/internal/sims/evolution"
)

func TestGlyph(t *testing.T) {
	cases := []struct {
		tile evolution.Tile
		want rune
	}{
		{evolution.Tile{}, glyphEmpty},
		{evolution.Tile{Cell: evolution.Cell{Energy: 3}}, glyphCell},
		{evolution.Tile{Cell: evolution.Cell{Energy: 3}, Event: evolution.Event{Kind: evolution.EventBirth}}, glyphBirth},
		{evolution.Tile{Cell: evolution.Cell{Energy: 3}, Event: evolution.Event{Kind: evolution.EventDivision}}, glyphDivision},
		{evolution.Tile{Event: evolution.Event{Kind: evolution.EventDeath}}, glyphDeath},
	}
	for _, tc := range cases {
		if got := Glyph(evolution.EncodeTile(tc.tile, 75)); got != tc.want {
			t.Errorf("Glyph(%+v) = %q, want %q", tc.tile, got, tc.want)
		}
	}
}

func TestRenderGridShape(t *testing.T) {
	const width = 6
	cells := make([]uint8, width*4)
	cells[1*width+2] = evolution.EncodeTile(evolution.Tile{Cell: evolution.Cell{Energy: 1}}, 75)
	world, err := evolution.New(10, 10, 1)
	if err != nil {
		t.Fatal(err)
	}
	styles := NewStyles(world.Palette())
	out := RenderGrid(cells, width, core.Rect{X: 1, Y: 1, W: 4, H: 3}, styles, -1, -1)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("rendered %d lines, want 3", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 4 {
			t.Fatalf("line %d width = %d, want 4", i, w)
		}
	}
	if !strings.ContainsRune(lines[0], glyphCell) {
		t.Fatalf("first row should contain the cell: %q", lines[0])
	}
}
