package evolution

import "image/color"

const (
	displayEnergyMask = 0x0f
	displayCellBit    = 0x10
	displayEventShift = 5
	displayEventMask  = 0x60

	energyLevels = 16
)

var (
	colorBackground = color.NRGBA{R: 0x8C, G: 0x00, B: 0x3F, A: 0xFF}
	colorQuality    = color.NRGBA{R: 0x39, G: 0xFF, B: 0x14, A: 0xFF}
	colorCell       = color.NRGBA{R: 0xFF, G: 0x4B, B: 0x87, A: 0xFF}
	colorDeath      = color.NRGBA{R: 0x50, G: 0x00, B: 0x24, A: 0xFF}
	colorBirth      = color.NRGBA{R: 0xFF, G: 0xC8, B: 0xDC, A: 0xFF}
	colorDivision   = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

var evolutionPalette = buildPalette()

// Palette exposes the colour palette indexed by the values from Cells.
func (w *World) Palette() []color.RGBA { return evolutionPalette }

// Cells returns the display buffer, one byte per tile in row-major order,
// rebuilt from the current tiles. The buffer is allocated on first use so
// headless runs never pay for it.
func (w *World) Cells() []uint8 {
	data := w.tiles.Data()
	if len(w.display) != len(data) {
		w.display = make([]uint8, len(data))
	}
	for i := range data {
		w.display[i] = EncodeTile(data[i], w.cfg.Params.EnergyCap)
	}
	return w.display
}

// EncodeTile packs a tile into a palette index: an energy level over
// [0, energyCap], a cell bit and the event kind.
func EncodeTile(t Tile, energyCap uint32) uint8 {
	value := EnergyLevel(t.Energy, energyCap) & displayEnergyMask
	if t.Cell.Alive() {
		value |= displayCellBit
	}
	value |= (uint8(t.Event.Kind) << displayEventShift) & displayEventMask
	return value
}

// EnergyLevel buckets tile energy into 16 levels. Anything above energyCap
// lands in the top level.
func EnergyLevel(energy, energyCap uint32) uint8 {
	if energyCap == 0 || energy >= energyCap {
		if energy == 0 {
			return 0
		}
		return energyLevels - 1
	}
	return uint8(uint64(energy) * (energyLevels - 1) / uint64(energyCap))
}

// DecodeDisplay splits a palette index back into its parts.
func DecodeDisplay(v uint8) (level uint8, cell bool, kind EventKind) {
	return v & displayEnergyMask, v&displayCellBit != 0, EventKind((v & displayEventMask) >> displayEventShift)
}

func buildPalette() []color.RGBA {
	palette := make([]color.RGBA, 128)
	for i := range palette {
		level, cell, kind := DecodeDisplay(uint8(i))
		palette[i] = toRGBA(paletteColorFor(level, cell, kind))
	}
	return palette
}

func paletteColorFor(level uint8, cell bool, kind EventKind) color.NRGBA {
	// Full energy tints the background to 60% quality green, about what
	// an alpha of 2*energy gives at the generation cap.
	base := blendColors(colorBackground, colorQuality, float64(level)/float64(energyLevels-1)*0.6)
	switch {
	case cell && kind == EventBirth:
		return blendColors(base, colorBirth, 0.85)
	case cell && kind == EventDivision:
		return blendColors(base, colorDivision, 0.85)
	case cell:
		return blendColors(base, colorCell, 0.85)
	case kind == EventDeath:
		return blendColors(base, colorDeath, 0.7)
	default:
		return base
	}
}

func toRGBA(c color.NRGBA) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func blendColors(base, overlay color.NRGBA, overlayWeight float64) color.NRGBA {
	if overlayWeight <= 0 {
		return base
	}
	if overlayWeight >= 1 {
		return overlay
	}
	br, bg, bb, ba := float64(base.R), float64(base.G), float64(base.B), float64(base.A)
	or, og, ob, oa := float64(overlay.R), float64(overlay.G), float64(overlay.B), float64(overlay.A)
	w := overlayWeight
	inv := 1 - w
	return color.NRGBA{
		R: uint8(br*inv + or*w + 0.5),
		G: uint8(bg*inv + og*w + 0.5),
		B: uint8(bb*inv + ob*w + 0.5),
		A: uint8(ba*inv + oa*w + 0.5),
	}
}
