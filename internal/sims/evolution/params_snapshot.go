package evolution

import (
	"fmt"
	"strconv"

	"evosim/internal/core"
)

// Parameters reports the world's identity and latest tallies for HUDs.
func (w *World) Parameters() core.ParameterSnapshot {
	params := w.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				textParam("size", "World size", fmt.Sprintf("%dx%d", w.w, w.h)),
				uintParam("seed", "Seed", uint64(w.cfg.Seed)),
			},
		},
		{
			Name: "Generation",
			Params: []core.Parameter{
				uintParam("gen", "Generation", uint64(w.gen)),
				uintParam("live", "Live cells", uint64(w.tally.Live)),
				uintParam("dying", "Dying cells", uint64(w.tally.Dying)),
				uintParam("born", "Born cells", uint64(w.tally.Born)),
			},
		},
		{
			Name: "Seeding",
			Params: []core.Parameter{
				uintParam("energy_cap", "Tile energy cap", uint64(params.EnergyCap)),
				uintParam("cell_chance", "Cell chance (1 in)", uint64(params.CellChance)),
				textParam("cell_energy", "Cell energy", fmt.Sprintf("%d-%d", params.CellEnergyMin, params.CellEnergyMax)),
				boolParam("death_refund", "Death refund", params.DeathRefund),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// TileReport describes the tile at (x, y) the way the pointer readout shows
// it. Cell lines are omitted for empty tiles.
func (w *World) TileReport(x, y int) []string {
	if !w.tiles.InBounds(x, y) {
		return nil
	}
	t := w.TileAt(x, y)
	lines := []string{
		fmt.Sprintf("X: %d; Y: %d", x, y),
		fmt.Sprintf("Tile energy: %d", t.Energy),
	}
	if t.Cell.Alive() {
		lines = append(lines,
			fmt.Sprintf("Cell age: %d", t.Cell.Age),
			fmt.Sprintf("Cell energy: %d", t.Cell.Energy),
		)
	}
	return lines
}

func uintParam(key, label string, value uint64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatUint(value, 10),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}

func textParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeText,
		Value: value,
	}
}
