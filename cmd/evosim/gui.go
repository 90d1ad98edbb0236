package main

import (
	"errors"

	"github.com/spf13/cobra"

	"evosim/internal/app"
)

var flagScale int

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Watch the world in a window",
	Long: `Open the ebiten viewer. Only available in binaries built with
-tags ebiten.

Controls:
  Space      - Start/stop auto mode
  N          - Step one generation
  +/-        - Faster/slower animation
  Arrows     - Pan
  Wheel      - Zoom
  1          - Toggle event animations
  R          - Regenerate with the same seed
  Q/Esc      - Quit`,
	RunE: runGUI,
}

func init() {
	guiCmd.Flags().IntVar(&flagScale, "scale", 0, "Pixels per tile (default from config)")
	guiCmd.Flags().BoolVar(&flagAuto, "auto", false, "Start in auto mode (default from config)")
	guiCmd.Flags().IntVar(&flagSpeed, "speed", 0, "Animation speed 1-8 (default from config)")
}

func runGUI(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	viewer := s.file.Viewer
	if cmd.Flags().Changed("scale") {
		viewer.CellScale = flagScale
	}
	if cmd.Flags().Changed("auto") {
		viewer.AutoStart = flagAuto
	}
	if cmd.Flags().Changed("speed") {
		viewer.Speed = flagSpeed
	}
	err = app.Run(app.Options{
		Engine:    s.engine,
		Scale:     viewer.CellScale,
		Speed:     viewer.Speed,
		AutoStart: viewer.AutoStart,
	})
	if errors.Is(err, app.ErrNoGUI) {
		s.logger.Error("gui unavailable", "hint", "go build -tags ebiten ./cmd/evosim")
	}
	return err
}
