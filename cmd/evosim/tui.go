package main

import (
	"github.com/spf13/cobra"

	"evosim/internal/tui"
)

var (
	flagAuto  bool
	flagSpeed int
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Watch the world in the terminal",
	Long: `Open the terminal viewer. The world is generated a slice per frame,
then advanced on demand or automatically.

Controls:
  Space      - Start/stop auto mode
  N          - Step one generation
  +/-        - Faster/slower animation
  Arrows     - Move the cursor (the view follows)
  R          - Regenerate with the same seed
  ?          - Toggle full help
  Q/Ctrl+C   - Quit`,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().BoolVar(&flagAuto, "auto", false, "Start in auto mode (default from config)")
	tuiCmd.Flags().IntVar(&flagSpeed, "speed", 0, "Animation speed 1-8 (default from config)")
}

func runTUI(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	viewer := s.file.Viewer
	if cmd.Flags().Changed("auto") {
		viewer.AutoStart = flagAuto
	}
	if cmd.Flags().Changed("speed") {
		viewer.Speed = flagSpeed
	}
	s.logger.Debug("starting terminal viewer", "width", s.engine.Width, "height", s.engine.Height)
	return tui.Run(tui.Options{
		Engine:    s.engine,
		Speed:     viewer.Speed,
		Tick:      viewer.TickInterval(),
		AutoStart: viewer.AutoStart,
	})
}
