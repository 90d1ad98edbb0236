//go:build !ebiten

package app

// Run reports that this build has no GUI.
func Run(Options) error {
	return ErrNoGUI
}
