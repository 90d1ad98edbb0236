//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"evosim/internal/core"
	"evosim/internal/render"
	"evosim/internal/sims/evolution"
	"evosim/internal/ui"
)

// Game adapts an evolution session to the ebiten.Game interface.
type Game struct {
	session *evolution.Session
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	scale    int
	camX     int
	camY     int
	screenW  int
	screenH  int
	hoverX   int
	hoverY   int
	hovering bool
}

// New constructs a Game for opts.
func New(opts Options) (*Game, error) {
	opts = opts.withDefaults()
	session, err := evolution.NewSession(opts.Engine, opts.Speed, opts.AutoStart)
	if err != nil {
		return nil, err
	}
	return &Game{
		session: session,
		painter: render.NewGridPainter(),
		overlay: ui.NewOverlay(),
		hud:     ui.NewHUD(opts.HUDWidth),
		scale:   opts.Scale,
	}, nil
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	g, err := New(opts)
	if err != nil {
		return err
	}
	w, h := WindowSize(opts)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(fmt.Sprintf("evosim - seed %d", g.session.World().Seed()))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}

// Update handles per-frame input and drives the session.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	now := time.Now()
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.session.ToggleAuto()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.session.Step(now)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.session.Pacer().Faster()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.session.Pacer().Slower()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.session.Regenerate(); err != nil {
			return err
		}
	}
	g.pan()
	g.zoom()

	g.session.Tick(now)

	view := g.viewport()
	mx, my := ebiten.CursorPosition()
	g.hoverX, g.hoverY, g.hovering = ui.PickTile(mx, my, view, g.scale, 0, 0)
	if g.session.Phase() != evolution.PhaseSimulating {
		g.hovering = false
	}

	g.overlay.Update()
	g.hud.Update(g.session.World(), g.status(), g.hoverX, g.hoverY, g.hovering)
	return nil
}

func (g *Game) pan() {
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowLeft):
		g.camX--
	case ebiten.IsKeyPressed(ebiten.KeyArrowRight):
		g.camX++
	}
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowUp):
		g.camY--
	case ebiten.IsKeyPressed(ebiten.KeyArrowDown):
		g.camY++
	}
	v := g.viewport()
	g.camX, g.camY = v.X, v.Y
}

func (g *Game) zoom() {
	_, wy := ebiten.Wheel()
	switch {
	case wy > 0 && g.scale < maxScale:
		g.scale++
	case wy < 0 && g.scale > minScale:
		g.scale--
	}
}

func (g *Game) viewport() core.Rect {
	gridW := g.screenW - g.hud.Width()
	return core.ClampViewport(g.session.World().Size(), g.camX, g.camY, gridW/g.scale, g.screenH/g.scale)
}

func (g *Game) status() string {
	if g.session.Phase() == evolution.PhaseGenerating {
		return fmt.Sprintf("Generating %3.0f%%", g.session.Generator().Fraction()*100)
	}
	mode := "paused"
	if g.session.Auto() {
		mode = "running"
	}
	return fmt.Sprintf("Speed x%d  %s", g.session.Pacer().Speed(), mode)
}

// Draw renders the current world state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	gridW := g.screenW - g.hud.Width()
	if g.session.Phase() == evolution.PhaseGenerating {
		text.Draw(screen, g.status(), basicfont.Face7x13, 12, 24, color.White)
	} else {
		world := g.session.World()
		view := g.viewport()
		g.painter.Blit(screen, world.Cells(), world.Size().W, view, world.Palette(), g.scale, 0, 0)
		g.overlay.Draw(screen, world, view, g.scale, 0, 0, g.session.Frame(time.Now()), g.hoverX, g.hoverY, g.hovering)
	}
	g.hud.Draw(screen, gridW, g.screenH)
}

// Layout follows the window size so resizing reveals more of the world.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.screenW, g.screenH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
