package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"evosim/internal/core"
	"evosim/internal/sims/evolution"
)

// statusLines is the number of rows above the grid.
const statusLines = 3

// Options configures a viewer session.
type Options struct {
	Engine    evolution.Config
	Speed     int
	Tick      time.Duration
	AutoStart bool
	// Width and Height are the initial terminal size; Run fills them in
	// from the terminal when zero.
	Width  int
	Height int
}

// Model is the Bubble Tea model for the terminal viewer.
type Model struct {
	opts    Options
	session *evolution.Session
	styles  Styles
	keys    KeyMap
	help    help.Model

	cursorX  int
	cursorY  int
	viewX    int
	viewY    int
	termW    int
	termH    int
	quitting bool

	now func() time.Time
}

// NewModel creates the session described by opts. Generation starts on the
// first tick.
func NewModel(opts Options) (Model, error) {
	session, err := evolution.NewSession(opts.Engine, opts.Speed, opts.AutoStart)
	if err != nil {
		return Model{}, err
	}
	if opts.Tick <= 0 {
		opts.Tick = 33 * time.Millisecond
	}
	return Model{
		opts:    opts,
		session: session,
		styles:  NewStyles(session.World().Palette()),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		termW:   opts.Width,
		termH:   opts.Height,
		now:     time.Now,
	}, nil
}

// World exposes the world being shown.
func (m Model) World() *evolution.World { return m.session.World() }

// Phase reports whether the world is still generating.
func (m Model) Phase() evolution.Phase { return m.session.Phase() }

// Auto reports whether auto-advance is on.
func (m Model) Auto() bool { return m.session.Auto() }

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Tick)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.termW, m.termH = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.followCursor()
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Toggle):
		m.session.ToggleAuto()
	case key.Matches(msg, m.keys.Step):
		m.session.Step(m.now())
	case key.Matches(msg, m.keys.Faster):
		m.session.Pacer().Faster()
	case key.Matches(msg, m.keys.Slower):
		m.session.Pacer().Slower()
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(0, -1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(0, 1)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1, 0)
	case key.Matches(msg, m.keys.Regenerate):
		// On allocation failure the current world stays.
		_ = m.session.Regenerate()
	}
	return m, nil
}

func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.session.Tick(now)
	return m, tickCmd(m.opts.Tick)
}

func (m *Model) moveCursor(dx, dy int) {
	size := m.World().Size()
	m.cursorX = min(max(m.cursorX+dx, 0), size.W-1)
	m.cursorY = min(max(m.cursorY+dy, 0), size.H-1)
	m.followCursor()
}

// followCursor scrolls the viewport so the cursor stays visible.
func (m *Model) followCursor() {
	w, h := m.gridSize()
	if m.cursorX < m.viewX {
		m.viewX = m.cursorX
	} else if w > 0 && m.cursorX >= m.viewX+w {
		m.viewX = m.cursorX - w + 1
	}
	if m.cursorY < m.viewY {
		m.viewY = m.cursorY
	} else if h > 0 && m.cursorY >= m.viewY+h {
		m.viewY = m.cursorY - h + 1
	}
	r := m.viewport()
	m.viewX, m.viewY = r.X, r.Y
}

// gridSize is the number of tiles that fit below the status lines and
// above the help line.
func (m Model) gridSize() (int, int) {
	return m.termW, m.termH - statusLines - 1
}

func (m Model) viewport() core.Rect {
	w, h := m.gridSize()
	return core.ClampViewport(m.World().Size(), m.viewX, m.viewY, w, h)
}

// Viewport reports the visible tile rectangle.
func (m Model) Viewport() core.Rect { return m.viewport() }

// Cursor reports the tile under the cursor.
func (m Model) Cursor() (int, int) { return m.cursorX, m.cursorY }

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	world := m.World()
	size := world.Size()
	b.WriteString(titleStyle.Render(fmt.Sprintf("World %dx%d  Seed %d  Generation %d",
		size.W, size.H, world.Seed(), world.Generation())))
	b.WriteRune('\n')

	if m.Phase() == evolution.PhaseGenerating {
		b.WriteString(fmt.Sprintf("Generating world... %3.0f%%", m.session.Generator().Fraction()*100))
		b.WriteRune('\n')
		b.WriteString(dimStyle.Render(m.help.View(m.keys)))
		return b.String()
	}

	t := world.Tally()
	mode := "paused"
	if m.Auto() {
		mode = "running"
	}
	b.WriteString(fmt.Sprintf("Live %d  Dying %d  Born %d  Speed x%d  %s",
		t.Live, t.Dying, t.Born, m.session.Pacer().Speed(), mode))
	b.WriteRune('\n')
	b.WriteString(dimStyle.Render(strings.Join(world.TileReport(m.cursorX, m.cursorY), "; ")))
	b.WriteRune('\n')

	view := m.viewport()
	if view.W > 0 && view.H > 0 {
		b.WriteString(RenderGrid(world.Cells(), size.W, view, m.styles, m.cursorX, m.cursorY))
		b.WriteRune('\n')
	}
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	if opts.Width == 0 || opts.Height == 0 {
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			opts.Width, opts.Height = w, h
		} else {
			opts.Width, opts.Height = 80, 24
		}
	}
	model, err := NewModel(opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
