package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/digirain/internal/palette"
	"github.com/san-kum/digirain/internal/rain"
)

const minFrame = time.Millisecond

type TickMsg time.Time

// Builder creates a simulation of the given size reporting to r.
type Builder func(width, height int, r rain.CellRenderer) (*rain.Simulation, error)

// Model hosts a simulation inside a Bubble Tea program. A positive width or
// height is kept as given; a zero dimension follows the window size. With
// both fixed the grid is built up front.
type Model struct {
	build  Builder
	sim    *rain.Simulation
	buf    *Buffer
	delay  time.Duration
	width  int
	height int
	paused bool
	status bool
	err    error
}

func NewModel(build Builder, width, height int, delay time.Duration) (Model, error) {
	m := Model{build: build, delay: delay, width: width, height: height, status: true}
	if m.fixed() {
		if err := m.resize(width, height); err != nil {
			return m, err
		}
	}
	return m, nil
}

func (m Model) fixed() bool { return m.width > 0 && m.height > 0 }

func (m *Model) resize(width, height int) error {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	buf := NewBuffer(width, height)
	sim, err := m.build(width, height, buf)
	if err != nil {
		return err
	}
	m.sim, m.buf = sim, buf
	return nil
}

func (m Model) tick() tea.Cmd {
	d := m.delay
	if d < minFrame {
		d = minFrame
	}
	return tea.Tick(d, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if m.sim != nil && !m.paused {
			m.sim.Step()
		}
		return m, m.tick()
	case tea.WindowSizeMsg:
		if m.fixed() {
			return m, nil
		}
		w, h := msg.Width, msg.Height-1
		if m.width > 0 {
			w = m.width
		}
		if m.height > 0 {
			h = m.height
		}
		if err := m.resize(w, h); err != nil {
			m.err = err
			return m, tea.Quit
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "s":
			m.status = !m.status
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.buf == nil {
		return ""
	}
	_, h := m.buf.Size()
	var b strings.Builder
	for y := 0; y < h; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(RenderRow(m.buf.Row(y)))
	}
	if m.status {
		b.WriteByte('\n')
		b.WriteString(m.statusLine())
	}
	return b.String()
}

func (m Model) statusLine() string {
	state := StatusRunning.Render("▶ running")
	if m.paused {
		state = StatusPaused.Render("⏸ paused")
	}
	cur := m.sim.Current()
	colors := fmt.Sprintf("%s%s%s", Swatch(cur.Head, "█"), Swatch(cur.Fade, "█"), Swatch(cur.Tail, "█"))
	return fmt.Sprintf("%s  %s %d  %s %s  %s",
		state,
		MetricLabel.Render("tick"), m.sim.Ticks(),
		MetricLabel.Render(palette.Name(cur.Fade)), colors,
		KeyHint.Render("space pause · s status · q quit"))
}

func (m Model) Simulation() *rain.Simulation { return m.sim }
func (m Model) Paused() bool                 { return m.paused }

// Err is the error that made the program quit, if any.
func (m Model) Err() error { return m.err }

// RunTUI runs the rain full-screen until the user quits and returns the
// final model.
func RunTUI(build Builder, width, height int, delay time.Duration) (Model, error) {
	m, err := NewModel(build, width, height, delay)
	if err != nil {
		return m, err
	}
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return m, err
	}
	if fm, ok := final.(Model); ok {
		return fm, fm.Err()
	}
	return m, nil
}
