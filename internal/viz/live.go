package viz

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/vlab/internal/lab"
)

const (
	canvasWidth  = 60
	canvasHeight = 20
	sliderWidth  = 14
)

type TickMsg time.Time

// Model is the live view of one experiment: diagram, readouts, parameter
// sliders and a chart of the current series.
//
// Frames are requested with tea.Tick only while the clock runs; pausing lets
// the pending frame lapse so the clock cannot advance in the background.
type Model struct {
	inst     lab.Instance
	canvas   *Canvas
	specs    []lab.ParamSpec
	selected int
	series   int
	column   int
	interval time.Duration
	ticking  bool
	showHelp bool
	err      error
	logger   *slog.Logger
}

func NewModel(inst lab.Instance, fps int, logger *slog.Logger) Model {
	if fps <= 0 {
		fps = 60
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return Model{
		inst:     inst,
		canvas:   NewCanvas(canvasWidth, canvasHeight),
		specs:    inst.Params().Specs(),
		interval: time.Second / time.Duration(fps),
		ticking:  inst.Phase() == lab.Running,
		logger:   logger,
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	if m.ticking {
		return m.tick()
	}
	return nil
}

// Update handles input events and frame ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case TickMsg:
		if m.inst.Phase() != lab.Running {
			m.ticking = false
			return m, nil
		}
		m.inst.Tick(time.Time(msg))
		return m, m.tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ":
		m.inst.Toggle()
	case "r":
		m.inst.Reset()
	case "R":
		m.inst.ResetParams()
	case "tab":
		m.cycleParam(1)
	case "shift+tab":
		m.cycleParam(-1)
	case "up", "k":
		m.stepParam(1)
	case "down", "j":
		m.stepParam(-1)
	case "pgup":
		m.stepParam(10)
	case "pgdown":
		m.stepParam(-10)
	case "s":
		if n := m.inst.Series().Len(); n > 0 {
			m.series = (m.series + 1) % n
			m.column = 0
		}
	case "c":
		m.column++
	case "t":
		NextTheme()
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, m.resume()
}

// resume restarts the frame chain when the clock is running without one.
func (m *Model) resume() tea.Cmd {
	if m.inst.Phase() == lab.Running && !m.ticking {
		m.ticking = true
		return m.tick()
	}
	return nil
}

func (m *Model) cycleParam(dir int) {
	if len(m.specs) == 0 {
		return
	}
	m.selected = (m.selected + dir + len(m.specs)) % len(m.specs)
}

// stepParam moves the selected parameter by n slider steps.
func (m *Model) stepParam(n int) {
	if len(m.specs) == 0 {
		return
	}
	spec := m.specs[m.selected]
	cur := m.inst.Params().Get(spec.Name)
	stored, err := m.inst.Set(spec.Name, cur+float64(n)*spec.Step)
	m.err = err
	if err != nil {
		m.logger.Warn("set parameter", "name", spec.Name, "err", err)
		return
	}
	m.logger.Debug("parameter stepped", "name", spec.Name, "value", stored)
}

func (m Model) status(st styles) string {
	switch m.inst.Phase() {
	case lab.Running:
		return st.running.Render("RUNNING")
	case lab.Paused:
		return st.paused.Render("PAUSED")
	default:
		return st.subtle.Render("IDLE")
	}
}

// View renders the TUI interface.
func (m Model) View() string {
	st := newStyles(CurrentTheme)
	m.inst.Draw(m.canvas)
	canvasView := st.canvas.Render(m.canvas.String())

	info := m.inst.Info()
	var s strings.Builder
	s.WriteString(st.title.Render(strings.ToUpper(info.Title)) + "\n")
	s.WriteString(fmt.Sprintf("%s  %s\n\n", m.status(st), st.subtle.Render(fmt.Sprintf("t = %.2fs", m.inst.Time()))))

	for _, r := range m.inst.Readout() {
		label, value, _ := strings.Cut(r.Format(), ": ")
		s.WriteString(st.label.Render(label) + st.value.Render(value) + "\n")
	}
	s.WriteString("\n")

	params := m.inst.Params()
	for i, spec := range m.specs {
		v := params.Get(spec.Name)
		bar := ProgressBar((v-spec.Min)/(spec.Max-spec.Min), sliderWidth)
		line := fmt.Sprintf("%-14s %s %g%s", spec.Label, bar, v, unitSuffix(spec.Unit))
		if i == m.selected {
			s.WriteString(st.selected.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + st.subtle.Render(line) + "\n")
		}
	}
	if m.err != nil {
		s.WriteString(st.paused.Render(m.err.Error()) + "\n")
	}

	if chart := m.chart(); chart != "" {
		s.WriteString(st.graph.Render(chart) + "\n")
	}

	if m.showHelp {
		s.WriteString("\n" + st.hints("space", "play/pause", "r", "reset", "R", "defaults") + "\n")
		s.WriteString(st.hints("tab", "next param", "↑/↓", "adjust", "pgup/pgdn", "x10") + "\n")
		s.WriteString(st.hints("s", "series", "c", "column", "t", "theme", "q", "quit") + "\n")
	} else {
		s.WriteString("\n" + st.hints("space", "play", "↑/↓", "tune", "?", "help", "q", "quit") + "\n")
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, st.panel.Render(s.String()))
}

// chart plots the selected column of the selected series.
func (m Model) chart() string {
	all := m.inst.Series().All()
	if len(all) == 0 {
		return ""
	}
	ser := all[m.series%len(all)]
	if len(ser.Points) < 2 || len(ser.YNames) == 0 {
		return ""
	}
	col := m.column % len(ser.YNames)
	return asciigraph.Plot(ser.Ys(col),
		asciigraph.Height(6),
		asciigraph.Width(36),
		asciigraph.Caption(fmt.Sprintf("%s: %s vs %s", ser.Label, ser.YNames[col], ser.XName)),
	)
}

func unitSuffix(u string) string {
	if u == "" {
		return ""
	}
	return " " + u
}
