package viz

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/vlab/internal/experiment"
	"github.com/san-kum/vlab/internal/lab"
)

const (
	stateMenu = iota
	stateConfig
	stateSim
)

var (
	difficulties = []string{experiment.All, string(lab.Beginner), string(lab.Intermediate), string(lab.Advanced)}
	sorts        = []string{experiment.SortPopular, experiment.SortAZ}
)

// App is the interactive shell: catalog menu, parameter configuration and
// the live experiment view.
type App struct {
	state  int
	cursor int

	reg        *experiment.Registry
	categories []string
	category   int
	difficulty int
	sort       int
	visible    []lab.Info

	inst        lab.Instance
	specs       []lab.ParamSpec
	paramCursor int
	editing     bool
	editBuf     string
	err         error

	fps    int
	logger *slog.Logger
	live   Model
}

func NewApp(reg *experiment.Registry, fps int, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	a := &App{
		reg:        reg,
		categories: append([]string{experiment.All}, experiment.Categories(reg.List())...),
		fps:        fps,
		logger:     logger,
	}
	a.refilter()
	return a
}

func (a *App) query() experiment.Query {
	return experiment.Query{
		Category:   a.categories[a.category],
		Difficulty: difficulties[a.difficulty],
		Sort:       sorts[a.sort],
	}
}

func (a *App) refilter() {
	a.visible = experiment.Filter(a.reg.List(), a.query())
	if a.cursor >= len(a.visible) {
		a.cursor = max(len(a.visible)-1, 0)
	}
}

func (a App) Init() tea.Cmd { return nil }

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(msg)
	default:
		if a.state == stateSim {
			next, cmd := a.live.Update(msg)
			a.live = next.(Model)
			return a, cmd
		}
	}
	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (App, tea.Cmd) {
	switch a.state {
	case stateMenu:
		return a.menuKey(msg)
	case stateConfig:
		return a.configKey(msg)
	case stateSim:
		if msg.String() == "esc" {
			a.inst.Pause()
			a.state = stateConfig
			return a, nil
		}
		next, cmd := a.live.Update(msg)
		a.live = next.(Model)
		return a, cmd
	}
	return a, nil
}

func (a App) menuKey(msg tea.KeyMsg) (App, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(a.visible)-1 {
			a.cursor++
		}
	case "c":
		a.category = (a.category + 1) % len(a.categories)
		a.refilter()
	case "d":
		a.difficulty = (a.difficulty + 1) % len(difficulties)
		a.refilter()
	case "s":
		a.sort = (a.sort + 1) % len(sorts)
		a.refilter()
	case "enter", " ":
		if len(a.visible) == 0 {
			return a, nil
		}
		inst, err := a.reg.New(a.visible[a.cursor].ID, lab.WithLogger(a.logger))
		if err != nil {
			a.err = err
			return a, nil
		}
		a.inst, a.specs = inst, inst.Params().Specs()
		a.state, a.paramCursor, a.err = stateConfig, 0, nil
	}
	return a, nil
}

func (a App) configKey(msg tea.KeyMsg) (App, tea.Cmd) {
	if a.editing {
		switch msg.String() {
		case "enter":
			v, err := strconv.ParseFloat(a.editBuf, 64)
			if err == nil {
				_, err = a.inst.Set(a.specs[a.paramCursor].Name, v)
			}
			a.err = err
			a.editing, a.editBuf = false, ""
		case "esc":
			a.editing, a.editBuf = false, ""
		case "backspace":
			if len(a.editBuf) > 0 {
				a.editBuf = a.editBuf[:len(a.editBuf)-1]
			}
		default:
			if len(msg.String()) == 1 {
				c := msg.String()[0]
				if (c >= '0' && c <= '9') || c == '.' || c == '-' {
					a.editBuf += string(c)
				}
			}
		}
		return a, nil
	}

	switch msg.String() {
	case "q", "esc":
		a.state, a.inst = stateMenu, nil
	case "up", "k":
		if a.paramCursor > 0 {
			a.paramCursor--
		}
	case "down", "j":
		if a.paramCursor < len(a.specs)-1 {
			a.paramCursor++
		}
	case "left", "h":
		a.nudge(-1)
	case "right", "l":
		a.nudge(1)
	case "enter":
		a.editing = true
		a.editBuf = strconv.FormatFloat(a.inst.Params().Get(a.specs[a.paramCursor].Name), 'f', -1, 64)
	case "s", " ":
		a.live = NewModel(a.inst, a.fps, a.logger)
		a.state = stateSim
		return a, a.live.Init()
	}
	return a, nil
}

func (a *App) nudge(dir int) {
	spec := a.specs[a.paramCursor]
	_, a.err = a.inst.Set(spec.Name, a.inst.Params().Get(spec.Name)+float64(dir)*spec.Step)
}

func (a App) View() string {
	switch a.state {
	case stateMenu:
		return a.viewMenu()
	case stateConfig:
		return a.viewConfig()
	case stateSim:
		return a.live.View()
	}
	return ""
}

func (a App) viewMenu() string {
	st := newStyles(CurrentTheme)
	var b strings.Builder
	b.WriteString("\n\n    " + st.title.Render("VLAB") + "\n    " + st.subtle.Render("virtual STEM laboratory") + "\n    " + st.subtle.Render("─────────────────────────") + "\n")
	q := a.query()
	b.WriteString("    " + st.subtle.Render(fmt.Sprintf("category: %s  difficulty: %s  sort: %s", q.Category, q.Difficulty, q.Sort)) + "\n")
	b.WriteString("    " + st.subtle.Render(fmt.Sprintf("%d experiments available", len(a.visible))) + "\n\n")

	for i, info := range a.visible {
		meta := fmt.Sprintf("%s · %s", info.Category, info.Difficulty)
		if i == a.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n", st.key.Render("▸"), st.selected.Render(fmt.Sprintf("%-34s", info.Title)), st.value.Render(meta)))
		} else {
			b.WriteString(fmt.Sprintf("      %s  %s\n", st.subtle.Render(fmt.Sprintf("%-34s", info.Title)), st.subtle.Render(meta)))
		}
	}
	if len(a.visible) > 0 {
		b.WriteString("\n    " + st.subtle.Render(a.visible[a.cursor].Description) + "\n")
	}
	if a.err != nil {
		b.WriteString("\n    " + st.paused.Render(a.err.Error()) + "\n")
	}
	b.WriteString("\n    " + st.hints("j/k", "navigate", "enter", "select", "c", "category", "d", "difficulty", "s", "sort", "q", "quit") + "\n")
	return b.String()
}

func (a App) viewConfig() string {
	st := newStyles(CurrentTheme)
	info := a.inst.Info()
	var b strings.Builder
	b.WriteString("\n\n    " + st.title.Render(strings.ToUpper(info.Title)) + "\n    " + st.subtle.Render(info.Description) + "\n    " + st.subtle.Render("─────────────────────────") + "\n\n")

	params := a.inst.Params()
	for i, spec := range a.specs {
		v := params.Get(spec.Name)
		valStr := fmt.Sprintf("%8g", v)
		if a.editing && i == a.paramCursor {
			valStr = fmt.Sprintf("%8s", a.editBuf+"_")
		}
		rng := fmt.Sprintf("[%g, %g]%s", spec.Min, spec.Max, unitSuffix(spec.Unit))
		if i == a.paramCursor {
			b.WriteString(fmt.Sprintf("    %s %s %s  %s\n", st.key.Render("▸"), st.value.Render(fmt.Sprintf("%-20s", spec.Label)), st.selected.Render(valStr), st.subtle.Render(rng)))
		} else {
			b.WriteString(fmt.Sprintf("      %s %s  %s\n", st.subtle.Render(fmt.Sprintf("%-20s", spec.Label)), st.subtle.Render(valStr), st.subtle.Render(rng)))
		}
	}
	if a.err != nil {
		b.WriteString("\n    " + st.paused.Render(a.err.Error()) + "\n")
	}
	b.WriteString("\n    " + st.hints("j/k", "select", "h/l", "adjust", "enter", "edit", "s", "start", "esc", "back") + "\n")
	return b.String()
}

// RunInteractive starts the full-screen shell.
func RunInteractive(reg *experiment.Registry, fps int, logger *slog.Logger) error {
	_, err := tea.NewProgram(NewApp(reg, fps, logger), tea.WithAltScreen()).Run()
	return err
}

// RunLive opens the live view for a single experiment.
func RunLive(inst lab.Instance, fps int, logger *slog.Logger) error {
	_, err := tea.NewProgram(NewModel(inst, fps, logger), tea.WithAltScreen()).Run()
	return err
}
