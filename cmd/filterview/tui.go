package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-filterview/controller"
	"github.com/cwbudde/algo-filterview/graph"
	"github.com/cwbudde/algo-filterview/render/term"
	"github.com/cwbudde/algo-filterview/unit"
)

// statusLines is the space below the graph for values and key help.
const statusLines = 2

// TUICmd runs the interactive editor.
type TUICmd struct {
	FilterFlags `embed:""`

	Log string `type:"path" default:"filterview-debug.log" help:"Log file used with --verbose."`
}

// Run starts the editor and blocks until the user quits.
func (c *TUICmd) Run(g *Globals) error {
	logger := zap.NewNop()
	if g.Verbose {
		l, closeLog, err := newFileLogger(c.Log)
		if err != nil {
			return err
		}
		defer func() { _ = closeLog() }()
		logger = l
	}

	u, err := newUnit(g, c.FilterFlags, logger)
	if err != nil {
		return err
	}

	view := term.New()
	dispatch := &programDispatcher{}
	ctrl := controller.New(graph.New(term.EngineOptions(80, 24-statusLines)...),
		controller.WithLogger(logger),
		controller.WithDispatcher(dispatch),
		controller.WithRenderer(view),
	)

	p := tea.NewProgram(newModel(ctrl, view, u), tea.WithAltScreen(), tea.WithMouseCellMotion())
	dispatch.p = p

	// The program loop runs on this goroutine, so connecting here is
	// connecting on the UI goroutine.
	if err := ctrl.Connect(u.Parameters(), u); err != nil {
		return err
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("UI error: %w", err)
	}
	return nil
}

// runMsg carries work posted from other goroutines onto the program loop.
type runMsg func()

// programDispatcher posts through the bubbletea message loop. Send blocks
// until the loop receives, and observers may fire from inside Update, so
// each post gets its own goroutine.
type programDispatcher struct {
	p *tea.Program
}

func (d *programDispatcher) Post(fn func()) {
	go d.p.Send(runMsg(fn))
}

type editField int

const (
	editNone editField = iota
	editFrequency
	editResonance
)

type model struct {
	ctrl *controller.Controller
	view *term.Renderer
	unit *unit.Unit

	editing editField
	input   string
	status  string
}

func newModel(ctrl *controller.Controller, view *term.Renderer, u *unit.Unit) model {
	return model{ctrl: ctrl, view: view, unit: u}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case runMsg:
		msg()

	case tea.WindowSizeMsg:
		w, h := term.SurfaceSize(msg.Width, max(msg.Height-statusLines, 1))
		m.ctrl.Engine().SetSurface(w, h)

	case tea.MouseMsg:
		m.mouse(tea.MouseEvent(msg))

	case tea.KeyMsg:
		if m.editing != editNone {
			return m.editKey(msg), nil
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.ctrl.Engine().PointerCancel()
			m.ctrl.Redraw()
		case "f":
			m.editing, m.input = editFrequency, ""
		case "r":
			m.editing, m.input = editResonance, ""
		case "v":
			m.ctrl.ToggleViewConfiguration()
		case "1", "2":
			if err := m.unit.SelectPreset(int(msg.Runes[0] - '1')); err != nil {
				m.status = err.Error()
			}
		}
	}
	return m, nil
}

// mouse maps a cell to the dot at its centre and feeds the engine.
func (m *model) mouse(ev tea.MouseEvent) {
	e := m.ctrl.Engine()
	p := e.Geometry().FromView(graph.Point{X: float64(ev.X*2) + 1, Y: float64(ev.Y*4) + 2})

	switch ev.Action {
	case tea.MouseActionPress:
		if ev.Button == tea.MouseButtonLeft {
			e.PointerDown(p)
		}
	case tea.MouseActionMotion:
		e.PointerMove(p)
	case tea.MouseActionRelease:
		e.PointerUp(p)
	}
}

func (m model) editKey(msg tea.KeyMsg) model {
	switch msg.Type {
	case tea.KeyEsc:
		m.editing = editNone
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeyEnter:
		var err error
		if m.editing == editFrequency {
			_, err = m.ctrl.SetFrequencyText(m.input)
		} else {
			_, err = m.ctrl.SetResonanceText(m.input)
		}
		m.status = ""
		if err != nil {
			m.status = err.Error()
		}
		m.editing = editNone
	case tea.KeyRunes, tea.KeySpace:
		m.input += string(msg.Runes)
	}
	return m
}

func (m model) View() string {
	var b strings.Builder
	if m.ctrl.GraphVisible() {
		b.WriteString(m.view.View())
		b.WriteByte('\n')
	}

	freq := keyStyle.Render("Cutoff:") + " " + valueStyle.Render(m.ctrl.FrequencyText()+" Hz")
	res := keyStyle.Render("Resonance:") + " " + valueStyle.Render(m.ctrl.ResonanceText()+" dB")
	switch m.editing {
	case editFrequency:
		freq = keyStyle.Render("Cutoff:") + " " + titleStyle.Render(m.input+"_")
	case editResonance:
		res = keyStyle.Render("Resonance:") + " " + titleStyle.Render(m.input+"_")
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top, freq, "   ", res)
	if p, ok := m.unit.CurrentPreset(); ok {
		line += "   " + keyStyle.Render("Preset:") + " " + valueStyle.Render(p.Name)
	}
	b.WriteString(line)
	b.WriteByte('\n')

	help := "drag to edit · f/r type value · 1/2 presets · v view · q quit"
	if m.status != "" {
		help = errorStyle.Render(m.status)
	}
	b.WriteString(keyStyle.Render(help))
	return b.String()
}
