// Package session implements the interactive terminal calculator: a formula
// picker and a formula screen that re-solves on every keystroke.
package session

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/sells-group/formula-cli/internal/formula"
	"github.com/sells-group/formula-cli/internal/solve"
)

type viewMode int

const (
	viewPicker viewMode = iota
	viewFormula
)

// Model is the bubbletea model for the session.
type Model struct {
	disp *solve.Dispatcher
	keys KeyMap
	mode viewMode

	// Picker
	filter    textinput.Model
	filtering bool
	items     []*formula.Definition
	cursor    int

	// Formula screen
	def      *formula.Definition
	scenario int
	vars     []formula.Variable
	inputs   []textinput.Model
	text     map[string]string // typed text of every field, active or not
	focus    int
	outcome  solve.Outcome
	err      error

	width    int
	height   int
	quitting bool
}

// New creates a session over d, starting at the picker.
func New(d *solve.Dispatcher) Model {
	f := textinput.New()
	f.Prompt = "/ "
	f.Placeholder = "search formulas"
	f.CharLimit = 64

	return Model{
		disp:   d,
		keys:   DefaultKeyMap(),
		mode:   viewPicker,
		filter: f,
		items:  d.Catalog().All(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQ) {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.mode {
		case viewPicker:
			return m.updatePicker(msg)
		case viewFormula:
			return m.updateFormula(msg)
		}
	}
	return m, nil
}

func (m Model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filtering {
		switch msg.String() {
		case "esc":
			m.filtering = false
			m.filter.Blur()
			m.filter.Reset()
			m.refilter()
			return m, nil
		case "enter":
			m.filtering = false
			m.filter.Blur()
			return m, nil
		case "up", "down":
			// Fall through to list navigation.
		default:
			var cmd tea.Cmd
			m.filter, cmd = m.filter.Update(msg)
			m.refilter()
			return m, cmd
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		cmd := m.filter.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			return m.open(m.items[m.cursor])
		}
	}
	return m, nil
}

func (m *Model) refilter() {
	m.items = m.disp.Catalog().Search(m.filter.Value())
	if m.cursor >= len(m.items) {
		m.cursor = max(len(m.items)-1, 0)
	}
}

// open switches to the formula screen for def with empty inputs.
func (m Model) open(def *formula.Definition) (tea.Model, tea.Cmd) {
	m.mode = viewFormula
	m.def = def
	m.scenario = 0
	m.text = make(map[string]string)
	m.buildInputs()
	m.solve()
	zap.L().Debug("session: open formula", zap.String("formula", def.ID))
	cmd := m.focusInput(0)
	return m, cmd
}

// buildInputs creates one input per active field, filled with any text
// typed into that field earlier, even under another scenario.
func (m *Model) buildInputs() {
	m.vars = m.def.Active(m.scenarioID())
	m.inputs = make([]textinput.Model, len(m.vars))
	for i, v := range m.vars {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = v.Placeholder
		in.CharLimit = 32
		in.Width = 20
		in.SetValue(m.text[v.ID])
		m.inputs[i] = in
	}
	m.focus = 0
}

func (m *Model) focusInput(i int) tea.Cmd {
	if len(m.inputs) == 0 {
		return nil
	}
	m.inputs[m.focus].Blur()
	m.focus = (i + len(m.inputs)) % len(m.inputs)
	return m.inputs[m.focus].Focus()
}

func (m Model) scenarioID() string {
	if m.def == nil || len(m.def.Scenarios) == 0 {
		return ""
	}
	return m.def.Scenarios[m.scenario].ID
}

// fields snapshots the raw text of every input.
func (m Model) fields() map[string]string {
	out := make(map[string]string, len(m.inputs))
	for i, v := range m.vars {
		out[v.ID] = m.inputs[i].Value()
	}
	return out
}

// solve re-runs the dispatcher on the current snapshot. A derived value is
// only ever shown next to its blank input, so it is never fed back.
func (m *Model) solve() {
	m.outcome, m.err = m.disp.Solve(solve.Request{
		Formula:  m.def.ID,
		Scenario: m.scenarioID(),
		Fields:   m.fields(),
	})
	if m.err != nil {
		zap.L().Warn("session: solve", zap.String("formula", m.def.ID), zap.Error(m.err))
	}
}

func (m Model) updateFormula(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.mode = viewPicker
		m.def = nil
		m.inputs = nil
		m.vars = nil
		m.text = nil
		m.outcome = solve.Outcome{}
		m.err = nil
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		for i := range m.inputs {
			m.inputs[i].Reset()
		}
		m.text = make(map[string]string)
		m.solve()
		return m, nil

	case key.Matches(msg, m.keys.Next):
		cmd := m.focusInput(m.focus + 1)
		return m, cmd

	case key.Matches(msg, m.keys.Prev):
		cmd := m.focusInput(m.focus - 1)
		return m, cmd

	case m.def.IsDecision() && key.Matches(msg, m.keys.Scenario, m.keys.PrevScen):
		step := 1
		if key.Matches(msg, m.keys.PrevScen) {
			step = -1
		}
		n := len(m.def.Scenarios)
		m.scenario = (m.scenario + step + n) % n
		m.buildInputs()
		m.solve()
		cmd := m.focusInput(0)
		return m, cmd
	}

	if len(m.inputs) == 0 {
		return m, nil
	}
	before := m.inputs[m.focus].Value()
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if after := m.inputs[m.focus].Value(); after != before {
		m.text[m.vars[m.focus].ID] = after
		m.solve()
	}
	return m, cmd
}

// Outcome returns the latest solve outcome on the formula screen.
func (m Model) Outcome() solve.Outcome {
	return m.outcome
}

// Formula returns the open formula, or nil at the picker.
func (m Model) Formula() *formula.Definition {
	return m.def
}

// Scenario returns the selected scenario id of an open decision helper.
func (m Model) Scenario() string {
	return m.scenarioID()
}

// Items returns the formulas the picker currently lists.
func (m Model) Items() []*formula.Definition {
	return m.items
}
