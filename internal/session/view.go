package session

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/sells-group/formula-cli/internal/solve"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.mode == viewFormula {
		return m.viewFormula()
	}
	return m.viewPicker()
}

func (m Model) viewPicker() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Financial Formulas"))
	b.WriteString("\n")

	if m.filtering || m.filter.Value() != "" {
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")
	}

	if len(m.items) == 0 {
		b.WriteString(InfoStyle.Render("No formulas match."))
		b.WriteString("\n")
	}

	category := ""
	for i, def := range m.items {
		if def.Category != category {
			category = def.Category
			b.WriteString(CategoryStyle.Render(category))
			b.WriteString("\n")
		}
		if i == m.cursor {
			b.WriteString(SelectedItemStyle.Render(def.Name))
		} else {
			b.WriteString(ItemStyle.Render(def.Name))
		}
		b.WriteString("\n")
	}

	b.WriteString(helpLine(m.keys.pickerHelp()))
	return b.String()
}

func (m Model) viewFormula() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(m.def.Name))
	b.WriteString("\n")
	b.WriteString(DescriptionStyle.Render(m.def.Description))
	b.WriteString("\n\n")

	if m.def.IsDecision() {
		tabs := make([]string, len(m.def.Scenarios))
		for i, s := range m.def.Scenarios {
			if i == m.scenario {
				tabs[i] = ActiveScenarioStyle.Render(s.Label)
			} else {
				tabs[i] = ScenarioStyle.Render(s.Label)
			}
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
		b.WriteString("\n\n")
	}

	derived := m.outcome.State == solve.StateSolved && m.outcome.Kind == solve.KindComputed
	for i, v := range m.vars {
		label := LabelStyle
		switch {
		case slices.Contains(m.outcome.Offending, v.ID):
			label = ErrorLabelStyle
		case i == m.focus:
			label = FocusedLabelStyle
		}
		b.WriteString(label.Render(v.Label))
		b.WriteString(m.inputs[i].View())
		if derived && v.ID == m.outcome.Field {
			b.WriteString(DerivedStyle.Render("  = " + m.outcome.Display))
		}
		b.WriteString("\n")
	}

	b.WriteString(StatusStyle.Render(m.status()))
	b.WriteString("\n")
	b.WriteString(helpLine(m.keys.formulaHelp(m.def.IsDecision())))
	return b.String()
}

// status renders the outcome message in the tone of its state.
func (m Model) status() string {
	if m.err != nil {
		return ErrorStyle.Render(m.err.Error())
	}
	o := m.outcome
	switch {
	case o.State == solve.StateError:
		return ErrorStyle.Render(o.Message)
	case o.State == solve.StateBlocked:
		return WarningStyle.Render(o.Message)
	case o.Kind == solve.KindDecision && o.Decision != nil && o.Decision.Warning != "":
		return WarningStyle.Render(o.Message)
	case o.State == solve.StateSolved, o.Kind == solve.KindDecision:
		return SuccessStyle.Render(o.Message)
	case o.Message != "":
		return InfoStyle.Render(o.Message)
	default:
		return InfoStyle.Render(solve.MsgFillAllButOne)
	}
}

func helpLine(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, k := range bindings {
		h := k.Help()
		if h.Key == "" {
			continue
		}
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return HelpStyle.Render(strings.Join(parts, " • "))
}
