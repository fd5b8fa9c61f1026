package session

import "github.com/charmbracelet/lipgloss"

// Color palette.
var (
	ColorPrimary   = lipgloss.Color("#0EA5E9") // Sky
	ColorSuccess   = lipgloss.Color("#10B981") // Emerald
	ColorWarning   = lipgloss.Color("#F59E0B") // Amber
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorText      = lipgloss.Color("#F8FAFC")
	ColorTextMuted = lipgloss.Color("#94A3B8")
	ColorTextDim   = lipgloss.Color("#64748B")
	ColorSelected  = lipgloss.Color("#1E3A5F")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true).
			MarginBottom(1)

	CategoryStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true)

	ItemStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			PaddingLeft(2)

	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(ColorText).
				Background(ColorSelected).
				Bold(true).
				PaddingLeft(2)

	DescriptionStyle = lipgloss.NewStyle().
				Foreground(ColorTextDim)
)

var (
	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Width(40)

	FocusedLabelStyle = LabelStyle.
				Foreground(ColorPrimary).
				Bold(true)

	ErrorLabelStyle = LabelStyle.
			Foreground(ColorError).
			Bold(true)

	DerivedStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	ScenarioStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	ActiveScenarioStyle = ScenarioStyle.
				Foreground(ColorText).
				Background(ColorSelected).
				Bold(true)
)

// Status line styles, one per outcome tone.
var (
	InfoStyle    = lipgloss.NewStyle().Foreground(ColorTextMuted)
	SuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	WarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	ErrorStyle   = lipgloss.NewStyle().Foreground(ColorError).Bold(true)

	StatusStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorTextDim).
			Padding(0, 1).
			MarginTop(1)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim).
			MarginTop(1)
)
