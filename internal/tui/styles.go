package tui

import "github.com/charmbracelet/lipgloss"

var (
	// TitleStyle is used for screen and dialog titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")). // Purple
			MarginBottom(1)

	// SelectedItemStyle is used for highlighted/selected items.
	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("170")). // Light purple
				Bold(true)

	// NormalItemStyle is used for non-selected items.
	NormalItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")) // Light gray

	// ErrorStyle is used for error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true)

	// SuccessStyle is used for success confirmations.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("78")). // Green
			Bold(true)

	// HelpStyle is used for help text.
	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")). // Dark gray
			MarginTop(1)

	// DialogBoxStyle frames the request dialog overlay.
	DialogBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2)

	// DialogLabelStyle is used for field labels inside the dialog.
	DialogLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241"))

	// ValidationStyle is used for the inline validation message.
	ValidationStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")) // Soft red

	// ButtonStyle is used for the submit control.
	ButtonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("232")).
			Background(lipgloss.Color("62")).
			Padding(0, 2)

	// ButtonDisabledStyle is used for the submit control while loading.
	ButtonDisabledStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("250")).
				Background(lipgloss.Color("240")).
				Padding(0, 2)
)
