package storybook

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C67A5C"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1)

	listStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	focusedBorder = lipgloss.Color("#C67A5C")
	detailStyle   = lipgloss.NewStyle().PaddingLeft(2)

	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C67A5C"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	valueStyle  = lipgloss.NewStyle().Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	classStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)
