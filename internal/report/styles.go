package report

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("178"))
	successStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failureStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	cancelledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	detailStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	summaryStyle   = lipgloss.NewStyle().MarginTop(1)
)
