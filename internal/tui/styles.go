package tui

import "github.com/charmbracelet/lipgloss"

// styles contains all lipgloss styles used by the TUI.
var styles = struct {
	// Layout styles
	Container lipgloss.Style
	Divider   lipgloss.Style

	// Header styles
	Title   lipgloss.Style
	Address lipgloss.Style
	Group   lipgloss.Style

	// Totals styles
	Label lipgloss.Style
	Value lipgloss.Style
	Speed lipgloss.Style

	// Transfer list styles
	TransferName lipgloss.Style
	Percentage   lipgloss.Style

	// Footer style
	Footer lipgloss.Style

	// Status colors
	Error lipgloss.Style
	Stale lipgloss.Style
}{
	Container: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")),

	Divider: lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")),

	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("212")),

	Address: lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")),

	Group: lipgloss.NewStyle().
		Foreground(lipgloss.Color("39")),

	Label: lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")),

	Value: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("252")),

	Speed: lipgloss.NewStyle().
		Foreground(lipgloss.Color("82")),

	TransferName: lipgloss.NewStyle().
		Foreground(lipgloss.Color("250")),

	Percentage: lipgloss.NewStyle().
		Foreground(lipgloss.Color("114")),

	Footer: lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")),

	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color("196")),

	Stale: lipgloss.NewStyle().
		Foreground(lipgloss.Color("214")),
}
