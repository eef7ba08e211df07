package cli

import "github.com/charmbracelet/lipgloss"

// Output styles, matching the muted/accent palette used across the
// rest of our tooling.
var (
	styleMuted  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	styleAccent = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	styleScore  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)
