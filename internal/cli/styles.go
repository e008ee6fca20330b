package cli

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	styleOK    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))  // green
	styleError = lipgloss.NewStyle().Foreground(lipgloss.Color("196")) // red
	styleMuted = lipgloss.NewStyle().Foreground(lipgloss.Color("245")) // gray
	styleBold  = lipgloss.NewStyle().Bold(true)
)

const (
	symbolOK    = "✓"
	symbolError = "✗"
)

func renderOK(msg string) string {
	return styleOK.Render(symbolOK) + " " + msg
}

func renderError(msg string) string {
	return styleError.Render(symbolError) + " " + msg
}
