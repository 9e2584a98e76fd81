package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/termstyle/internal/ui"
)

// Style variables for the interactive playground.
// Initialized from the ui theme system via initTUIStyles().
var (
	panelStyle      lipgloss.Style
	headerStyle     lipgloss.Style
	titleStyle      lipgloss.Style
	subtitleStyle   lipgloss.Style
	panelTitleStyle lipgloss.Style
	labelStyle      lipgloss.Style
	valueStyle      lipgloss.Style
	footerKeyStyle  lipgloss.Style
	footerDescStyle lipgloss.Style
	errorStyle      lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all TUI styles from the current ui theme.
// Called at package init and again from Run() after InitTheme has been invoked.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Background(t.Bg).
		Foreground(t.Text).
		Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		Background(t.Bg).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	subtitleStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	panelTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Info)

	labelStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	valueStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	footerKeyStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	footerDescStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	errorStyle = lipgloss.NewStyle().
		Foreground(t.Error).
		Bold(true)
}
