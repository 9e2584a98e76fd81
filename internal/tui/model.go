// Package tui implements the interactive styling playground. It renders the
// gradient scale, the token catalog and a rainbow line, and lets the user move
// the highlighted value across the gradient interval.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/termstyle/internal/cli"
	"github.com/agbru/termstyle/internal/config"
	apperrors "github.com/agbru/termstyle/internal/errors"
	"github.com/agbru/termstyle/internal/style"
	"github.com/agbru/termstyle/internal/ui"
)

// ContextCancelledMsg signals that the parent context was cancelled.
type ContextCancelledMsg struct {
	Err error
}

// Model is the root bubbletea model for the playground.
type Model struct {
	keymap KeyMap
	config config.AppConfig

	value    uint64
	step     uint64
	pageStep uint64

	rainbowLine string
	lastError   error

	width    int
	height   int
	done     bool
	exitCode int

	parentCtx context.Context
}

// NewModel creates a new playground model.
func NewModel(parentCtx context.Context, cfg config.AppConfig) Model {
	lo, hi := intervalBounds(cfg)
	span := hi - lo

	step := span / uint64(cfg.Steps)
	if step == 0 {
		step = 1
	}
	pageStep := span / 4
	if pageStep == 0 {
		pageStep = 1
	}

	m := Model{
		keymap:    DefaultKeyMap(),
		config:    cfg,
		value:     clampValue(cfg.Number, lo, hi),
		step:      step,
		pageStep:  pageStep,
		exitCode:  apperrors.ExitSuccess,
		parentCtx: parentCtx,
	}
	m.reshuffleRainbow()
	return m
}

// intervalBounds returns the gradient interval in ascending order.
func intervalBounds(cfg config.AppConfig) (uint64, uint64) {
	if cfg.Min > cfg.Max {
		return cfg.Max, cfg.Min
	}
	return cfg.Min, cfg.Max
}

// clampValue clamps v into [lo, hi].
func clampValue(v, lo, hi uint64) uint64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// reshuffleRainbow re-renders the rainbow line with a fresh color drawing.
func (m *Model) reshuffleRainbow() {
	args := append(append([]string{}, m.config.Tokens...), m.config.Text)
	line, err := style.Rainbow(args...)
	if err != nil {
		m.lastError = err
		return
	}
	m.lastError = nil
	m.rainbowLine = line
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return watchContextCmd(m.parentCtx)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case ContextCancelledMsg:
		m.done = true
		m.exitCode = apperrors.ExitErrorCanceled
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	lo, hi := intervalBounds(m.config)

	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.done = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Shuffle):
		m.reshuffleRainbow()
		return m, nil

	case key.Matches(msg, m.keymap.Increase):
		m.value = increaseValue(m.value, m.step, hi)
		return m, nil

	case key.Matches(msg, m.keymap.Decrease):
		m.value = decreaseValue(m.value, m.step, lo)
		return m, nil

	case key.Matches(msg, m.keymap.PageIncrease):
		m.value = increaseValue(m.value, m.pageStep, hi)
		return m, nil

	case key.Matches(msg, m.keymap.PageDecrease):
		m.value = decreaseValue(m.value, m.pageStep, lo)
		return m, nil
	}

	return m, nil
}

// increaseValue adds step to v, saturating at hi.
func increaseValue(v, step, hi uint64) uint64 {
	if hi-v <= step {
		return hi
	}
	return v + step
}

// decreaseValue subtracts step from v, saturating at lo.
func decreaseValue(v, step, lo uint64) uint64 {
	if v-lo <= step {
		return lo
	}
	return v - step
}

// View renders the playground.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	header := m.renderHeader()
	gradient := m.renderGradientPanel()
	catalog := m.renderCatalogPanel()
	rainbow := m.renderRainbowPanel()
	footer := m.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, gradient, catalog, rainbow, footer)
}

// renderHeader renders the top bar: title and active theme.
func (m Model) renderHeader() string {
	title := titleStyle.Render("termstyle playground")
	theme := subtitleStyle.Render(" | theme: " + ui.GetCurrentTheme().Name)
	return headerStyle.Width(m.width).Render(title + theme)
}

// renderGradientPanel renders the gradient scale with the highlighted value.
func (m Model) renderGradientPanel() string {
	var b strings.Builder
	b.WriteString(panelTitleStyle.Render("Gradient"))
	b.WriteString("\n")

	samples := cli.GradientSamples(m.config.Min, m.config.Max, m.config.Steps)
	parts := make([]string, 0, len(samples))
	for _, v := range samples {
		rendered, err := style.GradientUint(v, m.config.Min, m.config.Max)
		if err != nil {
			rendered = fmt.Sprintf("%d", v)
		}
		parts = append(parts, rendered)
	}
	b.WriteString(strings.Join(parts, " "))
	b.WriteString("\n")

	current, err := style.GradientUint(m.value, m.config.Min, m.config.Max, "bold")
	if err != nil {
		current = fmt.Sprintf("%d", m.value)
	}
	b.WriteString(labelStyle.Render("value: ") + current)

	return panelStyle.Width(m.width - 2).Render(b.String())
}

// renderCatalogPanel renders every color and style token, each colored by the
// engine itself.
func (m Model) renderCatalogPanel() string {
	var b strings.Builder
	b.WriteString(panelTitleStyle.Render("Tokens"))
	b.WriteString("\n")

	colors := make([]string, 0, len(style.ColorNames()))
	for _, name := range style.ColorNames() {
		rendered, err := style.Format(name, name)
		if err != nil {
			rendered = name
		}
		colors = append(colors, rendered)
	}
	b.WriteString(labelStyle.Render("colors: ") + strings.Join(colors, " "))
	b.WriteString("\n")

	styles := make([]string, 0, len(style.StyleNames()))
	for _, name := range style.StyleNames() {
		rendered, err := style.Format(name, name)
		if err != nil {
			rendered = name
		}
		styles = append(styles, rendered)
	}
	b.WriteString(labelStyle.Render("styles: ") + strings.Join(styles, " "))

	return panelStyle.Width(m.width - 2).Render(b.String())
}

// renderRainbowPanel renders the rainbow line, or the engine error when the
// configured tokens are invalid.
func (m Model) renderRainbowPanel() string {
	var b strings.Builder
	b.WriteString(panelTitleStyle.Render("Rainbow"))
	b.WriteString("\n")
	if m.lastError != nil {
		b.WriteString(errorStyle.Render(m.lastError.Error()))
	} else {
		b.WriteString(m.rainbowLine)
	}
	return panelStyle.Width(m.width - 2).Render(b.String())
}

// renderFooter renders the key hints.
func (m Model) renderFooter() string {
	bindings := []key.Binding{
		m.keymap.Decrease,
		m.keymap.Increase,
		m.keymap.Shuffle,
		m.keymap.Quit,
	}

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, footerKeyStyle.Render(h.Key)+footerDescStyle.Render(" "+h.Desc))
	}
	return " " + strings.Join(parts, footerDescStyle.Render("  •  "))
}

// Run is the public entry point for the TUI mode.
// It creates the bubbletea program, runs it, and returns the exit code.
func Run(ctx context.Context, cfg config.AppConfig) int {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	model := NewModel(ctx, cfg)

	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return apperrors.ExitErrorGeneric
	}

	if m, ok := finalModel.(Model); ok {
		return m.exitCode
	}
	return apperrors.ExitSuccess
}

// watchContextCmd waits for context cancellation and sends a message.
func watchContextCmd(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err()}
	}
}
