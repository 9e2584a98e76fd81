package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/termstyle/internal/style"
)

// Role identifies a semantic color slot in a theme.
type Role int

// Semantic roles available to the preview surfaces.
const (
	// RoleAccent marks important elements such as token names.
	RoleAccent Role = iota
	// RoleSuccess indicates positive outcomes.
	RoleSuccess
	// RoleWarning is used for caution messages.
	RoleWarning
	// RoleError indicates failures.
	RoleError
	// RoleInfo is used for informational messages.
	RoleInfo
	// RoleDim is used for less prominent elements.
	RoleDim
)

// Theme maps semantic roles to style tokens. The token lists feed directly
// into style.Format, so a theme can never emit sequences the engine itself
// would not produce.
type Theme struct {
	// Name is the identifier of the theme.
	Name string

	roles   map[Role][]string
	enabled bool
}

// Apply renders text with the tokens of the given role. With colors
// disabled, or for a role with no tokens, the text passes through
// unchanged.
//
// Parameters:
//   - role: The semantic role to render.
//   - text: The text to render.
//
// Returns:
//   - string: The rendered text.
func (t Theme) Apply(role Role, text string) string {
	if !t.enabled {
		return text
	}
	out, err := style.Format(text, t.roles[role]...)
	if err != nil {
		// Theme token lists are fixed and valid; an error here means a
		// corrupted theme, so fall back to plain text.
		return text
	}
	return out
}

// Enabled reports whether the theme emits escape sequences at all.
func (t Theme) Enabled() bool { return t.enabled }

var (
	// DarkTheme is optimized for dark terminal backgrounds.
	DarkTheme = Theme{
		Name:    "dark",
		enabled: true,
		roles: map[Role][]string{
			RoleAccent:  {"cyan", "bold"},
			RoleSuccess: {"green"},
			RoleWarning: {"yellow"},
			RoleError:   {"red", "bold"},
			RoleInfo:    {"magenta"},
			RoleDim:     {"white"},
		},
	}

	// LightTheme is optimized for light terminal backgrounds.
	LightTheme = Theme{
		Name:    "light",
		enabled: true,
		roles: map[Role][]string{
			RoleAccent:  {"blue", "bold"},
			RoleSuccess: {"green"},
			RoleWarning: {"yellow", "bold"},
			RoleError:   {"red"},
			RoleInfo:    {"magenta"},
			RoleDim:     {"black"},
		},
	}

	// MonoTheme styles without color, for terminals where only text
	// attributes are welcome.
	MonoTheme = Theme{
		Name:    "mono",
		enabled: true,
		roles: map[Role][]string{
			RoleAccent:  {"bold"},
			RoleWarning: {"underline"},
			RoleError:   {"bold", "underline"},
			RoleInfo:    {"italic"},
		},
	}

	// NoColorTheme disables all output decoration.
	// Used when NO_COLOR is set or --no-color flag is provided.
	NoColorTheme = Theme{Name: "none"}

	// currentTheme is the active theme used throughout the application.
	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// GetCurrentTheme returns the currently active theme in a thread-safe manner.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetTheme changes the active theme by name.
// Valid names are: "dark", "light", "mono", "none".
// Unknown names default to the dark theme.
//
// Parameters:
//   - name: The name of the theme to activate.
func SetTheme(name string) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	switch name {
	case "dark":
		currentTheme = DarkTheme
	case "light":
		currentTheme = LightTheme
	case "mono":
		currentTheme = MonoTheme
	case "none":
		currentTheme = NoColorTheme
	default:
		currentTheme = DarkTheme
	}
}

// InitTheme initializes the theme based on the noColor flag and environment.
// It respects the NO_COLOR environment variable (https://no-color.org/) for
// accessibility. If noColor is true or NO_COLOR is set, colors are disabled.
//
// Parameters:
//   - noColor: If true, disables all color output regardless of environment.
func InitTheme(noColor bool) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	if noColor {
		currentTheme = NoColorTheme
		return
	}

	// Any non-empty value disables colors (per no-color.org spec).
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		currentTheme = NoColorTheme
		return
	}

	currentTheme = DarkTheme
}

// TUITheme defines lipgloss-compatible colors for the interactive preview.
// Each field is a lipgloss.TerminalColor suitable for use with
// lipgloss.Style.Foreground() and Background().
type TUITheme struct {
	Text    lipgloss.TerminalColor
	Bg      lipgloss.TerminalColor
	Border  lipgloss.TerminalColor
	Accent  lipgloss.TerminalColor
	Success lipgloss.TerminalColor
	Warning lipgloss.TerminalColor
	Error   lipgloss.TerminalColor
	Info    lipgloss.TerminalColor
	Dim     lipgloss.TerminalColor
}

var (
	// DarkTUITheme is the default palette for the interactive preview.
	DarkTUITheme = TUITheme{
		Text:    lipgloss.Color("#E0E0E0"),
		Bg:      lipgloss.NoColor{},
		Border:  lipgloss.Color("#5FAFFF"),
		Accent:  lipgloss.Color("#5FD7FF"),
		Success: lipgloss.Color("#87D787"),
		Warning: lipgloss.Color("#FFD75F"),
		Error:   lipgloss.Color("#FF5F5F"),
		Info:    lipgloss.Color("#AF87FF"),
		Dim:     lipgloss.Color("#666666"),
	}

	// NoColorTUITheme disables all TUI colors.
	// lipgloss.NoColor{} renders text with the terminal's default colors.
	NoColorTUITheme = TUITheme{
		Text:    lipgloss.NoColor{},
		Bg:      lipgloss.NoColor{},
		Border:  lipgloss.NoColor{},
		Accent:  lipgloss.NoColor{},
		Success: lipgloss.NoColor{},
		Warning: lipgloss.NoColor{},
		Error:   lipgloss.NoColor{},
		Info:    lipgloss.NoColor{},
		Dim:     lipgloss.NoColor{},
	}
)

// GetCurrentTUITheme returns the TUI theme matching the currently active
// theme. When NoColorTheme is active, returns NoColorTUITheme.
func GetCurrentTUITheme() TUITheme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()

	if !currentTheme.enabled {
		return NoColorTUITheme
	}
	return DarkTUITheme
}
