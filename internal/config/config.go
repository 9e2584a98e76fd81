// Package config handles command-line and environment configuration for the
// termstyle preview application. Priority: CLI flags > environment
// variables > defaults.
package config

import (
	"flag"
	"fmt"
	"io"
	"strings"

	apperrors "github.com/agbru/termstyle/internal/errors"
)

// EnvPrefix is prepended to every environment variable read by this package.
const EnvPrefix = "TERMSTYLE_"

// Run modes accepted by the -mode flag.
const (
	ModeText     = "text"
	ModeInteger  = "integer"
	ModeGradient = "gradient"
	ModeRainbow  = "rainbow"
	ModeDemo     = "demo"
	ModeTUI      = "tui"
)

// modeNames lists the accepted modes for validation and usage output.
var modeNames = []string{ModeText, ModeInteger, ModeGradient, ModeRainbow, ModeDemo, ModeTUI}

// themeNames lists the accepted theme names for validation.
var themeNames = []string{"dark", "light", "mono", "none"}

// AppConfig holds the complete configuration of a preview run.
type AppConfig struct {
	// Mode selects the operation to preview.
	Mode string
	// Text is the input for text and rainbow modes.
	Text string
	// Tokens are the style/color tokens applied to the input.
	Tokens []string
	// Number is the input for integer and gradient modes.
	Number uint64
	// Min is the gradient interval start.
	Min uint64
	// Max is the gradient interval end.
	Max uint64
	// Steps is the sample count of the gradient scale in demo and tui modes.
	Steps int
	// Theme names the output theme (dark, light, mono, none).
	Theme string
	// NoColor disables all output decoration.
	NoColor bool
	// Verbose enables debug logging.
	Verbose bool
}

// defaultConfig returns the configuration used before flags and environment
// overrides apply.
func defaultConfig() AppConfig {
	return AppConfig{
		Mode:   ModeDemo,
		Text:   "termstyle",
		Number: 50,
		Min:    0,
		Max:    100,
		Steps:  16,
		Theme:  "dark",
	}
}

// ParseConfig parses command-line arguments into an AppConfig, applies
// environment overrides for flags not explicitly set, and validates the
// result.
//
// Parameters:
//   - programName: The name reported in usage output.
//   - args: The command-line arguments, without the program name.
//   - errWriter: The writer for flag-parsing and usage output.
//
// Returns:
//   - AppConfig: The validated configuration.
//   - error: flag.ErrHelp if help was requested, or an apperrors.ConfigError.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	cfg := defaultConfig()

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	var tokens string
	fs.StringVar(&cfg.Mode, "mode", cfg.Mode,
		fmt.Sprintf("operation to preview (%s)", strings.Join(modeNames, ", ")))
	fs.StringVar(&cfg.Text, "text", cfg.Text, "text input for text and rainbow modes")
	fs.StringVar(&tokens, "tokens", "", "comma-separated style/color tokens (e.g. red,bold)")
	fs.Uint64Var(&cfg.Number, "n", cfg.Number, "number input for integer and gradient modes")
	fs.Uint64Var(&cfg.Min, "min", cfg.Min, "gradient interval start")
	fs.Uint64Var(&cfg.Max, "max", cfg.Max, "gradient interval end")
	fs.IntVar(&cfg.Steps, "steps", cfg.Steps, "sample count of the gradient scale")
	fs.StringVar(&cfg.Theme, "theme", cfg.Theme,
		fmt.Sprintf("output theme (%s)", strings.Join(themeNames, ", ")))
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "disable all output decoration")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "enable debug logging")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "enable debug logging")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return cfg, err
		}
		return cfg, apperrors.NewConfigError("parsing flags: %v", err)
	}

	cfg.Tokens = SplitTokens(tokens)
	applyEnvOverrides(&cfg, fs)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the configuration for values no run mode could accept.
//
// Returns:
//   - error: An apperrors.ConfigError describing the first problem found.
func (c AppConfig) Validate() error {
	if !contains(modeNames, c.Mode) {
		return apperrors.NewConfigError("unknown mode %q (valid: %s)",
			c.Mode, strings.Join(modeNames, ", "))
	}
	if !contains(themeNames, c.Theme) {
		return apperrors.NewConfigError("unknown theme %q (valid: %s)",
			c.Theme, strings.Join(themeNames, ", "))
	}
	if c.Steps < 2 {
		return apperrors.NewConfigError("steps must be at least 2, got %d", c.Steps)
	}
	return nil
}

// SplitTokens splits a comma-separated token list, trimming surrounding
// whitespace from each entry. An empty input yields nil.
func SplitTokens(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	tokens := make([]string, len(parts))
	for i, p := range parts {
		tokens[i] = strings.TrimSpace(p)
	}
	return tokens
}

// contains reports whether list holds value.
func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
