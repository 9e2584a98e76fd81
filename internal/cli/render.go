// Package cli renders preview output for the termstyle application. It
// decouples presentation from the application shell the same way the engine
// is decoupled from both: everything here writes to an io.Writer and colors
// through the active ui theme.
package cli

import (
	"fmt"
	"io"

	"github.com/agbru/termstyle/internal/config"
	"github.com/agbru/termstyle/internal/style"
	"github.com/agbru/termstyle/internal/ui"
)

// PrintRunConfig displays the current preview configuration to the user.
//
// Parameters:
//   - cfg: The application configuration.
//   - out: The writer for standard output.
func PrintRunConfig(cfg config.AppConfig, out io.Writer) {
	theme := ui.GetCurrentTheme()
	fmt.Fprintf(out, "--- Preview Configuration ---\n")
	fmt.Fprintf(out, "Mode %s with theme %s.\n",
		theme.Apply(ui.RoleAccent, cfg.Mode),
		theme.Apply(ui.RoleAccent, cfg.Theme))
	if cfg.Mode == config.ModeGradient || cfg.Mode == config.ModeDemo {
		fmt.Fprintf(out, "Gradient interval %s to %s, %s samples.\n",
			theme.Apply(ui.RoleInfo, fmt.Sprintf("%d", cfg.Min)),
			theme.Apply(ui.RoleInfo, fmt.Sprintf("%d", cfg.Max)),
			theme.Apply(ui.RoleInfo, fmt.Sprintf("%d", cfg.Steps)))
	}
}

// RenderOperation runs the single engine operation selected by cfg.Mode and
// returns its output. Demo and TUI modes are composite surfaces and are not
// handled here.
//
// Parameters:
//   - cfg: The application configuration.
//
// Returns:
//   - string: The rendered result.
//   - error: Any engine error, unchanged.
func RenderOperation(cfg config.AppConfig) (string, error) {
	switch cfg.Mode {
	case config.ModeText:
		return style.Format(cfg.Text, cfg.Tokens...)
	case config.ModeInteger:
		return style.FormatUint(cfg.Number, cfg.Tokens...)
	case config.ModeGradient:
		return style.GradientUint(cfg.Number, cfg.Min, cfg.Max, cfg.Tokens...)
	case config.ModeRainbow:
		args := append(append([]string{}, cfg.Tokens...), cfg.Text)
		return style.Rainbow(args...)
	}
	return "", fmt.Errorf("mode %q is not a single operation", cfg.Mode)
}

// PrintStyleCatalog writes one sample line per color and style token, each
// rendered by the engine itself.
//
// Parameters:
//   - out: The writer for standard output.
//
// Returns:
//   - error: The first engine error, if any.
func PrintStyleCatalog(out io.Writer) error {
	theme := ui.GetCurrentTheme()

	fmt.Fprintf(out, "%s\n", theme.Apply(ui.RoleAccent, "Colors"))
	for _, name := range style.ColorNames() {
		sample, err := style.Format("sample", name)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "  %-13s %s\n", name, sample)
	}

	fmt.Fprintf(out, "%s\n", theme.Apply(ui.RoleAccent, "Styles"))
	for _, name := range style.StyleNames() {
		sample, err := style.Format("sample", name)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "  %-13s %s\n", name, sample)
	}
	return nil
}

// GradientSamples returns evenly spaced values across the interval,
// honoring reversed intervals. The first sample is always minimum and the
// last always maximum.
//
// Parameters:
//   - minimum: The interval start.
//   - maximum: The interval end.
//   - steps: The number of samples, at least 2.
//
// Returns:
//   - []uint64: The sampled values in interval order.
func GradientSamples(minimum, maximum uint64, steps int) []uint64 {
	samples := make([]uint64, steps)
	reversed := minimum > maximum
	span := maximum - minimum
	if reversed {
		span = minimum - maximum
	}

	for i := range samples {
		offset := uint64(float64(span) * float64(i) / float64(steps-1))
		if i == steps-1 {
			offset = span
		}
		if reversed {
			samples[i] = minimum - offset
		} else {
			samples[i] = minimum + offset
		}
	}
	return samples
}

// PrintGradientScale writes the gradient rendering of evenly spaced samples
// across [minimum, maximum] on a single line.
//
// Parameters:
//   - out: The writer for standard output.
//   - minimum: The interval start.
//   - maximum: The interval end.
//   - steps: The number of samples, at least 2.
//
// Returns:
//   - error: The first engine error, if any.
func PrintGradientScale(out io.Writer, minimum, maximum uint64, steps int) error {
	for i, value := range GradientSamples(minimum, maximum, steps) {
		rendered, err := style.GradientUint(value, minimum, maximum)
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Fprint(out, " ")
		}
		fmt.Fprint(out, rendered)
	}
	fmt.Fprintln(out)
	return nil
}

// PrintDemo writes the full demo surface: the token catalog, a gradient
// scale, and a rainbow line.
//
// Parameters:
//   - cfg: The application configuration.
//   - out: The writer for standard output.
//
// Returns:
//   - error: The first engine error, if any.
func PrintDemo(cfg config.AppConfig, out io.Writer) error {
	theme := ui.GetCurrentTheme()

	if err := PrintStyleCatalog(out); err != nil {
		return err
	}

	fmt.Fprintf(out, "%s\n", theme.Apply(ui.RoleAccent, "Gradient"))
	fmt.Fprint(out, "  ")
	if err := PrintGradientScale(out, cfg.Min, cfg.Max, cfg.Steps); err != nil {
		return err
	}

	fmt.Fprintf(out, "%s\n", theme.Apply(ui.RoleAccent, "Rainbow"))
	rainbow, err := style.Rainbow(cfg.Text)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "  %s\n", rainbow)
	return nil
}
