package style

import (
	"fmt"
	"math"

	apperrors "github.com/agbru/termstyle/internal/errors"
)

// 256-color palette composition for the gradient. Channels are quantized
// into six levels and mapped into the 6x6x6 color cube starting at index 16.
const (
	channelMax  = 255
	channelStep = 51 // one quantization level of a 0..255 channel
	paletteBase = 16 // first index of the 6x6x6 cube in the 256-color palette
)

// GradientUint renders number per FormatUint and colors it by its position
// within [minimum, maximum]: red at the minimum, yellow midway, green at the
// maximum. Supplying minimum > maximum reverses the interval while keeping
// red tied to the low end of the caller's semantics.
//
// Values outside the interval render with fixed indicators instead of a
// gradient color: red, blinking and bold below it, green, blinking and bold
// beyond it. In both cases the caller's tokens are ignored. The degenerate
// interval minimum == maximum treats any other number as too low, and the
// number itself as a full-range match (pure green).
//
// Because this function owns color selection, tokens may only name styles.
//
// Parameters:
//   - number: The non-negative integer to format.
//   - minimum: The start of the gradient interval.
//   - maximum: The end of the gradient interval.
//   - tokens: Style token names applied to the rendered digits.
//
// Returns:
//   - string: The gradient-colored, formatted number.
//   - error: An apperrors.InvalidFormatError if any token names a color,
//     or any token error from FormatUint.
func GradientUint(number, minimum, maximum uint64, tokens ...string) (string, error) {
	for _, token := range tokens {
		if token == "" {
			continue
		}
		if IsColor(token) {
			return "", apperrors.NewColorForbidden(token)
		}
	}

	// Boundary checks run before the ratio computation; this ordering is a
	// behavioral contract for the degenerate minimum == maximum cases.
	switch {
	case (number < minimum && minimum < maximum) ||
		(number > minimum && minimum > maximum) ||
		(number != maximum && minimum == maximum):
		return FormatUint(number, "red", "blink", "bold")
	case (number > maximum && maximum > minimum) ||
		(number < maximum && maximum < minimum):
		return FormatUint(number, "green", "blink", "bold")
	}

	reversed := minimum > maximum
	var progress, field float64
	if reversed {
		progress = float64(number - maximum)
		field = float64(minimum - maximum)
	} else {
		progress = float64(number - minimum)
		field = float64(maximum - minimum)
	}

	ratio := 1.0 // zero-length interval defaults to full progress
	if field != 0 {
		ratio = progress / field
	}
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	if reversed {
		ratio = 1 - ratio
	}

	red, green := channelMax, channelMax
	if ratio < 0.5 {
		green = int(math.Round(channelMax * ratio * 2))
	} else {
		red = int(math.Round(channelMax * (1 - (ratio-0.5)*2)))
	}

	formatted, err := FormatUint(number, tokens...)
	if err != nil {
		return "", err
	}

	// Blue is always zero, so its palette component drops out.
	index := paletteBase + (red/channelStep)*36 + (green/channelStep)*6
	return fmt.Sprintf("\033[38;5;%dm%s%s", index, formatted, Reset), nil
}
