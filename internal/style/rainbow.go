package style

import (
	"math/rand"
	"strings"

	apperrors "github.com/agbru/termstyle/internal/errors"
)

// rainbowPlaceholder is returned when a rainbow call carries no text.
const rainbowPlaceholder = "\U0001F308"

// rainbowPalette lists the six base colors cycled across characters.
var rainbowPalette = [6]string{
	"\033[31m", "\033[32m", "\033[33m", "\033[34m", "\033[35m", "\033[36m",
}

// IntSource yields pseudo-random integers in [0, n). *math/rand.Rand
// satisfies it, so tests can inject a seeded source and make the rainbow
// color assignment deterministic.
//
//go:generate mockgen -destination=mocks/intsource.go -package=mocks github.com/agbru/termstyle/internal/style IntSource
type IntSource interface {
	Intn(n int) int
}

// globalSource backs Rainbow with math/rand's top-level functions, which
// are safe for concurrent use.
type globalSource struct{}

func (globalSource) Intn(n int) int { return rand.Intn(n) }

// Rainbow colors each character of its text argument with a pseudo-random
// cycle of the six base colors, drawing from the process-wide random
// source. See RainbowSource for the argument contract.
func Rainbow(args ...string) (string, error) {
	return RainbowSource(globalSource{}, args...)
}

// RainbowSource is Rainbow with an injected random source.
//
// Arguments are scanned left to right and stop at the first empty one.
// Each argument matching a style token accumulates into a style prefix;
// the single remaining argument is the text to color, and a second one is
// an error. With no text at all, a rainbow placeholder glyph is returned
// uncolored.
//
// Pre-existing escape sequences are stripped from the text first. Malformed
// sequences that survive stripping are copied through verbatim during the
// coloring pass and are not recolored.
//
// Parameters:
//   - src: The random source used to order the six base colors.
//   - args: Style tokens and at most one text argument.
//
// Returns:
//   - string: The style prefix, the per-character colored text, and the
//     reset sequence.
//   - error: An apperrors.InvalidFormatError if more than one text
//     argument is supplied.
func RainbowSource(src IntSource, args ...string) (string, error) {
	var text, prefix string
	for _, arg := range args {
		if arg == "" {
			break
		}
		if code, ok := styleCodes[arg]; ok {
			prefix += code
			continue
		}
		if text != "" {
			return "", apperrors.NewTooManyTextArguments(arg)
		}
		text = arg
	}

	if text == "" {
		return rainbowPlaceholder, nil
	}

	sequence := drawPalette(src)
	clean, _ := StripSequences(text)
	runes := []rune(clean)

	var b strings.Builder
	b.Grow(len(clean) * (1 + len(rainbowPalette[0])))
	b.WriteString(prefix)

	position := 0
	for i := 0; i < len(runes); i++ {
		if runes[i] == escapeByte && i+1 < len(runes) && runes[i+1] == '[' {
			// Pass a surviving sequence through without recoloring it.
			for ; i < len(runes) && runes[i] != 'm'; i++ {
				b.WriteRune(runes[i])
			}
			if i < len(runes) {
				b.WriteRune('m')
			}
			continue
		}
		b.WriteString(sequence[position%len(sequence)])
		b.WriteRune(runes[i])
		position++
	}

	b.WriteString(Reset)
	return b.String(), nil
}

// drawPalette orders the six base colors by drawing from a shrinking pool
// without replacement, so each color appears exactly once per cycle.
func drawPalette(src IntSource) []string {
	pool := rainbowPalette
	sequence := make([]string, len(pool))
	size := len(pool)
	for i := range sequence {
		j := src.Intn(size)
		sequence[i] = pool[j]
		size--
		pool[j] = pool[size]
	}
	return sequence
}
