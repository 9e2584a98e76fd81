package style

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestFormatUint_GroupingProperty verifies the thousands-separator layout
// for arbitrary numbers: digits are preserved, the leading group holds one
// to three digits and every following group exactly three.
func TestFormatUint_GroupingProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("grouping preserves digits and groups by three", prop.ForAll(
		func(n uint64) bool {
			grouped, err := FormatUint(n)
			if err != nil {
				return false
			}
			if strings.ReplaceAll(grouped, ",", "") != strconv.FormatUint(n, 10) {
				return false
			}
			groups := strings.Split(grouped, ",")
			if len(groups[0]) < 1 || len(groups[0]) > 3 {
				return false
			}
			for _, g := range groups[1:] {
				if len(g) != 3 {
					return false
				}
			}
			return true
		},
		gen.UInt64(),
	))

	properties.TestingRun(t)
}

// TestFormat_StructureProperty verifies that for any plain text, any color
// and any style, the output is exactly color code, style code, text, reset.
func TestFormat_StructureProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("color then styles then text then reset", prop.ForAll(
		func(text string, colorIdx, styleIdx int) bool {
			color := colorNames[colorIdx]
			styleToken := styleNames[styleIdx]

			out, err := Format(text, styleToken, color)
			if err != nil {
				return false
			}
			return out == colorCodes[color]+styleCodes[styleToken]+text+Reset
		},
		gen.Identifier(),
		gen.IntRange(0, len(colorNames)-1),
		gen.IntRange(0, len(styleNames)-1),
	))

	properties.TestingRun(t)
}

// TestGradientUint_PaletteProperty verifies that every in-range value maps
// into the red-green edge of the 6x6x6 palette cube: the index decomposes
// into red and green levels with at least one channel saturated and the
// blue component always zero.
func TestGradientUint_PaletteProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("in-range values land on the red-green palette edge", prop.ForAll(
		func(a, b, pick uint64) bool {
			minimum, maximum := a, b
			if minimum > maximum {
				minimum, maximum = maximum, minimum
			}
			number := minimum + pick%(maximum-minimum+1)

			out, err := GradientUint(number, minimum, maximum)
			if err != nil {
				return false
			}

			const introducer = "\033[38;5;"
			if !strings.HasPrefix(out, introducer) {
				return false
			}
			rest := strings.TrimPrefix(out, introducer)
			end := strings.IndexByte(rest, 'm')
			if end < 0 {
				return false
			}
			index, err := strconv.Atoi(rest[:end])
			if err != nil {
				return false
			}

			if index < paletteBase || index > paletteBase+215 {
				return false
			}
			cube := index - paletteBase
			redLevel, greenLevel, blueLevel := cube/36, cube%36/6, cube%6
			if blueLevel != 0 {
				return false
			}
			return redLevel == 5 || greenLevel == 5
		},
		gen.UInt64Range(0, 1_000_000),
		gen.UInt64Range(0, 1_000_000),
		gen.UInt64(),
	))

	properties.TestingRun(t)
}

// gradientLevels extracts the red and green cube levels from a gradient
// rendering, or reports false for anything that does not parse.
func gradientLevels(out string) (int, int, bool) {
	const introducer = "\033[38;5;"
	if !strings.HasPrefix(out, introducer) {
		return 0, 0, false
	}
	rest := strings.TrimPrefix(out, introducer)
	end := strings.IndexByte(rest, 'm')
	if end < 0 {
		return 0, 0, false
	}
	index, err := strconv.Atoi(rest[:end])
	if err != nil || index < paletteBase {
		return 0, 0, false
	}
	cube := index - paletteBase
	return cube / 36, cube % 36 / 6, true
}

// TestGradientUint_MonotonicityProperty verifies that moving up an ascending
// interval never makes the color less green or more red.
func TestGradientUint_MonotonicityProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("higher values shift red to green", prop.ForAll(
		func(span, pickA, pickB uint64) bool {
			lower, higher := pickA%(span+1), pickB%(span+1)
			if lower > higher {
				lower, higher = higher, lower
			}

			outLow, err := GradientUint(lower, 0, span)
			if err != nil {
				return false
			}
			outHigh, err := GradientUint(higher, 0, span)
			if err != nil {
				return false
			}

			redLow, greenLow, ok := gradientLevels(outLow)
			if !ok {
				return false
			}
			redHigh, greenHigh, ok := gradientLevels(outHigh)
			if !ok {
				return false
			}
			return greenHigh >= greenLow && redHigh <= redLow
		},
		gen.UInt64Range(1, 1_000_000),
		gen.UInt64(),
		gen.UInt64(),
	))

	properties.TestingRun(t)
}

// TestRainbow_DerangementProperty verifies the first-six-colors-distinct
// property for arbitrary text and seeds.
func TestRainbow_DerangementProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("no color repeats before all six are used", prop.ForAll(
		func(s string, seed int64) bool {
			text := s + "abcdef" // at least six characters
			src := rand.New(rand.NewSource(seed))

			out, err := RainbowSource(src, text)
			if err != nil {
				return false
			}

			body := strings.TrimSuffix(out, Reset)
			seen := make(map[string]bool, 6)
			count := 0
			for len(body) > 0 && count < 6 {
				matched := ""
				for _, code := range rainbowPalette {
					if strings.HasPrefix(body, code) {
						matched = code
						break
					}
				}
				if matched == "" {
					return false
				}
				if seen[matched] {
					return false
				}
				seen[matched] = true
				count++
				body = body[len(matched):]
				_, size := utf8.DecodeRuneInString(body)
				body = body[size:]
			}
			return count == 6
		},
		gen.Identifier(),
		gen.Int64(),
	))

	properties.TestingRun(t)
}
