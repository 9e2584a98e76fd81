package style

import (
	apperrors "github.com/agbru/termstyle/internal/errors"
)

// Format wraps text in the ANSI escape sequences named by tokens and
// terminates the result with the reset sequence. Tokens are resolved in
// order: at most one color, any combination of distinct styles. An empty
// token ends the scan, so trailing slots may be left blank.
//
// Any pre-existing escape sequences in text are stripped before wrapping.
// With no effective tokens the text passes through unchanged and
// unwrapped, and empty text yields an empty string without any token
// validation.
//
// Parameters:
//   - text: The text to format.
//   - tokens: Color and style token names, scanned until the first empty one.
//
// Returns:
//   - string: The formatted text.
//   - error: An apperrors.InvalidFormatError if a token is unknown, a
//     second color is supplied, or a style is repeated.
func Format(text string, tokens ...string) (string, error) {
	if text == "" {
		return "", nil
	}

	var color, styles string
	var applied map[string]bool

	for _, token := range tokens {
		if token == "" {
			break
		}
		if code, ok := colorCodes[token]; ok {
			if color != "" {
				return "", apperrors.NewMultipleColors(token)
			}
			color = code
			continue
		}
		if code, ok := styleCodes[token]; ok {
			if applied[token] {
				return "", apperrors.NewDuplicateStyle(token)
			}
			if applied == nil {
				applied = make(map[string]bool, len(styleCodes))
			}
			applied[token] = true
			styles += code
			continue
		}
		return "", apperrors.NewUnknownToken(token)
	}

	if color == "" && styles == "" {
		return text, nil
	}

	clean, _ := StripSequences(text)
	return color + styles + clean + Reset, nil
}
