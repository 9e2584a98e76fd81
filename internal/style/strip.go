package style

import "strings"

// StripSequences removes every well-formed ANSI escape sequence from text
// in a single pass, so stale formatting never leaks into a freshly wrapped
// string. A sequence is the two-byte introducer (ESC followed by '[')
// through the next 'm', inclusive. An introducer with no terminating 'm'
// stops the scan; the remainder is kept literal, introducer included.
//
// Parameters:
//   - text: The string to clean.
//
// Returns:
//   - string: The text with all well-formed sequences removed.
//   - bool: true if at least one sequence was removed.
func StripSequences(text string) (string, bool) {
	if !strings.ContainsRune(text, escapeByte) {
		return text, false
	}

	var b strings.Builder
	b.Grow(len(text))
	stripped := false

	for i := 0; i < len(text); {
		if text[i] == escapeByte && i+1 < len(text) && text[i+1] == '[' {
			end := strings.IndexByte(text[i:], 'm')
			if end < 0 {
				// Malformed introducer: keep the rest literal.
				b.WriteString(text[i:])
				break
			}
			i += end + 1
			stripped = true
			continue
		}
		b.WriteByte(text[i])
		i++
	}

	return b.String(), stripped
}
