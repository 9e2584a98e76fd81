package style

import (
	"strconv"
	"strings"
)

// groupSeparator is inserted between digit groups of three.
const groupSeparator = ','

// FormatUint renders number with a separator every three digits from the
// right and applies the supplied tokens via Format. Zero renders as "0",
// and numbers of up to three digits carry no separator.
//
// Parameters:
//   - number: The non-negative integer to format.
//   - tokens: Color and style token names, as accepted by Format.
//
// Returns:
//   - string: The grouped, formatted number.
//   - error: Any token error from Format, propagated unchanged.
func FormatUint(number uint64, tokens ...string) (string, error) {
	return Format(groupDigits(number), tokens...)
}

// groupDigits inserts a separator before each complete group of three
// digits, never before the leading group.
func groupDigits(number uint64) string {
	digits := strconv.FormatUint(number, 10)
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	b.Grow(len(digits) + (len(digits)-1)/3)

	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteByte(groupSeparator)
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
