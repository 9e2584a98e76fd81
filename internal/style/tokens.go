package style

// ANSI escape sequence fragments shared by all formatting operations.
// These byte values are a visual-compatibility contract with terminal
// emulators and must not change.
const (
	// Reset restores the terminal's default rendering, terminating any
	// color or style scope opened by this package.
	Reset = "\033[0m"

	// escapeByte and the '[' that follows it introduce every SGR sequence
	// this package emits or strips.
	escapeByte = '\033'
)

// colorNames lists the recognized color tokens in table order. At most one
// color token may be applied per formatting call.
var colorNames = []string{
	"red", "green", "yellow", "blue", "magenta", "cyan", "white", "black",
}

// colorCodes maps each color token to its ANSI foreground escape sequence.
// The table is populated once at init and never mutated afterwards.
var colorCodes = map[string]string{
	"red":     "\033[31m",
	"green":   "\033[32m",
	"yellow":  "\033[33m",
	"blue":    "\033[34m",
	"magenta": "\033[35m",
	"cyan":    "\033[36m",
	"white":   "\033[37m",
	"black":   "\033[30m",
}

// styleNames lists the recognized style tokens in table order. Distinct
// style tokens combine; repeating one within a call is an error.
var styleNames = []string{
	"bold", "underline", "italic", "strikethrough", "blink",
}

// styleCodes maps each style token to its ANSI escape sequence.
var styleCodes = map[string]string{
	"bold":          "\033[1m",
	"underline":     "\033[4m",
	"italic":        "\033[3m",
	"strikethrough": "\033[9m",
	"blink":         "\033[5m",
}

// ColorNames returns the recognized color tokens in a stable order.
// The returned slice is a copy; callers may modify it freely.
func ColorNames() []string {
	names := make([]string, len(colorNames))
	copy(names, colorNames)
	return names
}

// StyleNames returns the recognized style tokens in a stable order.
// The returned slice is a copy; callers may modify it freely.
func StyleNames() []string {
	names := make([]string, len(styleNames))
	copy(names, styleNames)
	return names
}

// IsColor reports whether token names a recognized color.
func IsColor(token string) bool {
	_, ok := colorCodes[token]
	return ok
}

// IsStyle reports whether token names a recognized style.
func IsStyle(token string) bool {
	_, ok := styleCodes[token]
	return ok
}
