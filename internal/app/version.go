package app

import (
	"fmt"
	"io"
	"runtime"
)

// Version is the application version, overridable at build time with
// -ldflags "-X github.com/agbru/termstyle/internal/app.Version=v1.2.3".
var Version = "dev"

// HasVersionFlag checks whether the argument list requests the version.
//
// Parameters:
//   - args: The command-line arguments, program name excluded.
//
// Returns:
//   - bool: True if a version flag is present.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-version", "--version":
			return true
		}
	}
	return false
}

// PrintVersion writes the version banner.
//
// Parameters:
//   - out: The writer for standard output.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "termstyle %s (%s)\n", Version, runtime.Version())
}
