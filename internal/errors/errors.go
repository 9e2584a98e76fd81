package apperrors

import (
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorFormat   = 2   // Indicates invalid formatting input.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// InvalidFormatReason identifies why a formatting request was rejected.
type InvalidFormatReason int

// Formatting rejection reasons. Callers should treat any of these as a
// programming error on their side, not a transient condition.
const (
	// ReasonMultipleColors means a second color token was supplied in a
	// call that had already resolved one.
	ReasonMultipleColors InvalidFormatReason = iota + 1
	// ReasonDuplicateStyle means the same style token appeared twice in
	// one call.
	ReasonDuplicateStyle
	// ReasonUnknownToken means a token matched neither the color nor the
	// style table.
	ReasonUnknownToken
	// ReasonColorForbidden means a color token was supplied to an
	// operation that owns color selection itself.
	ReasonColorForbidden
	// ReasonTooManyTextArguments means more than one non-style argument
	// was supplied to the rainbow effect.
	ReasonTooManyTextArguments
)

// InvalidFormatError reports a rejected formatting request. It records the
// rejection reason and, where applicable, the offending token.
type InvalidFormatError struct {
	// Reason classifies the rejection.
	Reason InvalidFormatReason
	// Token is the token or argument that triggered the rejection.
	Token string
}

// Error returns a human-readable description of the rejection.
//
// Returns:
//   - string: The error message string.
func (e InvalidFormatError) Error() string {
	switch e.Reason {
	case ReasonMultipleColors:
		return fmt.Sprintf("multiple colors: %q supplied after a color was already applied", e.Token)
	case ReasonDuplicateStyle:
		return fmt.Sprintf("duplicate style %q", e.Token)
	case ReasonUnknownToken:
		return fmt.Sprintf("unknown format token %q", e.Token)
	case ReasonColorForbidden:
		return fmt.Sprintf("color %q not allowed here: the gradient selects its own color", e.Token)
	case ReasonTooManyTextArguments:
		return fmt.Sprintf("too many text arguments: %q supplied after the text was already set", e.Token)
	}
	return fmt.Sprintf("invalid format token %q", e.Token)
}

// Is reports whether target is an InvalidFormatError with the same reason,
// ignoring the token. This lets callers match on the rejection class:
//
//	errors.Is(err, apperrors.InvalidFormatError{Reason: apperrors.ReasonUnknownToken})
func (e InvalidFormatError) Is(target error) bool {
	t, ok := target.(InvalidFormatError)
	return ok && t.Reason == e.Reason && t.Token == ""
}

// NewMultipleColors creates an InvalidFormatError for a second color token.
func NewMultipleColors(token string) error {
	return InvalidFormatError{Reason: ReasonMultipleColors, Token: token}
}

// NewDuplicateStyle creates an InvalidFormatError for a repeated style token.
func NewDuplicateStyle(token string) error {
	return InvalidFormatError{Reason: ReasonDuplicateStyle, Token: token}
}

// NewUnknownToken creates an InvalidFormatError for an unrecognized token.
func NewUnknownToken(token string) error {
	return InvalidFormatError{Reason: ReasonUnknownToken, Token: token}
}

// NewColorForbidden creates an InvalidFormatError for a color token supplied
// to an operation that owns color selection.
func NewColorForbidden(token string) error {
	return InvalidFormatError{Reason: ReasonColorForbidden, Token: token}
}

// NewTooManyTextArguments creates an InvalidFormatError for a surplus text
// argument in a rainbow call.
func NewTooManyTextArguments(arg string) error {
	return InvalidFormatError{Reason: ReasonTooManyTextArguments, Token: arg}
}

// IsInvalidFormat reports whether err is an InvalidFormatError of any reason.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: true if the error is an InvalidFormatError.
func IsInvalidFormat(err error) bool {
	var invalid InvalidFormatError
	return errors.As(err, &invalid)
}

// ConfigError represents a user configuration error, such as invalid flags
// or values. It indicates that the application cannot proceed due to
// incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// The wrapped error can be unwrapped with errors.Unwrap() and checked with
// errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}
