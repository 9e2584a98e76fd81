// Package apperrors defines structured application error types, allowing a
// clear distinction between error classes (formatting misuse, configuration)
// and carrying the offending token where one exists.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// Typed errors support inspection with errors.Is() and errors.As().
package apperrors
