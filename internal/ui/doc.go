// Package ui provides theme support for the preview surfaces. A theme maps
// semantic roles (accent, success, error, ...) to style tokens and renders
// them through the formatting engine, so every piece of colored CLI output
// exercises the same code path as library callers.
//
// This package is designed to be a shared dependency for packages that need
// color output, reducing coupling between rendering logic and presentation.
package ui
