// Package logging provides a unified logging interface for the termstyle
// application shell. It abstracts the underlying zerolog implementation,
// keeping the formatting engine free of any logging dependency.
package logging
