// Package style applies ANSI escape sequences to terminal text. It exposes
// pure formatting operations over fixed tables of color and style tokens:
// color/style wrapping, thousands-separated integers, a red-to-green
// gradient keyed to a numeric range, and a per-character rainbow effect.
//
// All operations are synchronous and side-effect-free. The rainbow effect
// alone consumes entropy from a pseudo-random source, which callers may
// inject through the IntSource interface for deterministic output.
package style
