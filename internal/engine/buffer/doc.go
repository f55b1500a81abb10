// Package buffer implements the line-oriented text buffer and cursor
// at the core of the input engine.
//
// The buffer is always at least one line; the cursor is always a valid
// (line, col) address. Edit primitives clamp every index before use
// instead of returning errors, so boundary conditions (backspace at the
// document start, delete at the end) degrade to no-ops.
package buffer
