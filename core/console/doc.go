// Package console holds the terminal plumbing of the operator side.
//
// Styles are lipgloss styles, colored when stdout is a terminal and plain
// otherwise (pipes, files, tests). LineReader turns stdin, or any reader, into
// a line source. Barcode scanners in keyboard mode terminate each code with a
// newline, so they need no special handling.
package console
