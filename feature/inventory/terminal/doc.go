// Package terminal renders the events of a counting session for the operator:
// the space header, found notices, label questions and per-file errors.
package terminal
