// Package models defines the inventory record and the column layout used to
// read and write it.
//
// A line of the inventory system export gains two leading tracking columns the
// first time it is processed: the found counter and the found-in-spaces
// annotations. Layout names the absolute positions of the modeled columns; all
// other columns travel through Record.Passthrough untouched, so a record that
// is decoded and encoded again reproduces the same line.
package models
