// Package store is the record store of an inventory file.
//
// It parses the expected inventory, keeps the records in file order, resolves
// scanned codes to records and rewrites the file after a backup. Parsing and
// writing are inverse operations for files that already carry the tracking
// columns, so a session without scans leaves the file byte for byte unchanged.
//
// # Matching
//
// Lookup is a linear scan that returns the first record whose inventory number
// equals the scanned code, or differs from it only by a trailing "00" on either
// side. Some scanners append or omit that padding.
package store
