// Package backup protects files before they are rewritten.
//
// The previous contents of a file are moved aside under the first free numbered
// suffix (inventario.tsv.000, inventario.tsv.001, ...), so earlier backups are
// never clobbered. Suffix discovery is a pure function of the base name and an
// existence check, which keeps it testable without a filesystem.
//
// # Usage
//
//	backupPath, err := backup.Overwrite(afero.NewOsFs(), "inventario.tsv", data)
package backup
