// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports a development (debug)
// and a production profile, with either console or JSON encoding.
//
// # Session Awareness
//
// Every counting session gets its own id. WithSession attaches that id and the
// inventory file name to a logger, so all lines emitted while one file is being
// reconciled can be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json or console
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Session started")
//
//	l := logger.WithSession(log, id, "inventario.tsv")
//	l.Warn("Space equivalence file missing")
package logger
