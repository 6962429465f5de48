package logger

import (
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a new zap logger based on the configuration.
func New(cfg *Config) (*zap.Logger, error) {
	var config zap.Config

	if cfg.Level == "debug" {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
		if lvl, err := zapcore.ParseLevel(cfg.Level); err == nil {
			config.Level = zap.NewAtomicLevelAt(lvl)
		}
	}

	// Set format based on configuration
	if cfg.Format == "console" {
		config.Encoding = "console"
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		config.DisableStacktrace = true
	} else {
		config.Encoding = "json"
	}

	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.TimeKey = "time"
	config.EncoderConfig.MessageKey = "message"

	// Operator prompts own stdout; logs go to stderr.
	config.OutputPaths = []string{"stderr"}

	return config.Build()
}

// WithSession returns a logger tagged with the session id and the inventory file it works on.
func WithSession(l *zap.Logger, sessionID, path string) *zap.Logger {
	if sessionID == "" {
		return l.With(zap.String("file", filepath.Base(path)))
	}
	return l.With(zap.String("session_id", sessionID), zap.String("file", filepath.Base(path)))
}
