package logger_test

import (
	"testing"

	"inventory-reconciler/core/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		cfg  logger.Config
	}{
		{"DebugConsole", logger.Config{Level: "debug", Format: "console"}},
		{"InfoJSON", logger.Config{Level: "info", Format: "json"}},
		{"WarnConsole", logger.Config{Level: "warn", Format: "console"}},
		{"UnknownLevel", logger.Config{Level: "loud", Format: "json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := logger.New(&tt.cfg)
			require.NoError(t, err)
			assert.NotNil(t, l)
		})
	}
}

func TestNew_WarnLevelDropsInfo(t *testing.T) {
	l, err := logger.New(&logger.Config{Level: "warn", Format: "json"})
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
}

func TestWithSession(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := logger.WithSession(zap.New(core), "abc-123", "/data/inventario.tsv")

	l.Info("hello")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "abc-123", fields["session_id"])
	assert.Equal(t, "inventario.tsv", fields["file"])
}

func TestWithSession_NoID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger.WithSession(zap.New(core), "", "a.tsv").Info("hello")

	fields := logs.All()[0].ContextMap()
	_, hasID := fields["session_id"]
	assert.False(t, hasID)
	assert.Equal(t, "a.tsv", fields["file"])
}
