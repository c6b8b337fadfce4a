package logger_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"ordertracker/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew_Level(t *testing.T) {
	assert.True(t, logger.New(logger.Options{Level: "debug"}).Core().Enabled(zapcore.DebugLevel))
	assert.False(t, logger.New(logger.Options{Level: "warn"}).Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.New(logger.Options{Level: "bogus"}).Core().Enabled(zapcore.InfoLevel))
	assert.False(t, logger.New(logger.Options{Level: "bogus"}).Core().Enabled(zapcore.DebugLevel))
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	log := logger.New(logger.Options{Level: "info", File: path})

	log.Info("order created")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(data, &entry))
	assert.Equal(t, "order created", entry["msg"])
	assert.Contains(t, entry, "timestamp")
}
