package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/nish-b/found-call-explorer/config"
)

func TestNew_InteractiveWithoutFileIsNop(t *testing.T) {
	logger, err := New(config.LogConfig{Level: "debug"}, Options{Interactive: true})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.ErrorLevel))
}

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "callexplorer.log")
	logger, err := New(config.LogConfig{File: path, Level: "info"}, Options{Interactive: true})
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("loaded call records")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "loaded call records", entry["msg"])
	assert.NotEmpty(t, entry["session"])
}

func TestNew_VerboseForcesDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	logger, err := New(config.LogConfig{File: path, Level: "error"}, Options{Verbose: true})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(config.LogConfig{Level: "loud"}, Options{})
	assert.ErrorContains(t, err, "invalid log level")
}

func TestParseLevel_DefaultWarn(t *testing.T) {
	level, err := parseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zapcore.WarnLevel, level)
}
