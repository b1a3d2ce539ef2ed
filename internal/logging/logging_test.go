package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, lvl)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "pharmtui.log")

	logger, err := New(path, "info")
	require.NoError(t, err)

	logger.Info("request failed", zap.String("panel", "search"))
	logger.Debug("dropped below level")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"request failed"`)
	assert.Contains(t, string(data), `"panel":"search"`)
	assert.NotContains(t, string(data), "dropped below level")
}

func TestNew_EmptyPath_Fails(t *testing.T) {
	_, err := New("", "info")
	assert.Error(t, err)
}

func TestNew_BadLevel_Fails(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "x.log"), "chatty")
	assert.Error(t, err)
}
