package observability_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cory-johannsen/ruins/internal/config"
	"github.com/cory-johannsen/ruins/internal/observability"
)

func readLog(t *testing.T, logger *zap.Logger, path string) string {
	t.Helper()
	_ = logger.Sync()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestNewLogger_Formats(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		t.Run(format, func(t *testing.T) {
			logger, err := observability.NewLogger(config.LoggingConfig{Level: "info", Format: format})
			require.NoError(t, err)
			assert.NotNil(t, logger)
		})
	}
}

func TestNewLogger_Rejects(t *testing.T) {
	cases := map[string]config.LoggingConfig{
		"level":  {Level: "trace", Format: "json"},
		"format": {Level: "info", Format: "xml"},
		"file":   {Level: "info", Format: "json", File: filepath.Join(t.TempDir(), "missing", "ruins.log")},
	}
	for name, cfg := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := observability.NewLogger(cfg)
			assert.Error(t, err)
		})
	}
}

func TestNewLogger_JSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ruins.log")
	logger, err := observability.NewLogger(config.LoggingConfig{Level: "info", Format: "json", File: path})
	require.NoError(t, err)

	logger.Debug("planning rat")
	logger.Info("turn advanced", zap.Int("turn", 3))

	out := readLog(t, logger, path)
	assert.NotContains(t, out, "planning rat")
	assert.Contains(t, out, `"msg":"turn advanced"`)
	assert.Contains(t, out, `"turn":3`)
	assert.Contains(t, out, `"logger":"ruins"`)
	assert.Contains(t, out, `"caller":"observability/logging_test.go`)
}

func TestNewLogger_ConsoleFileAtDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ruins.log")
	logger, err := observability.NewLogger(config.LoggingConfig{Level: "debug", Format: "console", File: path})
	require.NoError(t, err)

	logger.Named("ai").Debug("planning rat")
	out := readLog(t, logger, path)
	assert.Contains(t, out, "DEBUG")
	assert.Contains(t, out, "ruins.ai")
	assert.Contains(t, out, "planning rat")
}
