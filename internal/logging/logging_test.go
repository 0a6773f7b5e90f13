package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/exp/zapslog"
	"go.uber.org/zap/zapcore"
)

func TestNewWritesJSONToFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "citygrid.log")
	logger, cleanup, err := New("info", path)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("import complete", "city_id", 4, "rows_stored", 2)
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := bytes.Split(bytes.TrimSpace(data), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "import complete", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, float64(4), entry["city_id"])
	assert.Equal(t, float64(2), entry["rows_stored"])
	assert.Same(t, logger, slog.Default())
}

func TestNewBadLogFile(t *testing.T) {
	_, _, err := New("info", filepath.Join(t.TempDir(), "missing", "x.log"))
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("verbose"))
}

func TestCoreLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(zapslog.NewHandler(newCore(&buf, zapcore.WarnLevel)))

	logger.Info("skipped")
	logger.Warn("kept")

	assert.NotContains(t, buf.String(), "skipped")
	assert.Contains(t, buf.String(), `"msg":"kept"`)
}
