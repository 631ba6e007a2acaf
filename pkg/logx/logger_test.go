package logx_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quicksend/quicksend/pkg/logx"
)

func newBufferLogger(level logx.Level, format logx.Format) (*logx.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := logx.NewLogger(&logx.Config{
		Level:      level,
		Format:     format,
		TimeFormat: "2006-01-02",
		Output:     &buf,
	})
	return logger, &buf
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logx.LevelDebug, logx.ParseLevel("debug"))
	assert.Equal(t, logx.LevelWarn, logx.ParseLevel("WARNING"))
	assert.Equal(t, logx.LevelOff, logx.ParseLevel("off"))
	assert.Equal(t, logx.LevelInfo, logx.ParseLevel("garbage"))
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(logx.LevelWarn, logx.FormatConsole)

	logger.WithFields(nil).Info("dropped")
	assert.Empty(t, buf.String())

	logger.WithFields(nil).Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestConsoleFormat_StableFieldOrder(t *testing.T) {
	logger, buf := newBufferLogger(logx.LevelDebug, logx.FormatConsole)

	logger.WithFields(logx.Fields{"b": 2, "a": 1}).Info("hello")

	line := buf.String()
	assert.Contains(t, line, "INFO")
	assert.Contains(t, line, "hello a=1 b=2")
}

func TestJSONFormat(t *testing.T) {
	logger, buf := newBufferLogger(logx.LevelDebug, logx.FormatJSON)

	logger.WithField("request_id", "req-1").Error("boom")

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "boom", record["message"])
	assert.Equal(t, "req-1", record["request_id"])
	assert.NotEmpty(t, record["time"])
}

func TestEntryFieldsDoNotLeak(t *testing.T) {
	logger, buf := newBufferLogger(logx.LevelDebug, logx.FormatConsole)

	base := logger.WithField("shared", "yes")
	base.WithField("extra", 1).Info("first")
	buf.Reset()

	base.Info("second")
	assert.Contains(t, buf.String(), "shared=yes")
	assert.NotContains(t, buf.String(), "extra")
}

func TestWithError(t *testing.T) {
	logger, buf := newBufferLogger(logx.LevelDebug, logx.FormatConsole)

	logger.WithError(assert.AnError).Error("failed")
	assert.Contains(t, buf.String(), "error=")
}
