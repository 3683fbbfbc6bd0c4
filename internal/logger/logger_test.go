// If you are AI: This file contains unit tests for the structured logger.

package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureOutput redirects logger output to a buffer and restores stdout afterwards.
func captureOutput(t *testing.T, level, format string) *bytes.Buffer {
	t.Helper()
	buf := new(bytes.Buffer)
	InitWithWriter(buf, level, format)
	t.Cleanup(func() {
		InitWithWriter(os.Stdout, "INFO", "text")
	})
	return buf
}

func TestLevelFiltering(t *testing.T) {
	t.Run("DebugLevelShowsAllMessages", func(t *testing.T) {
		buf := captureOutput(t, "DEBUG", "text")

		Debug("debug message")
		Info("info message")
		Warn("warn message")
		Error("error message")

		out := buf.String()
		assert.Contains(t, out, "[DEBUG] debug message")
		assert.Contains(t, out, "[INFO] info message")
		assert.Contains(t, out, "[WARN] warn message")
		assert.Contains(t, out, "[ERROR] error message")
	})

	t.Run("WarnLevelFiltersInfo", func(t *testing.T) {
		buf := captureOutput(t, "WARN", "text")

		Debug("debug message")
		Info("info message")
		Warn("warn message")

		out := buf.String()
		assert.NotContains(t, out, "debug message")
		assert.NotContains(t, out, "info message")
		assert.Contains(t, out, "warn message")
	})

	t.Run("ErrorAlwaysLogged", func(t *testing.T) {
		buf := captureOutput(t, "ERROR", "text")

		Warn("warn message")
		Error("error message")

		out := buf.String()
		assert.NotContains(t, out, "warn message")
		assert.Contains(t, out, "error message")
	})
}

func TestTextFormatFields(t *testing.T) {
	buf := captureOutput(t, "INFO", "text")

	Info("Server listening on 3000", "port", 3000, "addr", ":3000")

	line := strings.TrimSpace(buf.String())
	assert.Contains(t, line, "[INFO] Server listening on 3000")
	assert.Contains(t, line, "port=3000")
	assert.Contains(t, line, "addr=:3000")
	assert.NotContains(t, line, "\033[", "no ANSI codes when writing to a buffer")
}

func TestJSONFormat(t *testing.T) {
	buf := captureOutput(t, "INFO", "json")

	Warn("Force exiting after timeout", "timeout", "10s")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "WARN", record["level"])
	assert.Equal(t, "Force exiting after timeout", record["msg"])
	assert.Equal(t, "10s", record["timeout"])
}

func TestInvalidSettingsIgnored(t *testing.T) {
	buf := captureOutput(t, "INFO", "text")

	SetLevel("verbose")
	SetFormat("xml")
	Debug("hidden")
	Info("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[INFO] shown")
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "INFO", LevelInfo.String())
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "ERROR", LevelError.String())
	assert.Equal(t, "UNKNOWN", Level(42).String())
}

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, LevelWarn, l)

	_, err = ParseLevel("verbose")
	assert.ErrorContains(t, err, "verbose")
}

func TestColorTextHandler(t *testing.T) {
	buf := new(bytes.Buffer)
	l := slog.New(NewColorTextHandler(buf, slog.LevelDebug, true)).With("signal", "SIGTERM")

	l.Warn("Force exiting after timeout", "timeout", 10*time.Second)

	out := buf.String()
	assert.Contains(t, out, "\033[33mWARN\033[0m")
	assert.Contains(t, out, "signal\033[0m=SIGTERM")
	assert.Contains(t, out, "timeout\033[0m=10s")
}
