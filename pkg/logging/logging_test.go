package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger_Levels(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	tests := []struct {
		verbosity int
		want      zerolog.Level
	}{
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
		{7, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		SetupLoggerWithOutput(tt.verbosity, "", &buf)
		assert.Equal(t, tt.want, zerolog.GlobalLevel(), "verbosity %d", tt.verbosity)
	}
}

func TestSetupLogger_WritesLogFile(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	logFile := filepath.Join(t.TempDir(), "state", "tmplfill.log")
	var console bytes.Buffer

	SetupLoggerWithOutput(1, logFile, &console)
	log.Info().Str("option", "1").Msg("file logging works")

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "file logging works")
	assert.Contains(t, string(content), `"option":"1"`)
	assert.Contains(t, console.String(), "file logging works")
}

func TestSetupLogger_UnwritableLogFile(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	var console bytes.Buffer
	SetupLoggerWithOutput(0, filepath.Join(blocker, "sub", "tmplfill.log"), &console)

	assert.Contains(t, console.String(), "Failed to create log file")
}

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	logger := GetLogger("batch")
	logger.Info().Msg("component message")

	assert.Contains(t, buf.String(), `"component":"batch"`)
	assert.Contains(t, buf.String(), "component message")
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	logger := WithFields(map[string]interface{}{
		"key1": "value1",
		"key2": 42,
	})
	logger.Info().Msg("test message with fields")

	output := buf.String()
	assert.Contains(t, output, `"key1":"value1"`)
	assert.Contains(t, output, `"key2":42`)
}

func TestLogCommand(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	LogCommand("run", []string{"1", "--dry-run"})

	output := buf.String()
	assert.Contains(t, output, "run")
	assert.Contains(t, output, "--dry-run")
	assert.Contains(t, output, "Executing command")
}

func TestLogDuration(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	start := time.Now().Add(-5 * time.Second)
	LogDuration(start, "test-operation")

	output := buf.String()
	assert.Contains(t, output, "test-operation")
	assert.Contains(t, output, "duration")
	assert.True(t, strings.Contains(output, "5") || strings.Contains(output, "5000"))
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	done := LogOperationStart(logger, "substitution")
	assert.Contains(t, buf.String(), "Operation started")

	done()
	assert.Contains(t, buf.String(), "Operation completed")
}
