package logger

import (
	"bytes"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notes-api/internal/config"
)

func TestLogger_FormatSelection(t *testing.T) {
	tests := []struct {
		name      string
		logFormat string
		check     func(t *testing.T, output string)
	}{
		{
			name:      "json format",
			logFormat: "json",
			check: func(t *testing.T, output string) {
				assert.Contains(t, output, `"msg":"test message"`)
				assert.Contains(t, output, `"key":"value"`)
			},
		},
		{
			name:      "text format",
			logFormat: "text",
			check: func(t *testing.T, output string) {
				assert.Contains(t, output, "msg=\"test message\"")
				assert.Contains(t, output, "key=value")
				assert.NotContains(t, output, `"msg":`)
			},
		},
		{
			name:      "pretty format",
			logFormat: "pretty",
			check: func(t *testing.T, output string) {
				assert.Contains(t, output, "test message")
				assert.Contains(t, output, "value")
				assert.NotContains(t, output, `"msg":`)
			},
		},
		{
			name:      "unknown format defaults to json",
			logFormat: "unknown",
			check: func(t *testing.T, output string) {
				assert.Contains(t, output, `"msg":"test message"`)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := New(&buf, config.Config{LogLevel: "info", LogFormat: tt.logFormat})

			log.Info("test message", "key", "value")

			tt.check(t, buf.String())
		})
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, config.Config{LogLevel: "info", LogFormat: "json"})

	log.Debug("debug message")
	assert.Empty(t, buf.String(), "debug message should be suppressed when level is info")

	buf.Reset()
	log.Info("info message")
	assert.Contains(t, buf.String(), "info message")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestLogger_Idempotency(t *testing.T) {
	log1, err := Init(config.Config{LogLevel: "info", LogFormat: "json"})
	require.NoError(t, err)
	require.NotNil(t, log1)

	log2, err := Init(config.Config{LogLevel: "debug", LogFormat: "text"})
	require.NoError(t, err)

	assert.Same(t, log1, log2, "Init with different config should still return the same logger instance")
	assert.Same(t, log1, L(), "L() should return the same logger instance as Init")
}

func TestLogger_Concurrency(t *testing.T) {
	cfg := config.Config{LogLevel: "info", LogFormat: "json"}

	const numGoroutines = 10
	var wg sync.WaitGroup
	results := make([]*slog.Logger, numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(index int) {
			defer wg.Done()
			log, _ := Init(cfg)
			results[index] = log
		}(i)
	}

	wg.Wait()

	for i := 1; i < numGoroutines; i++ {
		assert.Same(t, results[0], results[i], "all concurrent Init calls should return the same logger instance")
	}
}
