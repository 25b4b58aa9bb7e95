package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntries(t *testing.T, buf *bytes.Buffer) []Entry {
	t.Helper()
	var entries []Entry
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var e Entry
		require.NoError(t, json.Unmarshal([]byte(line), &e))
		entries = append(entries, e)
	}
	return entries
}

func TestLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New("test", WARN, &buf)

	logger.Debug("theme", "hidden", nil)
	logger.Info("theme", "hidden", nil)
	logger.Warn("theme", "shown", map[string]any{"theme": "dark"})
	logger.Error("form", "failed", errors.New("boom"), nil)

	entries := decodeEntries(t, &buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "WARN", entries[0].Level)
	assert.Equal(t, "theme", entries[0].Category)
	assert.Equal(t, "dark", entries[0].Fields["theme"])
	assert.Equal(t, "ERROR", entries[1].Level)
	assert.Equal(t, "boom", entries[1].Error)
}

func TestNilLoggerDiscards(t *testing.T) {
	var logger *Logger
	assert.NotPanics(t, func() {
		logger.Info("app", "ignored", nil)
		logger.WithRequestID("r").WithCategory("http").Log(ERROR, "ignored")
		logger.Error("app", "ignored", errors.New("x"), nil)
	})
	assert.False(t, logger.Enabled(FATAL))
}

func TestLogContextCarriesRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := New("test", INFO, &buf)

	logger.WithRequestID("req-1").WithCategory("form").WithField("field", "email").Log(WARN, "invalid")
	logger.WithRequestID("req-2").WithCategory("form").Log(DEBUG, "ignored")

	entries := decodeEntries(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "test", entries[0].Logger)
	assert.Equal(t, "WARN", entries[0].Level)
	assert.Equal(t, "req-1", entries[0].RequestID)
	assert.Equal(t, "form", entries[0].Category)
	assert.Equal(t, "email", entries[0].Fields["field"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DEBUG, ParseLevel("debug"))
	assert.Equal(t, WARN, ParseLevel(" Warning "))
	assert.Equal(t, ERROR, ParseLevel("error"))
	assert.Equal(t, INFO, ParseLevel("verbose"))
}

func TestHTTPLoggerMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := New("test", DEBUG, &buf)

	handler := NewHTTPLogger(logger).Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("ok"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/main.wasm", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))

	entries := decodeEntries(t, &buf)
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, "WARN", e.Level)
	assert.Equal(t, "http", e.Category)
	assert.Equal(t, rec.Header().Get(RequestIDHeader), e.RequestID)
	assert.EqualValues(t, http.StatusTeapot, e.Fields["status"])
	require.NotNil(t, e.Duration)
	headers, _ := e.Fields["request_headers"].(map[string]any)
	assert.NotContains(t, headers, "Authorization")
}
