package server

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestLoggingMiddleware_RedactsSecrets(t *testing.T) {
	var buf bytes.Buffer
	opts := &slog.HandlerOptions{
		Level: slog.LevelDebug, // must be Debug to log headers
	}
	l := slog.New(slog.NewTextHandler(&buf, opts))
	slog.SetDefault(l)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
	})

	handler := loggingMiddleware(next)

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set(HeaderAPIKey, "secret-key-123")
	req.Header.Set(HeaderAuthorization, "Bearer mytoken")
	req.Header.Set("User-Agent", "TestAgent")

	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	logOutput := buf.String()

	if !strings.Contains(logOutput, LogMsgRequestHeaders) {
		t.Fatalf("Log output missing headers log: %s", logOutput)
	}

	if strings.Contains(logOutput, "secret-key-123") {
		t.Errorf("Log output contains X-API-Key value: %s", logOutput)
	}

	if strings.Contains(logOutput, "Bearer mytoken") {
		t.Errorf("Log output contains Authorization value: %s", logOutput)
	}

	if !strings.Contains(logOutput, "TestAgent") {
		t.Errorf("Log output missing non-sensitive header: %s", logOutput)
	}
}
