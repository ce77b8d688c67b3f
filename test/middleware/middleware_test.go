package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"kleos-intake/internal/middleware"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestLoggingMiddleware(t *testing.T) {
	// Create a buffer to capture logs
	var buf bytes.Buffer
	encoderConfig := zap.NewProductionEncoderConfig()
	encoder := zapcore.NewJSONEncoder(encoderConfig)
	core := zapcore.NewCore(encoder, zapcore.AddSync(&buf), zapcore.InfoLevel)
	logger := zap.New(core)

	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte("created"))
	})

	mw := middleware.LoggingMiddleware(logger)
	handler := mw(testHandler)

	req := httptest.NewRequest("GET", "/api/case-types", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if status := rr.Code; status != http.StatusCreated {
		t.Errorf("handler returned wrong status code: got %v want %v", status, http.StatusCreated)
	}

	logOutput := buf.String()
	if logOutput == "" {
		t.Fatal("expected logs, got empty string")
	}

	expectedFields := []string{
		`"msg":"HTTP request"`,
		`"method":"GET"`,
		`"path":"/api/case-types"`,
		`"status":201`,
	}
	for _, field := range expectedFields {
		if !strings.Contains(logOutput, field) {
			t.Errorf("log output missing field: %s", field)
		}
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	var seen string
	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = middleware.RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	handler := middleware.RequestIDMiddleware(testHandler)

	t.Run("assigns an id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/health", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if seen == "" {
			t.Error("no request id in context")
		}
		if got := rr.Header().Get(middleware.RequestIDHeader); got != seen {
			t.Errorf("response header id = %q, context id = %q", got, seen)
		}
	})

	t.Run("reuses the caller's id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/health", nil)
		req.Header.Set(middleware.RequestIDHeader, "req-123")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if seen != "req-123" {
			t.Errorf("context id = %q, want req-123", seen)
		}
	})
}
