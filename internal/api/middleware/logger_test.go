package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_AccessEntry(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(Logger(zap.New(core)))
	r.Get("/api/interviews/{interview_id}", func(w http.ResponseWriter, r *http.Request) {
		ctxzap.Extract(r.Context()).Info("inside handler")
		w.WriteHeader(http.StatusNotFound)
	})
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/interviews/abc", nil))

	entries := logs.FilterMessage("HTTP request handled").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	fields := entries[0].ContextMap()
	assert.Equal(t, "/api/interviews/{interview_id}", fields["route"])
	assert.Equal(t, int64(http.StatusNotFound), fields["status"])
	assert.NotEmpty(t, fields["request_id"])

	inner := logs.FilterMessage("inside handler").All()
	require.Len(t, inner, 1)
	assert.Equal(t, fields["request_id"], inner[0].ContextMap()["request_id"])

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	entries = logs.FilterMessage("HTTP request handled").All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.DebugLevel, entries[1].Level)
}

func TestAccessLevel(t *testing.T) {
	assert.Equal(t, zapcore.WarnLevel, accessLevel("/health", http.StatusServiceUnavailable))
	assert.Equal(t, zapcore.WarnLevel, accessLevel("/api/vapi/generate", http.StatusInternalServerError))
	assert.Equal(t, zapcore.InfoLevel, accessLevel("/api/vapi/generate", http.StatusBadRequest))
	assert.Equal(t, zapcore.DebugLevel, accessLevel("/metrics", http.StatusOK))
}
