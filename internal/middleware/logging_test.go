package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskBody(t *testing.T) {
	body := []byte(`{"email":"a@example.com","password" : "s3cr\"et"}`)
	assert.Equal(t, `{"email":"a@example.com","password":"[SENSITIVE]"}`, maskBody(body))
	assert.Equal(t, `{"term":"serendipity"}`, maskBody([]byte(`{"term":"serendipity"}`)))
}

func TestGetLogger_DefaultOutsideRequest(t *testing.T) {
	assert.Same(t, slog.Default(), GetLogger(context.Background()))
}

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	r := chi.NewRouter()
	r.Use(LoggingMiddleware(logger))
	r.Post("/words/{word_id}", func(w http.ResponseWriter, r *http.Request) {
		GetLogger(r.Context()).Info("inside handler")
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodPost, "/words/abc", strings.NewReader(`{"password":"hunter2"}`))
	req.Header.Set("Authorization", "Bearer token")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusTeapot, rr.Code)
	out := buf.String()
	assert.NotContains(t, out, "hunter2")
	assert.NotContains(t, out, "Bearer token")
	assert.Contains(t, out, "inside handler")

	var completed map[string]any
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		if entry["msg"] == "Request completed" {
			completed = entry
		}
	}
	require.NotNil(t, completed)
	assert.Equal(t, "WARN", completed["level"])
	assert.Equal(t, "/words/{word_id}", completed["route"])
	assert.Equal(t, float64(http.StatusTeapot), completed["status"])
}
