package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vocab_trainer/internal/handlers"
	"vocab_trainer/internal/middleware"
	"vocab_trainer/internal/model"
	svcmocks "vocab_trainer/internal/service/mocks"
)

type serviceMocks struct {
	auth       *svcmocks.AuthService
	words      *svcmocks.WordService
	reviews    *svcmocks.ReviewService
	enrichment *svcmocks.EnrichmentService
	stats      *svcmocks.StatsService
}

// newMockServer serves the full router over service mocks. Requests authenticate
// with the X-User-ID header.
func newMockServer(t *testing.T) (*httptest.Server, serviceMocks) {
	t.Helper()
	m := serviceMocks{
		auth:       svcmocks.NewAuthService(t),
		words:      svcmocks.NewWordService(t),
		reviews:    svcmocks.NewReviewService(t),
		enrichment: svcmocks.NewEnrichmentService(t),
		stats:      svcmocks.NewStatsService(t),
	}
	router := handlers.NewRouter(handlers.RouterConfig{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Auth:   middleware.DevUserContextMiddleware,
	}, handlers.Handlers{
		Auth:       handlers.NewAuthHandler(m.auth),
		Words:      handlers.NewWordHandler(m.words),
		Reviews:    handlers.NewReviewHandler(m.reviews),
		Enrichment: handlers.NewEnrichmentHandler(m.enrichment),
		Stats:      handlers.NewStatsHandler(m.stats),
	})
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server, m
}

type httpRequestDetails struct {
	Method  string
	Path    string
	Body    interface{}
	Headers map[string]string
}

// sendRequest performs the request, checks the status code and returns the body.
func sendRequest(t *testing.T, server *httptest.Server, details httpRequestDetails, expectedCode int) []byte {
	t.Helper()

	var reqBody io.Reader
	if details.Body != nil {
		if s, ok := details.Body.(string); ok {
			reqBody = strings.NewReader(s)
		} else {
			b, err := json.Marshal(details.Body)
			require.NoError(t, err)
			reqBody = bytes.NewBuffer(b)
		}
	}

	req, err := http.NewRequest(details.Method, server.URL+details.Path, reqBody)
	require.NoError(t, err)
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range details.Headers {
		req.Header.Set(k, v)
	}

	resp, err := server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, expectedCode, resp.StatusCode, "unexpected status, body: %s", body)
	return body
}

func userHeader(id uuid.UUID) map[string]string {
	return map[string]string{"X-User-ID": id.String()}
}

func decodeError(t *testing.T, body []byte) model.ErrorDetail {
	t.Helper()
	var resp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(body, &resp), "body: %s", body)
	return resp.Error
}
