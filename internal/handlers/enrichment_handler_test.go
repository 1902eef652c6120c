package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"vocab_trainer/internal/model"
)

func TestEnrichmentHandler_Refresh(t *testing.T) {
	userID, wordID := uuid.New(), uuid.New()

	t.Run("stale content is still 200", func(t *testing.T) {
		server, m := newMockServer(t)
		m.enrichment.On("Refresh", mock.Anything, userID, wordID, model.KindDefinition).Return(&model.EnrichmentResponse{
			WordID: wordID, Kind: model.KindDefinition, Value: "Not available", Stale: true,
		}, nil).Once()

		body := sendRequest(t, server, httpRequestDetails{
			Method: http.MethodPost, Path: "/api/v1/words/" + wordID.String() + "/enrichment/definition", Headers: userHeader(userID),
		}, http.StatusOK)
		var got model.EnrichmentResponse
		require.NoError(t, json.Unmarshal(body, &got))
		assert.True(t, got.Stale)
		assert.Equal(t, "Not available", got.Value)
	})

	t.Run("unknown kind", func(t *testing.T) {
		server, _ := newMockServer(t)
		body := sendRequest(t, server, httpRequestDetails{
			Method: http.MethodPost, Path: "/api/v1/words/" + wordID.String() + "/enrichment/etymology", Headers: userHeader(userID),
		}, http.StatusBadRequest)
		assert.Equal(t, "kind", decodeError(t, body).Field)
	})

	t.Run("word not found", func(t *testing.T) {
		server, m := newMockServer(t)
		m.enrichment.On("Refresh", mock.Anything, userID, wordID, model.KindExamples).
			Return(nil, model.NewAppError("WORD_NOT_FOUND", "Word not found.", "word_id", model.ErrNotFound)).Once()

		sendRequest(t, server, httpRequestDetails{
			Method: http.MethodPost, Path: "/api/v1/words/" + wordID.String() + "/enrichment/examples", Headers: userHeader(userID),
		}, http.StatusNotFound)
	})
}
