package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"vocab_trainer/internal/middleware"
	"vocab_trainer/internal/model"
	"vocab_trainer/internal/webutil"
)

// requireUser returns the authenticated user id, writing a 401 when there is none.
func requireUser(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (uuid.UUID, bool) {
	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", "error", err)
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Authentication is required.", "", model.ErrUnauthorized))
		return uuid.Nil, false
	}
	return userID, true
}

// wordIDParam parses the {word_id} URL parameter, writing a 400 when it is malformed.
func wordIDParam(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (uuid.UUID, bool) {
	raw := chi.URLParam(r, "word_id")
	wordID, err := uuid.Parse(raw)
	if err != nil {
		logger.Warn("Invalid word ID format in URL", "word_id", raw, "error", err)
		webutil.HandleError(w, logger, model.NewAppError("INVALID_URL_PARAM", "word_id must be a UUID.", "word_id", model.ErrInvalidInput))
		return uuid.Nil, false
	}
	return wordID, true
}
