package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"vocab_trainer/internal/middleware"
	"vocab_trainer/internal/model"
	"vocab_trainer/internal/service"
	"vocab_trainer/internal/webutil"
)

type EnrichmentHandler struct {
	service service.EnrichmentService
}

func NewEnrichmentHandler(s service.EnrichmentService) *EnrichmentHandler {
	return &EnrichmentHandler{service: s}
}

// Refresh fetches one kind of content for a word again. An unreachable upstream
// still answers 200 with stale set.
func (h *EnrichmentHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "RefreshEnrichment"))
	userID, ok := requireUser(w, r, logger)
	if !ok {
		return
	}
	wordID, ok := wordIDParam(w, r, logger)
	if !ok {
		return
	}
	kind := model.EnrichmentKind(chi.URLParam(r, "kind"))
	if !kind.IsValid() {
		webutil.HandleError(w, logger, model.NewAppError("INVALID_URL_PARAM", "kind must be one of examples, definition, synonyms, translation.", "kind", model.ErrInvalidInput))
		return
	}

	resp, err := h.service.Refresh(r.Context(), userID, wordID, kind)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp)
}
