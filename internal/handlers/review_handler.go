package handlers

import (
	"log/slog"
	"net/http"

	"vocab_trainer/internal/middleware"
	"vocab_trainer/internal/model"
	"vocab_trainer/internal/service"
	"vocab_trainer/internal/webutil"
)

type ReviewHandler struct {
	service service.ReviewService
}

func NewReviewHandler(s service.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: s}
}

func (h *ReviewHandler) GetReviewWords(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetReviewWords"))
	userID, ok := requireUser(w, r, logger)
	if !ok {
		return
	}

	words, err := h.service.ListDue(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if words == nil {
		words = []*model.ReviewWordResponse{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, words)
}

// GetNextWord returns one random due word, or nothing_due when there is none.
func (h *ReviewHandler) GetNextWord(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetNextWord"))
	userID, ok := requireUser(w, r, logger)
	if !ok {
		return
	}

	resp, err := h.service.NextDue(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *ReviewHandler) SubmitReviewResult(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "SubmitReviewResult"))
	userID, ok := requireUser(w, r, logger)
	if !ok {
		return
	}
	wordID, ok := wordIDParam(w, r, logger)
	if !ok {
		return
	}

	var req model.SubmitReviewRequest
	if err := webutil.BindJSON(r, &req); err != nil {
		logger.Warn("Invalid review request", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	word, err := h.service.SubmitReview(r.Context(), userID, wordID, req.Outcome)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, word)
}
