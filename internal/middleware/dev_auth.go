package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"vocab_trainer/internal/model"
	"vocab_trainer/internal/webutil"
)

// DevUserContextMiddleware trusts the X-User-ID header. Only for local development
// and tests; the user is not checked against the database.
func DevUserContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		raw := r.Header.Get("X-User-ID")
		if raw == "" {
			logger.Warn("[DEV AUTH] X-User-ID header missing")
			webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "[DEV] Missing X-User-ID header.", "", model.ErrUnauthorized))
			return
		}

		userID, err := uuid.Parse(raw)
		if err != nil {
			logger.Warn("[DEV AUTH] Invalid X-User-ID format", "value", raw)
			webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "[DEV] Invalid X-User-ID format.", "", model.ErrUnauthorized))
			return
		}

		next.ServeHTTP(w, r.WithContext(withUser(r.Context(), userID)))
	})
}
