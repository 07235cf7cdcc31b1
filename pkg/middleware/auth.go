package middleware

import (
	"net/http"

	"shareit/pkg/utils"

	"go.uber.org/zap"
)

// Identity reads the caller id from the X-Sharer-User-Id header and stores it
// in the request context. Requests without a valid positive id are rejected.
func Identity(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(utils.SharerUserIDHeader)
			if raw == "" {
				utils.ResponseBadRequest(w, "Missing "+utils.SharerUserIDHeader+" header", nil)
				return
			}

			userID, err := utils.ParseID(raw)
			if err != nil {
				logger.Warn("Invalid user id header",
					zap.String("value", raw),
					zap.String("path", r.URL.Path),
					zap.String("request_id", utils.GetRequestIDFromContext(r.Context())),
				)
				utils.ResponseBadRequest(w, "Invalid "+utils.SharerUserIDHeader+" header", nil)
				return
			}

			ctx := utils.SetUserContext(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
