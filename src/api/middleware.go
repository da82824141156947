package api

import (
	"net/http"

	"server/src/utils"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RequestLogger tags every request with a generated id and puts a scoped
// logger on the context for the service layer to pick up.
func RequestLogger(logger *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestLogger := logger.WithFields(logrus.Fields{
				"requestId": uuid.NewString(),
				"method":    r.Method,
				"path":      r.URL.Path,
			})
			ctx := utils.WithLogger(r.Context(), requestLogger)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
