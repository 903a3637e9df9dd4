package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/seba-moreno/real-estate-tracker/internal/utils"
)

// CorrelationIDMiddleware reuses the caller's X-Request-ID or generates one,
// stores it on the request context and echoes it on the response.
func CorrelationIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(utils.HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(utils.HeaderRequestID, id)
		next.ServeHTTP(w, r.WithContext(utils.WithCorrelationID(r.Context(), id)))
	})
}
