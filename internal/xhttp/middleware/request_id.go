package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/optouthub/optouthub-go/internal/xcontext"
	"github.com/optouthub/optouthub-go/internal/xhttp"
)

// RequestID assigns each request a uuid, stores it in the context, and
// echoes it back on the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New().String()
		ctx := xcontext.SetRequestID(r.Context(), id)
		xhttp.SetHeaderRequestID(w, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
