package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// NewCORS lets the configured origins call the JSON API with the session
// cookie. The viewport hint is allowed so cross-origin clients can drive the
// scroll breakpoint.
func NewCORS(allowedOrigins []string) *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", ViewportHint},
		ExposedHeaders:   []string{"Content-Type", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           600,
	})
}
