// Package middleware provides HTTP middleware for request validation and processing.
package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/api/response"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/validation"
)

type contextKey string

const fundIDKey contextKey = "fundID"

// ValidateFundIDMiddleware validates that the fundId URL parameter is present and is a positive integer.
// Returns 400 Bad Request if the fund ID is missing or invalid.
// The parsed id is available to handlers through FundIDFromContext.
//
// Example usage in router:
//
//	r.Route("/{fundId}", func(r chi.Router) {
//	    r.Use(middleware.ValidateFundIDMiddleware)
//	    r.Get("/", handler.GetFund)
//	})
func ValidateFundIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := chi.URLParam(r, "fundId")

		if raw == "" {
			response.RespondError(w, http.StatusBadRequest, "fund ID is required", "")
			return
		}

		id, err := validation.ValidateFundID(raw)
		if err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid fund ID format", err.Error())
			return
		}

		next.ServeHTTP(w, r.WithContext(WithFundID(r.Context(), id)))
	})
}

// FundIDFromContext returns the fund id stored by ValidateFundIDMiddleware.
func FundIDFromContext(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(fundIDKey).(int)
	return id, ok
}

// WithFundID returns a context carrying a validated fund id.
func WithFundID(ctx context.Context, id int) context.Context {
	return context.WithValue(ctx, fundIDKey, id)
}
