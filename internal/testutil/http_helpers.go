package testutil

import (
	"context"
	"html/template"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/api/middleware"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/api/web"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/session"
)

// NewRequestWithURLParams creates an HTTP request with chi URL parameters.
// This helper simplifies testing chi handlers that use chi.URLParam() to extract path parameters.
//
// Example:
//
//	req := testutil.NewRequestWithURLParams(
//	    http.MethodGet,
//	    "/api/fund/3",
//	    map[string]string{"fundId": "3"},
//	)
func NewRequestWithURLParams(method, path string, params map[string]string) *http.Request {
	req := httptest.NewRequest(method, path, nil)

	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for key, value := range params {
			rctx.URLParams.Add(key, value)
		}
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	return req
}

// NewRequestWithSession creates an HTTP request carrying a dashboard session
// and, when fundID is positive, a validated fund id, as the router's
// middleware would.
func NewRequestWithSession(method, path string, sess *session.Session, fundID int) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	ctx := req.Context()
	if sess != nil {
		ctx = middleware.WithSession(ctx, sess)
	}
	if fundID > 0 {
		ctx = middleware.WithFundID(ctx, fundID)
	}
	return req.WithContext(ctx)
}

// NewTestTemplates parses the embedded dashboard templates.
func NewTestTemplates(t *testing.T) *template.Template {
	t.Helper()

	tmpl, err := web.Templates()
	if err != nil {
		t.Fatalf("Failed to parse templates: %v", err)
	}
	return tmpl
}
