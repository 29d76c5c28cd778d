package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ndewijer/Investment-Fund-Dashboard/internal/api/middleware"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/session"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/testutil"
)

func TestSessionMiddleware(t *testing.T) {
	codec, registry := testutil.NewTestSessions(t)
	mw := middleware.Session(codec, registry)

	var seen *session.Session
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = middleware.SessionFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	t.Run("issues a session for a new client", func(t *testing.T) {
		w := httptest.NewRecorder()
		mw(next).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		if seen == nil {
			t.Fatal("Expected a session in the context")
		}
		if len(w.Result().Cookies()) != 1 {
			t.Error("Expected a session cookie")
		}
	})

	t.Run("returns the same session for the same cookie", func(t *testing.T) {
		w := httptest.NewRecorder()
		mw(next).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		first := seen
		cookie := w.Result().Cookies()[0]

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(cookie)
		mw(next).ServeHTTP(httptest.NewRecorder(), req)

		if seen != first {
			t.Error("Expected the existing session to be reused")
		}
	})
}

func TestClientHints(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {})
	w := httptest.NewRecorder()

	middleware.ClientHints(next).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if got := w.Header().Get("Accept-CH"); got != middleware.ViewportHint {
		t.Errorf("Expected Accept-CH %s, got %s", middleware.ViewportHint, got)
	}
}

func TestViewportWidth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := middleware.ViewportWidth(req); got != 0 {
		t.Errorf("Expected 0 without hint, got %d", got)
	}

	req.Header.Set(middleware.ViewportHint, "900")
	if got := middleware.ViewportWidth(req); got != 900 {
		t.Errorf("Expected 900, got %d", got)
	}

	req.Header.Set(middleware.ViewportHint, "wide")
	if got := middleware.ViewportWidth(req); got != 0 {
		t.Errorf("Expected 0 for malformed hint, got %d", got)
	}
}

func TestLogger(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	w := httptest.NewRecorder()

	middleware.Logger(next).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	if w.Code != http.StatusTeapot {
		t.Errorf("Expected status to pass through, got %d", w.Code)
	}
}
