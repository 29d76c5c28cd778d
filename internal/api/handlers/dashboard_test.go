package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ndewijer/Investment-Fund-Dashboard/internal/api/handlers"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/api/middleware"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/model"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/session"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/testutil"
)

func setupDashboardHandler(t *testing.T) (*handlers.DashboardHandler, *session.Session) {
	t.Helper()
	_, registry := testutil.NewTestSessions(t)
	sess := registry.Get(context.Background(), "client-1")
	return handlers.NewDashboardHandler(testutil.NewTestTemplates(t)), sess
}

func TestDashboardHandler_Page(t *testing.T) {
	t.Run("renders cards and table with hidden details", func(t *testing.T) {
		handler, sess := setupDashboardHandler(t)

		w := httptest.NewRecorder()
		handler.Page(w, testutil.NewRequestWithSession(http.MethodGet, "/", sess, 0))

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}
		body := w.Body.String()
		if strings.Count(body, `class="fund-card"`) != 4 {
			t.Error("Expected 4 fund cards")
		}
		if !strings.Contains(body, `class="fund-details hidden"`) {
			t.Error("Expected hidden details section")
		}
		if strings.Contains(body, `id="performanceChart"`) {
			t.Error("Expected no chart before a selection")
		}
	})

	t.Run("renders details and chart after a selection", func(t *testing.T) {
		handler, sess := setupDashboardHandler(t)
		//nolint:errcheck // Test setup
		sess.Do(func(s *session.Session) error { return s.Controller.ShowFundDetails(4) })

		w := httptest.NewRecorder()
		handler.Page(w, testutil.NewRequestWithSession(http.MethodGet, "/", sess, 0))

		body := w.Body.String()
		if !strings.Contains(body, `id="performanceChart"`) {
			t.Error("Expected a chart")
		}
		if !strings.Contains(body, "Index Fund") {
			t.Error("Expected the fund name in the details")
		}
		if strings.Count(body, "<circle") != 6 {
			t.Errorf("Expected 6 data points, got %d", strings.Count(body, "<circle"))
		}
	})
}

func TestDashboardHandler_ActivateFund(t *testing.T) {
	t.Run("card on a narrow viewport scrolls", func(t *testing.T) {
		handler, sess := setupDashboardHandler(t)

		req := testutil.NewRequestWithSession(http.MethodGet, "/funds/2?via=card", sess, 2)
		req.Header.Set(middleware.ViewportHint, "800")
		w := httptest.NewRecorder()

		handler.ActivateFund(w, req)

		if w.Code != http.StatusSeeOther {
			t.Fatalf("Expected status 303, got %d", w.Code)
		}
		if loc := w.Header().Get("Location"); loc != "/#fundDetails" {
			t.Errorf("Expected /#fundDetails, got %s", loc)
		}
		if sess.Controller.State().SelectedFundID != 2 {
			t.Errorf("Expected selection 2, got %d", sess.Controller.State().SelectedFundID)
		}
	})

	t.Run("card on a wide viewport does not scroll", func(t *testing.T) {
		handler, sess := setupDashboardHandler(t)

		req := testutil.NewRequestWithSession(http.MethodGet, "/funds/2?via=card", sess, 2)
		req.Header.Set(middleware.ViewportHint, "1440")
		w := httptest.NewRecorder()

		handler.ActivateFund(w, req)

		if loc := w.Header().Get("Location"); loc != "/" {
			t.Errorf("Expected /, got %s", loc)
		}
	})

	t.Run("table row always scrolls", func(t *testing.T) {
		handler, sess := setupDashboardHandler(t)

		req := testutil.NewRequestWithSession(http.MethodGet, "/funds/3?via=table", sess, 3)
		req.Header.Set(middleware.ViewportHint, "1920")
		w := httptest.NewRecorder()

		handler.ActivateFund(w, req)

		if loc := w.Header().Get("Location"); loc != "/#fundDetails" {
			t.Errorf("Expected /#fundDetails, got %s", loc)
		}
	})

	t.Run("unknown fund leaves the page unchanged", func(t *testing.T) {
		handler, sess := setupDashboardHandler(t)

		w := httptest.NewRecorder()
		handler.ActivateFund(w, testutil.NewRequestWithSession(http.MethodGet, "/funds/42?via=table", sess, 42))

		if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/" {
			t.Errorf("Expected 303 to /, got %d %s", w.Code, w.Header().Get("Location"))
		}
		if !sess.Document.DetailsHidden {
			t.Error("Expected details to stay hidden")
		}
	})

	t.Run("rejects unknown sources", func(t *testing.T) {
		handler, sess := setupDashboardHandler(t)

		w := httptest.NewRecorder()
		handler.ActivateFund(w, testutil.NewRequestWithSession(http.MethodGet, "/funds/1?via=keyboard", sess, 1))

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})
}

func TestDashboardHandler_ToggleTheme(t *testing.T) {
	handler, sess := setupDashboardHandler(t)

	w := httptest.NewRecorder()
	handler.ToggleTheme(w, testutil.NewRequestWithSession(http.MethodPost, "/theme/toggle", sess, 0))

	if w.Code != http.StatusSeeOther {
		t.Fatalf("Expected status 303, got %d", w.Code)
	}
	if sess.Controller.State().Theme != model.ThemeDark {
		t.Errorf("Expected dark theme, got %s", sess.Controller.State().Theme)
	}

	page := httptest.NewRecorder()
	handler.Page(page, testutil.NewRequestWithSession(http.MethodGet, "/", sess, 0))
	if !strings.Contains(page.Body.String(), `<body class="dark-mode">`) {
		t.Error("Expected the dark-mode body class")
	}
}
