package handlers

import (
	"bytes"
	"errors"
	"html/template"
	"log"
	"net/http"

	"github.com/ndewijer/Investment-Fund-Dashboard/internal/api/middleware"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/api/response"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/apperrors"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/dashboard"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/session"
)

// DetailsAnchor is the fragment of the details section on the dashboard page.
const DetailsAnchor = "#fundDetails"

// DashboardHandler serves the server-rendered dashboard page and its
// form-driven interactions.
type DashboardHandler struct {
	templates *template.Template
}

// NewDashboardHandler creates a new DashboardHandler rendering with templates.
// The set must define a "dashboard" template.
func NewDashboardHandler(templates *template.Template) *DashboardHandler {
	return &DashboardHandler{
		templates: templates,
	}
}

// Page handles GET requests for the dashboard page of the client.
//
// Endpoint: GET /
// Response: 200 OK with text/html
func (h *DashboardHandler) Page(w http.ResponseWriter, r *http.Request) {
	sess, ok := requestSession(w, r)
	if !ok {
		return
	}

	var doc dashboard.Document
	//nolint:errcheck // the callback never fails
	sess.Do(func(s *session.Session) error {
		s.Document.SetViewportWidth(middleware.ViewportWidth(r))
		doc = *s.Document
		return nil
	})

	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, "dashboard", &doc); err != nil {
		log.Printf("failed to render dashboard: %v", err)
		http.Error(w, "failed to render dashboard", http.StatusInternalServerError)
		return
	}

	response.RespondBytes(w, http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// ActivateFund handles a click on a fund card or comparison row.
// Card activations scroll to the details after the configured delay on narrow
// viewports; row activations always scroll. The client is redirected to the
// page, anchored at the details when a scroll happened. Unknown funds leave
// the page unchanged.
//
// Endpoint: GET /funds/{fundId}?via=card|table
// Response: 303 See Other to / or /#fundDetails
// Error: 400 Bad Request if the fund ID or via is invalid
func (h *DashboardHandler) ActivateFund(w http.ResponseWriter, r *http.Request) {
	sess, ok := requestSession(w, r)
	if !ok {
		return
	}
	id, ok := requestFundID(w, r)
	if !ok {
		return
	}

	var scrolled bool
	var err error
	switch via := r.URL.Query().Get("via"); via {
	case "", "card":
		scrolled, err = activateCard(r, sess, id)
	case "table":
		err = sess.Do(func(s *session.Session) error {
			s.Document.SetViewportWidth(middleware.ViewportWidth(r))
			if err := s.Controller.ActivateRow(id); err != nil {
				return err
			}
			scrolled = s.Document.TakeScroll()
			return nil
		})
	default:
		response.RespondError(w, http.StatusBadRequest, "invalid activation source", via)
		return
	}

	if err != nil && !errors.Is(err, apperrors.ErrFundNotFound) {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveFund.Error(), err.Error())
		return
	}

	location := "/"
	if scrolled {
		location += DetailsAnchor
	}
	http.Redirect(w, r, location, http.StatusSeeOther)
}

// activateCard selects the fund and waits for the delayed scroll outside the
// session lock so other events of the client are not held up.
func activateCard(r *http.Request, sess *session.Session, id int) (bool, error) {
	var task *dashboard.ScrollTask
	err := sess.Do(func(s *session.Session) error {
		s.Document.SetViewportWidth(middleware.ViewportWidth(r))
		var err error
		task, err = s.Controller.ActivateCard(id)
		return err
	})
	if err != nil {
		return false, err
	}

	if !task.Wait(r.Context()) {
		return false, nil
	}
	//nolint:errcheck // the callback never fails
	sess.Do(func(s *session.Session) error {
		s.Document.TakeScroll()
		return nil
	})
	return true, nil
}

// ToggleTheme handles the theme toggle button of the page.
//
// Endpoint: POST /theme/toggle
// Response: 303 See Other to /
// Error: 500 Internal Server Error if the theme cannot be persisted
func (h *DashboardHandler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	sess, ok := requestSession(w, r)
	if !ok {
		return
	}

	err := sess.Do(func(s *session.Session) error {
		_, err := s.Controller.ToggleTheme(r.Context())
		return err
	})
	if err != nil {
		log.Printf("failed to toggle theme: %v", err)
		http.Error(w, apperrors.ErrFailedToToggleTheme.Error(), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
