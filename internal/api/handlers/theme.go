package handlers

import (
	"log"
	"net/http"

	"github.com/ndewijer/Investment-Fund-Dashboard/internal/api/response"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/apperrors"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/dashboard"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/model"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/session"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/view"
)

// ThemeHandler handles HTTP requests for the client's theme.
type ThemeHandler struct{}

// NewThemeHandler creates a new ThemeHandler.
func NewThemeHandler() *ThemeHandler {
	return &ThemeHandler{}
}

// ThemeResponse represents the active theme of a client.
type ThemeResponse struct {
	Theme     model.Theme `json:"theme"`
	Icon      string      `json:"icon"`
	BodyClass string      `json:"bodyClass"`
}

// GetTheme handles GET requests to retrieve the client's active theme.
//
// Endpoint: GET /api/theme
// Response: 200 OK with ThemeResponse
func (h *ThemeHandler) GetTheme(w http.ResponseWriter, r *http.Request) {
	sess, ok := requestSession(w, r)
	if !ok {
		return
	}

	var theme model.Theme
	//nolint:errcheck // the callback never fails
	sess.Do(func(s *session.Session) error {
		theme = s.Controller.State().Theme
		return nil
	})

	response.RespondJSON(w, http.StatusOK, ThemeResponse{
		Theme:     theme,
		Icon:      view.ThemeIcon(theme),
		BodyClass: view.BodyClass(theme),
	})
}

// ToggleTheme handles POST requests to flip and persist the client's theme.
// When a fund is shown its chart is redrawn with the new colours.
//
// Endpoint: POST /api/theme/toggle
// Response: 200 OK with dashboard.ToggleResult
// Error: 500 Internal Server Error if the theme cannot be persisted
func (h *ThemeHandler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	sess, ok := requestSession(w, r)
	if !ok {
		return
	}

	var result dashboard.ToggleResult
	err := sess.Do(func(s *session.Session) error {
		var err error
		result, err = s.Controller.ToggleTheme(r.Context())
		return err
	})
	if err != nil {
		log.Printf("failed to toggle theme: %v", err)
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToToggleTheme.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, result)
}
