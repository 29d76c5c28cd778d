package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/ndewijer/Investment-Fund-Dashboard/internal/api/middleware"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/api/response"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/apperrors"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/session"
)

// requestSession returns the session placed in the context by the Session
// middleware. It writes a 500 response and returns false when there is none.
func requestSession(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		log.Printf("no session for %s", r.URL.Path)
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrSessionUnavailable.Error(), "")
		return nil, false
	}
	return sess, true
}

// requestFundID returns the fund id validated by ValidateFundIDMiddleware.
func requestFundID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, ok := middleware.FundIDFromContext(r.Context())
	if !ok {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidFundID.Error(), "")
		return 0, false
	}
	return id, true
}

// respondFundError maps a fund lookup error to a 404 or 500 response.
func respondFundError(w http.ResponseWriter, err error) {
	if errors.Is(err, apperrors.ErrFundNotFound) {
		response.RespondError(w, http.StatusNotFound, apperrors.ErrFundNotFound.Error(), err.Error())
		return
	}
	response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveFund.Error(), err.Error())
}
