// Package response writes the JSON, image and page responses of the dashboard.
// Error bodies share one shape so API clients can rely on the "error" field.
package response

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/ndewijer/Investment-Fund-Dashboard/internal/validation"
)

// ErrorResponse is the body of every API error.
// Details is omitted when empty; validation failures list their fields.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// RespondJSON sends data as JSON with the given status code.
// A nil data writes only the status.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("failed to encode JSON response: %v", err)
		}
	}
}

// RespondError sends an ErrorResponse. details may be a string, an error or
// nil; a *validation.Error is expanded to its field map.
//
// Example:
//
//	response.RespondError(w, http.StatusBadRequest, "invalid chart options", err)
//	response.RespondError(w, http.StatusNotFound, apperrors.ErrFundNotFound.Error(), "")
func RespondError(w http.ResponseWriter, status int, message string, details any) {
	RespondJSON(w, status, ErrorResponse{
		Error:   message,
		Details: errorDetails(details),
	})
}

func errorDetails(details any) any {
	switch d := details.(type) {
	case nil:
		return nil
	case string:
		if d == "" {
			return nil
		}
		return d
	case error:
		var verr *validation.Error
		if errors.As(d, &verr) {
			return verr.Fields
		}
		return d.Error()
	default:
		return d
	}
}

// RespondBytes sends a pre-rendered body such as a PNG chart or an HTML page.
func RespondBytes(w http.ResponseWriter, status int, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		log.Printf("failed to write %s response: %v", contentType, err)
	}
}
