package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ndewijer/Investment-Fund-Dashboard/internal/api/response"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/validation"
)

func TestRespondError(t *testing.T) {
	decode := func(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
		t.Helper()
		var body map[string]any
		if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		return body
	}

	t.Run("omits empty details", func(t *testing.T) {
		w := httptest.NewRecorder()

		response.RespondError(w, http.StatusNotFound, "fund not found", "")

		body := decode(t, w)
		if _, ok := body["details"]; ok {
			t.Errorf("Expected no details, got %v", body["details"])
		}
		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}
	})

	t.Run("renders errors as text", func(t *testing.T) {
		w := httptest.NewRecorder()

		response.RespondError(w, http.StatusInternalServerError, "failed", errors.New("disk full"))

		if body := decode(t, w); body["details"] != "disk full" {
			t.Errorf("Expected 'disk full', got %v", body["details"])
		}
	})

	t.Run("expands validation fields", func(t *testing.T) {
		w := httptest.NewRecorder()
		verr := &validation.Error{Fields: map[string]string{"width": "must be a number"}}

		response.RespondError(w, http.StatusBadRequest, "invalid chart options", verr)

		fields, ok := decode(t, w)["details"].(map[string]any)
		if !ok || fields["width"] != "must be a number" {
			t.Errorf("Expected width field, got %v", fields)
		}
	})
}

func TestRespondBytes(t *testing.T) {
	w := httptest.NewRecorder()

	response.RespondBytes(w, http.StatusOK, "image/png", []byte{0x89, 'P', 'N', 'G'})

	if ct := w.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Expected image/png, got %s", ct)
	}
	if w.Body.Len() != 4 {
		t.Errorf("Expected 4 bytes, got %d", w.Body.Len())
	}
}
