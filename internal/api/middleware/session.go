package middleware

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"github.com/ndewijer/Investment-Fund-Dashboard/internal/api/response"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/apperrors"
	"github.com/ndewijer/Investment-Fund-Dashboard/internal/session"
)

const sessionKey contextKey = "session"

// ViewportHint is the client hint header carrying the layout viewport width.
const ViewportHint = "Sec-CH-Viewport-Width"

// Session resolves the client's session from its cookie, issuing a new one
// when needed, and stores it in the request context.
func Session(codec *session.Codec, registry *session.Registry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientID, err := codec.ClientID(w, r)
			if err != nil {
				log.Printf("failed to issue session: %v", err)
				response.RespondError(w, http.StatusInternalServerError, apperrors.ErrSessionUnavailable.Error(), err)
				return
			}

			sess := registry.Get(r.Context(), clientID)
			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
		})
	}
}

// WithSession returns a context carrying sess.
func WithSession(ctx context.Context, sess *session.Session) context.Context {
	return context.WithValue(ctx, sessionKey, sess)
}

// SessionFromContext returns the session stored by the Session middleware.
func SessionFromContext(ctx context.Context) (*session.Session, bool) {
	sess, ok := ctx.Value(sessionKey).(*session.Session)
	return sess, ok && sess != nil
}

// ClientHints asks browsers to send the viewport width on later requests.
func ClientHints(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Accept-CH", ViewportHint)
		w.Header().Add("Vary", ViewportHint)
		next.ServeHTTP(w, r)
	})
}

// ViewportWidth returns the viewport width hint of r, or 0 when the hint is
// missing or malformed.
func ViewportWidth(r *http.Request) int {
	width, err := strconv.Atoi(r.Header.Get(ViewportHint))
	if err != nil || width <= 0 {
		return 0
	}
	return width
}
