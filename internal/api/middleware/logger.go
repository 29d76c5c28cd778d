package middleware

import (
	"log"
	"net/http"
	"strings"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// Logger logs one line per request with the chi request id, the status,
// the response size and the duration.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		// Strip CR/LF from client supplied values to prevent log injection.
		sanitize := strings.NewReplacer("\n", "", "\r", "").Replace
		//nolint:gosec // G706: method and path are sanitized above.
		log.Printf(
			"[%s] %s %s %d %dB %s",
			chimw.GetReqID(r.Context()),
			sanitize(r.Method),
			sanitize(r.URL.RequestURI()),
			status,
			ww.BytesWritten(),
			time.Since(start),
		)
	})
}
