package middleware

import (
	"bytes"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/ticklist/ticklist/internal/audit"
)

// Audit returns the audit interceptor. It wraps every request: before the
// rest of the pipeline runs it captures client IP, path and user-agent,
// and for POST requests buffers the body so downstream stages can still
// read it. After the response completes, including when a downstream
// stage rejects or the handler panics, it enqueues exactly one record to
// the writer with the final status code. The enqueue is deferred, so a
// failure anywhere in the chain does not suppress it.
func Audit(writer *audit.Writer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			record := audit.Record{
				ClientIP:  clientIP(r),
				Path:      r.URL.Path,
				UserAgent: r.UserAgent(),
			}

			if r.Method == http.MethodPost && r.Body != nil {
				body, err := io.ReadAll(r.Body)
				r.Body.Close()
				if err != nil {
					http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
					record.Timestamp = time.Now()
					record.StatusCode = http.StatusBadRequest
					writer.Enqueue(record)
					return
				}
				record.Body = string(body)

				// Hand the handler a fresh reader over the same bytes.
				r.Body = io.NopCloser(bytes.NewReader(body))
			}

			wrapped := wrapResponseWriter(w)

			defer func() {
				record.Timestamp = time.Now()
				record.StatusCode = wrapped.status
				writer.Enqueue(record)
			}()

			next.ServeHTTP(wrapped, r)
		})
	}
}

// clientIP strips the port from RemoteAddr. RealIP middleware upstream
// already rewrote RemoteAddr from forwarding headers when present.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
