// Package errors provides HTTP middleware for panic recovery and
// error-response logging.
package errors

import (
	"net/http"
	"runtime/debug"

	"github.com/The2Innkeeper/polynomial-real-root-finding/internal/logging"
)

// RecoveryMiddleware converts handler panics into 500 responses and
// logs the stack.
func RecoveryMiddleware(logger *logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					fields := map[string]interface{}{
						"error": rec,
						"stack": string(debug.Stack()),
					}
					if r != nil {
						fields["method"] = r.Method
						fields["path"] = r.URL.Path
					}
					logger.Error("Recovered from panic", fields)
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// ErrorHandler logs every response with a 4xx or 5xx status.
func ErrorHandler(logger *logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rw, r)
			if rw.status >= http.StatusBadRequest {
				logger.Error("Request error", map[string]interface{}{
					"status": rw.status,
					"method": r.Method,
					"path":   r.URL.Path,
				})
			}
		})
	}
}

type responseWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (rw *responseWriter) WriteHeader(status int) {
	if rw.wroteHeader {
		return
	}
	rw.status = status
	rw.wroteHeader = true
	rw.ResponseWriter.WriteHeader(status)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.wroteHeader {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}
