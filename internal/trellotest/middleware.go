package trellotest

import (
	"log"
	"net/http"
	"runtime/debug"
	"strings"
	"time"
)

// responseWriter wraps http.ResponseWriter to capture status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// logging logs request method, path, status, and duration. The query string
// is left out because it carries credentials.
func logging(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(wrapped, r)

			logger.Printf("%s %s %d %v", r.Method, r.URL.Path, wrapped.statusCode, time.Since(start))
		})
	}
}

// recovery catches panics and returns a 500 error.
func recovery(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Printf("panic recovered: %v\n%s", err, debug.Stack())
					http.Error(w, "internal server error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// auth rejects requests whose key/token query parameters do not match.
// OAuth-signed requests must also carry an OAuth Authorization header for
// the same consumer key.
func (s *Server) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("key") != s.key {
			http.Error(w, "invalid key", http.StatusUnauthorized)
			return
		}
		if q.Get("token") != s.token {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}
		if s.requireOAuth {
			authz := r.Header.Get("Authorization")
			if !strings.HasPrefix(authz, "OAuth ") || !strings.Contains(authz, `oauth_consumer_key="`+s.key+`"`) {
				http.Error(w, "missing OAuth signature", http.StatusUnauthorized)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}
