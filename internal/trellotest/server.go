// Package trellotest provides an in-process fake of the Trello REST API
// endpoints the client consumes, for use in tests.
package trellotest

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

const (
	// DefaultKey is the API key the server accepts unless overridden.
	DefaultKey = "test-key"
	// DefaultToken is the token the server accepts unless overridden.
	DefaultToken = "test-token"
)

// Request is a request received by the server.
type Request struct {
	Method string
	Path   string
	Query  map[string][]string
	Header http.Header
	Body   []byte
}

// Option configures a Server.
type Option func(*Server)

// WithCredentials sets the key and token the server accepts.
func WithCredentials(key, token string) Option {
	return func(s *Server) {
		s.key = key
		s.token = token
	}
}

// WithOAuth additionally requires an OAuth Authorization header.
func WithOAuth() Option {
	return func(s *Server) {
		s.requireOAuth = true
	}
}

// WithLogger sets the logger used by the request logging middleware.
func WithLogger(logger *log.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// Server is a fake Trello API listening on a local port.
type Server struct {
	*httptest.Server

	key          string
	token        string
	requireOAuth bool
	logger       *log.Logger

	data *data

	mu       sync.Mutex
	requests []Request
}

// New starts a fake server. Callers must Close it.
func New(opts ...Option) *Server {
	s := &Server{
		key:    DefaultKey,
		token:  DefaultToken,
		logger: log.New(io.Discard, "", 0),
		data:   newData(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.Server = httptest.NewServer(s.router())
	return s
}

// Requests returns the requests received so far, in order.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

func (s *Server) router() *chi.Mux {
	r := chi.NewRouter()

	r.Use(recovery(s.logger))
	r.Use(logging(s.logger))
	r.Use(chimiddleware.RealIP)
	r.Use(s.record)
	r.Use(s.auth)

	r.Get("/members/me/boards/all", s.listBoards)
	r.Get("/boards/{id}", s.getBoard)
	r.Get("/boards/{id}/lists", s.listLists)
	r.Get("/lists/{id}", s.getList)
	r.Get("/lists/{id}/cards", s.listCards)
	r.Post("/lists/{id}/cards", s.createCard)
	r.Get("/cards/{id}", s.getCard)

	return r
}

// record stores every request before it reaches auth.
func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body.Close()
		r.Body = io.NopCloser(bytes.NewReader(body))

		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Header: r.Header.Clone(),
			Body:   body,
		})
		s.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(v)
}
