// Package testutil provides a fake dashboard backend for tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
)

// Request is a request recorded by Backend.
type Request struct {
	Method   string
	Path     string
	RawQuery string
	Header   http.Header
	Body     []byte
}

// DecodeBody unmarshals the recorded JSON body into target.
func (r Request) DecodeBody(t testing.TB, target any) {
	t.Helper()
	if err := json.Unmarshal(r.Body, target); err != nil {
		t.Fatalf("failed to decode request body %q: %v", r.Body, err)
	}
}

// Backend is an httptest server routing requests through chi and recording
// every request it receives. Unrouted requests get chi's plain-text 404.
type Backend struct {
	router chi.Router
	server *httptest.Server

	mu       sync.Mutex
	requests []Request
}

// NewBackend starts a backend that is closed when the test ends.
func NewBackend(t testing.TB) *Backend {
	t.Helper()

	b := &Backend{router: chi.NewRouter()}
	b.router.Use(b.record)
	b.server = httptest.NewServer(b.router)
	t.Cleanup(b.server.Close)

	return b
}

// URL returns the base URL of the backend.
func (b *Backend) URL() string {
	return b.server.URL
}

// Handle routes method and pattern (chi syntax, e.g. /tickets/{id}) to h.
func (b *Backend) Handle(method, pattern string, h http.HandlerFunc) {
	b.router.MethodFunc(method, pattern, h)
}

// Respond routes method and pattern to a handler writing an envelope.
func (b *Backend) Respond(method, pattern string, status int, ok bool, message string, data any) {
	b.Handle(method, pattern, func(w http.ResponseWriter, _ *http.Request) {
		WriteEnvelope(w, status, ok, message, data)
	})
}

// Requests returns the recorded requests in arrival order.
func (b *Backend) Requests() []Request {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Request(nil), b.requests...)
}

// LastRequest returns the most recent request, failing the test if none
// was recorded.
func (b *Backend) LastRequest(t testing.TB) Request {
	t.Helper()

	reqs := b.Requests()
	if len(reqs) == 0 {
		t.Fatal("backend received no requests")
	}
	return reqs[len(reqs)-1]
}

func (b *Backend) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(body))

		b.mu.Lock()
		b.requests = append(b.requests, Request{
			Method:   r.Method,
			Path:     r.URL.EscapedPath(),
			RawQuery: r.URL.RawQuery,
			Header:   r.Header.Clone(),
			Body:     body,
		})
		b.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

// WriteEnvelope writes a dashboard envelope with the given status.
func WriteEnvelope(w http.ResponseWriter, status int, ok bool, message string, data any) {
	WriteJSON(w, status, map[string]any{
		"isSuccess": ok,
		"message":   message,
		"data":      data,
	})
}

// WriteJSON writes v as JSON with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
