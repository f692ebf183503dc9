// Package backendtest runs a fake portal backend for tests. Handlers are
// registered per-test on the chi router; every request is counted by
// "METHOD /path" so tests can assert how many times an endpoint was hit.
package backendtest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
)

type Backend struct {
	Router *chi.Mux
	Server *httptest.Server

	mu    sync.Mutex
	calls map[string]int
}

// New starts a fake backend; it is shut down via t.Cleanup.
func New(t *testing.T) *Backend {
	t.Helper()

	b := &Backend{
		Router: chi.NewRouter(),
		calls:  make(map[string]int),
	}
	b.Router.Use(b.countCalls)

	b.Server = httptest.NewServer(b.Router)
	t.Cleanup(b.Server.Close)
	return b
}

// URL is the base URL of the fake backend.
func (b *Backend) URL() string { return b.Server.URL }

// Calls returns how many times "METHOD /path" was requested.
func (b *Backend) Calls(methodAndPath string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[methodAndPath]
}

func (b *Backend) countCalls(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.calls[r.Method+" "+r.URL.Path]++
		b.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

// WriteJSON writes v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteDetail writes the backend's error shape: {"detail": "..."}.
func WriteDetail(w http.ResponseWriter, status int, detail string) {
	WriteJSON(w, status, map[string]string{"detail": detail})
}
