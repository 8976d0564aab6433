package testutil

import (
	"net/http"
	"net/http/httptest"
)

// These helpers stand in for the AIC API in unit tests.

// JSONResponder returns a handler that answers every request with the
// given body and status code.
func JSONResponder(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}
}

// SequenceResponder returns a handler that walks through the given
// bodies, one per request, repeating the last one once exhausted.
// Useful for testing the sampler's multi-attempt behavior.
func SequenceResponder(status int, bodies ...string) http.HandlerFunc {
	calls := 0
	return func(w http.ResponseWriter, r *http.Request) {
		body := bodies[len(bodies)-1]
		if calls < len(bodies) {
			body = bodies[calls]
		}
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}
}

// NewAICServer starts an httptest server whose listing and search
// endpoints are served by the given handlers. Callers must Close it.
func NewAICServer(listHandler, searchHandler http.Handler) *httptest.Server {
	mux := http.NewServeMux()
	mux.Handle("/api/v1/artworks", listHandler)
	mux.Handle("/api/v1/artworks/search", searchHandler)
	return httptest.NewServer(mux)
}
