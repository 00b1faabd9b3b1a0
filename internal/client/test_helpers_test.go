package client

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/fivetwenty-io/bigc/pkg/bigc"
	"github.com/stretchr/testify/require"
)

// recordedRequest is what the fake store saw.
type recordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Body   string
}

// fakeStore answers every request with the same status and body and records
// what it received.
type fakeStore struct {
	mu       sync.Mutex
	requests []recordedRequest
	status   int
	body     string
}

func (s *fakeStore) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	body, _ := io.ReadAll(request.Body)

	s.mu.Lock()
	s.requests = append(s.requests, recordedRequest{
		Method: request.Method,
		Path:   request.URL.Path,
		Query:  request.URL.Query(),
		Body:   string(body),
	})
	status, response := s.status, s.body
	s.mu.Unlock()

	if status == 0 {
		status = http.StatusOK
	}

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	_, _ = io.WriteString(writer, response)
}

func (s *fakeStore) last(t *testing.T) recordedRequest {
	t.Helper()

	s.mu.Lock()
	defer s.mu.Unlock()

	require.NotEmpty(t, s.requests)

	return s.requests[len(s.requests)-1]
}

func (s *fakeStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.requests)
}

// NewTestClient creates a client for store "abc" talking to a fake store.
func NewTestClient(t *testing.T, store *fakeStore) *Client {
	t.Helper()

	server := httptest.NewServer(store)
	t.Cleanup(server.Close)

	client, err := New(&bigc.Config{
		StoreHash:   "abc",
		AccessToken: "token",
		APIEndpoint: server.URL,
	})
	require.NoError(t, err)

	return client
}

// envelope wraps data the way the v3 API does.
func envelope(t *testing.T, data any) string {
	t.Helper()

	body, err := json.Marshal(map[string]any{"data": data, "meta": map[string]any{}})
	require.NoError(t, err)

	return string(body)
}
