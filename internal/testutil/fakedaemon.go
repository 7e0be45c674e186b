package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// DaemonRequest records one request received by a FakeDaemon.
type DaemonRequest struct {
	Method      string
	Path        string
	ContentType string
	Body        string
}

// DaemonResponse is a canned reply for one endpoint.
type DaemonResponse struct {
	Status int
	Body   string
}

// FakeDaemon is an httptest server standing in for the sync daemon's remote-control API.
// Endpoints without a configured response answer 404.
type FakeDaemon struct {
	server *httptest.Server

	mu        sync.Mutex
	responses map[string]DaemonResponse
	requests  []DaemonRequest
}

// NewFakeDaemon starts a FakeDaemon that is closed when the test ends.
func NewFakeDaemon(t *testing.T) *FakeDaemon {
	t.Helper()

	d := &FakeDaemon{
		responses: make(map[string]DaemonResponse),
	}
	d.server = httptest.NewServer(http.HandlerFunc(d.handle))
	t.Cleanup(d.server.Close)
	return d
}

// URL returns the base address of the fake daemon.
func (d *FakeDaemon) URL() string {
	return d.server.URL
}

// Respond configures the reply for an endpoint such as "core/stats".
func (d *FakeDaemon) Respond(endpoint string, status int, body string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.responses["/"+strings.TrimLeft(endpoint, "/")] = DaemonResponse{Status: status, Body: body}
}

// Requests returns a copy of all requests received so far.
func (d *FakeDaemon) Requests() []DaemonRequest {
	d.mu.Lock()
	defer d.mu.Unlock()
	result := make([]DaemonRequest, len(d.requests))
	copy(result, d.requests)
	return result
}

// LastRequest returns the most recent request, failing the test if there is none.
func (d *FakeDaemon) LastRequest(t *testing.T) DaemonRequest {
	t.Helper()
	reqs := d.Requests()
	if len(reqs) == 0 {
		t.Fatal("fake daemon received no requests")
	}
	return reqs[len(reqs)-1]
}

func (d *FakeDaemon) handle(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	d.mu.Lock()
	d.requests = append(d.requests, DaemonRequest{
		Method:      r.Method,
		Path:        r.URL.Path,
		ContentType: r.Header.Get("Content-Type"),
		Body:        string(body),
	})
	resp, ok := d.responses[r.URL.Path]
	d.mu.Unlock()

	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.Status)
	_, _ = w.Write([]byte(resp.Body))
}
