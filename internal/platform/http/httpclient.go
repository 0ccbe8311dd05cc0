// Package infrahttp provides shared HTTP client construction.
package infrahttp

import (
	"net/http"
	"time"
)

// NewHTTPClient returns an http.Client with the given timeout.
// Outbound calls to collaborators must never hang a request handler.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &http.Client{Timeout: timeout}
}
