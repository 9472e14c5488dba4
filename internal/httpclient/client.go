// Package httpclient builds the plain http.Client used by the acquisition
// stage. The source endpoints consumed by this importer (spec.md §6) carry
// no auth wall, so unlike the teacher's cookie-jar-aware client, this one
// only needs a sane timeout and a context-aware transport.
package httpclient

import (
	"net/http"
	"time"
)

// NewDefaultHTTPClient creates a simple HTTP client with a timeout. Per-request
// cancellation is handled by the caller via http.NewRequestWithContext, so no
// transport wrapping is needed here.
func NewDefaultHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}
