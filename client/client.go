// Package client talks to the two external collaborators of the booking core:
// the accommodation directory (read-only catalog) and the reservation
// submission service. It keeps the backend's wire quirks out of the core.
package client

import (
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout bounds every outbound request. The backend specifies no
// timeout of its own; a timed-out call fails the same way as any other
// transport error.
const DefaultTimeout = 30 * time.Second

// AuthContext supplies the bearer token for authenticated calls. The zero
// value means anonymous access. It is injected at construction time instead of
// read from a global so fakes are trivial in tests.
type AuthContext struct {
	Token string
}

func (a AuthContext) apply(req *http.Request) {
	if a.Token != "" {
		req.Header.Set("Authorization", "Bearer "+a.Token)
	}
}

func trimBaseURL(baseURL string) string {
	return strings.TrimRight(baseURL, "/")
}
