// Package network provides the HTTP client and the GraphQL transport used to reach the AniList API.
package network

import (
	"net/http"
	"time"
)

// DefaultTimeout bounds a single GraphQL round trip.
const DefaultTimeout = time.Minute

// Client is the shared HTTP client used when no other client is configured.
var Client = NewHTTPClient(DefaultTimeout)

// NewHTTPClient returns an http.Client with a tuned transport and the given overall timeout.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: newTransport(),
	}
}

// newTransport initializes an http.Transport with pool and timeout parameters suited to a single API host.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 16
	t.MaxIdleConnsPerHost = 16
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = time.Second
	return t
}
