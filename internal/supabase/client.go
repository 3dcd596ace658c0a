// Package supabase is a minimal client for the parts of the Supabase REST
// surface this service touches: the auth user endpoint and object storage.
package supabase

import (
	"errors"
	"net/http"
	"strings"
	"time"
)

var httpClient = &http.Client{
	Timeout: 30 * time.Second,
}

var ErrMissingCredentials = errors.New("supabase: url and key are required")

// Client is a handle bound to one base URL and one API key. The key decides
// the privilege level: the anon key for auth checks, the service-role key
// for storage writes.
type Client struct {
	BaseURL string
	Key     string

	http *http.Client
}

// New builds a client or fails when either credential is absent. Callers
// treat a failure here as fatal at startup.
func New(baseURL, key string) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" || strings.TrimSpace(key) == "" {
		return nil, ErrMissingCredentials
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Key:     key,
		http:    httpClient,
	}, nil
}
