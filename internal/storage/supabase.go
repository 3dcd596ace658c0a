package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// SupabaseStore reads and writes objects through the platform storage API
// using the service-role key, bypassing row-level security.
type SupabaseStore struct {
	BaseURL    string
	ServiceKey string

	Client *http.Client
}

func NewSupabaseStore(baseURL, serviceKey string) *SupabaseStore {
	return &SupabaseStore{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		ServiceKey: serviceKey,
		Client:     &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *SupabaseStore) objectURL(bucket, key string) string {
	return fmt.Sprintf("%s/storage/v1/object/%s/%s", s.BaseURL, bucket, key)
}

func (s *SupabaseStore) Download(ctx context.Context, bucket, key string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.objectURL(bucket, key), nil)
	if err != nil {
		return nil, err
	}
	s.authorize(req)

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("storage download status %d: %s", resp.StatusCode, readBody(resp.Body))
	}
	return io.ReadAll(resp.Body)
}

func (s *SupabaseStore) Upload(ctx context.Context, bucket, key string, data []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.objectURL(bucket, key), bytes.NewReader(data))
	if err != nil {
		return err
	}
	s.authorize(req)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-upsert", "true")

	resp, err := s.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("storage upload status %d: %s", resp.StatusCode, readBody(resp.Body))
	}
	return nil
}

func (s *SupabaseStore) authorize(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+s.ServiceKey)
	req.Header.Set("apikey", s.ServiceKey)
}

func readBody(r io.Reader) string {
	b, _ := io.ReadAll(io.LimitReader(r, 512))
	return strings.TrimSpace(string(b))
}
