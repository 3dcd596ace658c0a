package supabase

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
)

var ErrInvalidToken = errors.New("supabase: invalid token")

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// GetUser resolves an access token to the user it belongs to. Any rejection
// by the auth API, or a response without a user id, comes back as
// ErrInvalidToken.
func (c *Client) GetUser(ctx context.Context, token string) (*User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("apikey", c.Key)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrInvalidToken
	}

	var user User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, ErrInvalidToken
	}
	if user.ID == "" {
		return nil, ErrInvalidToken
	}
	return &user, nil
}
