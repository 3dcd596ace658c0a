package auth

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"propadmin/internal/supabase"
)

const verifyTTL = 5 * time.Minute

// CachedVerifier fronts another Verifier with a short-lived Redis cache so
// repeated requests with the same token cost one auth round trip instead of
// one per request. A revoked token stays valid for at most verifyTTL.
type CachedVerifier struct {
	Client *redis.Client
	Next   Verifier
}

func (c *CachedVerifier) Verify(ctx context.Context, token string) (*supabase.User, error) {
	key := "authtoken:" + token

	if val, err := c.Client.Get(ctx, key).Result(); err == nil {
		var user supabase.User
		if json.Unmarshal([]byte(val), &user) == nil && user.ID != "" {
			return &user, nil
		}
	}

	user, err := c.Next.Verify(ctx, token)
	if err != nil {
		return nil, err
	}

	b, _ := json.Marshal(user)
	c.Client.Set(ctx, key, b, verifyTTL)

	return user, nil
}
