package auth

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propadmin/internal/supabase"
)

type staticVerifier struct {
	user  *supabase.User
	calls int
}

func (s *staticVerifier) Verify(context.Context, string) (*supabase.User, error) {
	s.calls++
	return s.user, nil
}

func TestCachedVerifierFallsThroughWhenRedisUnavailable(t *testing.T) {
	next := &staticVerifier{user: &supabase.User{ID: "u1", Email: "admin@example.com"}}
	cached := &CachedVerifier{
		// nothing listens here; every cache operation fails
		Client: redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1}),
		Next:   next,
	}

	user, err := cached.Verify(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, 1, next.calls)
}
