package auth

import (
	"context"

	"propadmin/internal/supabase"
)

// Verifier resolves a bearer token to a verified user.
type Verifier interface {
	Verify(ctx context.Context, token string) (*supabase.User, error)
}

// SupabaseVerifier checks tokens against the platform auth API using the
// public (anon) key client.
type SupabaseVerifier struct {
	Client *supabase.Client
}

func (v *SupabaseVerifier) Verify(ctx context.Context, token string) (*supabase.User, error) {
	return v.Client.GetUser(ctx, token)
}
