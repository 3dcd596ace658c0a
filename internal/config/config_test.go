package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadPrefersPrimaryEnvNames(t *testing.T) {
	t.Setenv("SUPABASE_URL", "https://primary.example.com")
	t.Setenv("VITE_SUPABASE_URL", "https://alternate.example.com")
	t.Setenv("SUPABASE_ANON_KEY", "anon")
	t.Setenv("SUPABASE_SERVICE_ROLE_KEY", "service")

	cfg := Load()
	assert.Equal(t, "https://primary.example.com", cfg.SupabaseURL)
	assert.True(t, cfg.HasRequiredSecrets())
}

func TestLoadFallsBackToAlternateEnvNames(t *testing.T) {
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("SUPABASE_ANON_KEY", "")
	t.Setenv("VITE_SUPABASE_URL", "https://alternate.example.com")
	t.Setenv("VITE_SUPABASE_ANON_KEY", "vite-anon")

	cfg := Load()
	assert.Equal(t, "https://alternate.example.com", cfg.SupabaseURL)
	assert.Equal(t, "vite-anon", cfg.SupabaseAnonKey)
}

func TestHasRequiredSecrets(t *testing.T) {
	cfg := &Config{SupabaseURL: "u", SupabaseAnonKey: "a", ServiceRoleKey: "s"}
	assert.True(t, cfg.HasRequiredSecrets())

	cfg.ServiceRoleKey = ""
	assert.False(t, cfg.HasRequiredSecrets())
}

func TestAdminEmailsSplitTrimLower(t *testing.T) {
	t.Setenv("ADMIN_EMAILS", " One@Example.com ,two@example.com,, THREE@EXAMPLE.COM")

	cfg := Load()
	assert.Equal(t, []string{"one@example.com", "two@example.com", "three@example.com"}, cfg.AdminEmails)
}

func TestDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("METRICS_PORT", "")
	t.Setenv("STORAGE_BACKEND", "")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "9090", cfg.MetricsPort)
	assert.Equal(t, "supabase", cfg.StorageBackend)
}
