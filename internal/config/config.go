package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	SupabaseURL     string
	SupabaseAnonKey string
	ServiceRoleKey  string
	AdminEmails     []string
	RedeployHookURL string
	DatabaseURL     string
	RedisURL        string
	StorageBackend  string
	AWSRegion       string
	Port            string
	MetricsPort     string
}

func Load() *Config {
	// .env is optional; deployments inject the environment directly
	_ = godotenv.Load()
	return &Config{
		SupabaseURL:     getFirst("SUPABASE_URL", "VITE_SUPABASE_URL"),
		SupabaseAnonKey: getFirst("SUPABASE_ANON_KEY", "VITE_SUPABASE_ANON_KEY"),
		ServiceRoleKey:  os.Getenv("SUPABASE_SERVICE_ROLE_KEY"),
		AdminEmails:     splitEmails(os.Getenv("ADMIN_EMAILS")),
		RedeployHookURL: os.Getenv("REDEPLOY_HOOK_URL"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		RedisURL:        os.Getenv("REDIS_URL"),
		StorageBackend:  getEnv("STORAGE_BACKEND", "supabase"),
		AWSRegion:       getEnv("AWS_REGION", "us-east-1"),
		Port:            getEnv("PORT", "8080"),
		MetricsPort:     getEnv("METRICS_PORT", "9090"),
	}
}

// HasRequiredSecrets reports whether the three secrets every mutation
// request depends on are present.
func (c *Config) HasRequiredSecrets() bool {
	return c.SupabaseURL != "" && c.SupabaseAnonKey != "" && c.ServiceRoleKey != ""
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getFirst(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}

func splitEmails(s string) []string {
	var out []string
	for _, e := range strings.Split(s, ",") {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			out = append(out, e)
		}
	}
	return out
}
