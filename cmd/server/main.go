package main

import (
	"context"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"propadmin/internal/admin"
	"propadmin/internal/auth"
	"propadmin/internal/config"
	"propadmin/internal/observability"
	"propadmin/internal/repository"
	"propadmin/internal/storage"
	"propadmin/internal/supabase"
)

func main() {
	cfg := config.Load()

	// Fail fast: a process without platform credentials must not start.
	client, err := supabase.New(cfg.SupabaseURL, cfg.SupabaseAnonKey)
	if err != nil {
		log.Fatalf("supabase client: %v", err)
	}

	var store storage.ObjectStore
	switch cfg.StorageBackend {
	case "s3":
		store, err = storage.NewS3Store(cfg.AWSRegion)
		if err != nil {
			log.Fatalf("s3 store: %v", err)
		}
	case "memory":
		store = storage.NewMemStore()
	default:
		store = storage.NewSupabaseStore(cfg.SupabaseURL, cfg.ServiceRoleKey)
	}

	var verifier auth.Verifier = &auth.SupabaseVerifier{Client: client}
	if cfg.RedisURL != "" {
		verifier = &auth.CachedVerifier{
			Client: redis.NewClient(&redis.Options{Addr: cfg.RedisURL}),
			Next:   verifier,
		}
		log.Info("token verification cache enabled")
	}

	var audit *repository.AuditRepository
	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("postgres (pgxpool): %v", err)
		}
		if err := pool.Ping(context.Background()); err != nil {
			log.Fatalf("postgres (pgxpool): %v", err)
		}
		defer pool.Close()
		audit = &repository.AuditRepository{DB: pool}
		log.Info("audit log enabled")
	}

	allow := auth.NewAllowlist(cfg.AdminEmails)
	notifier := admin.NewRedeployNotifier(cfg.RedeployHookURL)

	observability.Start(cfg.MetricsPort)

	// Each listener gets its own mux: the admin route must not be reachable
	// on the metrics port, nor /metrics on the public port.
	mux := http.NewServeMux()
	mux.Handle(
		"/api/update-properties",
		admin.UpdateHandler(cfg, verifier, allow, store, notifier, audit),
	)

	log.Infof("property admin listening on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, mux); err != nil {
		log.Fatalf("server: %v", err)
	}
}
