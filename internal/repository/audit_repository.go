package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type AuditEntry struct {
	ID         string
	ActorEmail string
	Action     string
	PropertyID string
}

// AuditRepository keeps one row per applied mutation. Recording is
// best-effort; the endpoint never fails a request over a missed audit row.
type AuditRepository struct {
	DB *pgxpool.Pool
}

func (r *AuditRepository) Record(ctx context.Context, e AuditEntry) error {
	_, err := r.DB.Exec(ctx, `
		INSERT INTO property_audit_log
		(id, actor_email, action, property_id, created_at)
		VALUES ($1, $2, $3, $4, now())
	`, e.ID, e.ActorEmail, e.Action, e.PropertyID)
	return err
}
