// Package admin exposes the single privileged endpoint that mutates the
// property collection document.
package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"propadmin/internal/auth"
	"propadmin/internal/config"
	"propadmin/internal/observability"
	"propadmin/internal/properties"
	"propadmin/internal/repository"
	"propadmin/internal/storage"
)

type updateRequest struct {
	Action   string              `json:"action"`
	Property properties.Property `json:"property"`
}

// UpdateHandler is the admin endpoint: verify the bearer token, check the
// allowlist, then read-modify-write the whole collection document. There is
// no locking on the document; concurrent writers race and the last upload
// wins.
func UpdateHandler(
	cfg *config.Config,
	verifier auth.Verifier,
	allow auth.Allowlist,
	store storage.ObjectStore,
	notifier *RedeployNotifier,
	audit *repository.AuditRepository,
) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}

		ctx := r.Context()
		logger := log.WithField("request_id", uuid.NewString())

		token, ok := bearerToken(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized - missing token")
			return
		}

		if !cfg.HasRequiredSecrets() {
			logger.Error("required secrets absent, refusing request")
			writeError(w, http.StatusInternalServerError, "Server misconfiguration")
			return
		}

		user, err := verifier.Verify(ctx, token)
		if err != nil || user == nil {
			writeError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		email := strings.ToLower(user.Email)
		if !allow.Contains(email) {
			logger.WithField("email", email).Warn("update rejected, not an admin")
			writeError(w, http.StatusForbidden, "Forbidden - not an admin")
			return
		}

		data, err := store.Download(ctx, properties.Bucket, properties.Key)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusInternalServerError, "Failed to read properties.json: "+err.Error())
			return
		}

		collection, err := properties.Decode(data)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		var req updateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Action == "" || req.Property == nil {
			writeError(w, http.StatusBadRequest, "Bad request")
			return
		}

		updated, err := collection.Apply(req.Action, req.Property)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Unknown action")
			return
		}

		encoded, err := updated.Encode()
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		if err := store.Upload(ctx, properties.Bucket, properties.Key, encoded); err != nil {
			writeError(w, http.StatusInternalServerError, "Upload failed: "+err.Error())
			return
		}

		observability.MutationsTotal.WithLabelValues(req.Action).Inc()
		logger.WithFields(log.Fields{
			"email":       email,
			"action":      req.Action,
			"property_id": req.Property.ID(),
			"count":       len(updated),
		}).Info("collection updated")

		notifier.Notify()

		if audit != nil {
			entry := repository.AuditEntry{
				ID:         uuid.NewString(),
				ActorEmail: email,
				Action:     req.Action,
				PropertyID: req.Property.ID(),
			}
			go func() {
				if err := audit.Record(context.Background(), entry); err != nil {
					logger.WithError(err).Warn("audit record failed")
				}
			}()
		}

		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(h, "Bearer "), true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	observability.RequestsTotal.WithLabelValues(strconv.Itoa(status)).Inc()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
