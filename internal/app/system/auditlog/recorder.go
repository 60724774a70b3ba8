// internal/app/system/auditlog/recorder.go

// Package auditlog appends the immutable trail of who did what to which
// record. Every mutating service routes through Record; entries are stored
// newest-first and mirrored to the structured log.
package auditlog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	auditstore "github.com/takafulhq/takaful/internal/app/store/audit"
	"github.com/takafulhq/takaful/internal/domain/models"
)

// Destination controls where entries go.
// Values: "all" (store + zap), "db" (store only), "log" (zap only), "off".
type Config struct {
	Destination string
}

// Recorder writes audit entries. A nil Recorder is a no-op, which lets tests
// exercise services without wiring a trail.
type Recorder struct {
	store  *auditstore.Store
	zapLog *zap.Logger
	config Config
}

func New(store *auditstore.Store, zapLog *zap.Logger, config Config) *Recorder {
	if config.Destination == "" {
		config.Destination = "all"
	}
	return &Recorder{store: store, zapLog: zapLog, config: config}
}

// Record appends one entry for the acting user and persists the trail. The
// entry id and timestamp are generated here; callers never supply them.
func (r *Recorder) Record(ctx context.Context, user models.User, action, entityType, entityID string) (models.AuditEntry, error) {
	entry := models.AuditEntry{
		ID:         uuid.NewString(),
		UserID:     user.ID,
		UserName:   user.Name,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Timestamp:  time.Now().UTC(),
	}
	if r == nil || r.config.Destination == "off" {
		return entry, nil
	}

	if r.config.Destination == "all" || r.config.Destination == "log" {
		r.zapLog.Info("audit event",
			zap.Bool("audit", true),
			zap.String("action", entry.Action),
			zap.String("entity_type", entry.EntityType),
			zap.String("entity_id", entry.EntityID),
			zap.String("user_id", entry.UserID),
			zap.String("user_name", entry.UserName),
		)
	}

	if r.config.Destination == "all" || r.config.Destination == "db" {
		if err := r.store.Prepend(ctx, entry); err != nil {
			return models.AuditEntry{}, err
		}
	}
	return entry, nil
}

// Entries returns the trail, newest first. Restricting who may view it is a
// caller-level permission check, not enforced here.
func (r *Recorder) Entries(ctx context.Context) ([]models.AuditEntry, error) {
	if r == nil {
		return nil, nil
	}
	return r.store.Load(ctx)
}
