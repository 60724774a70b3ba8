// internal/app/store/audit/auditstore.go
package auditstore

import (
	"context"

	"github.com/takafulhq/takaful/internal/app/store/collection"
	"github.com/takafulhq/takaful/internal/app/store/kv"
	"github.com/takafulhq/takaful/internal/domain/models"
)

// Key is the kv key holding the audit trail.
const Key = "audit_logs"

// Store persists the audit trail. The stored order is the read order:
// newest entry first. Entries are never edited or removed individually.
type Store struct {
	kv kv.Store
}

func New(kv kv.Store) *Store {
	return &Store{kv: kv}
}

func (s *Store) Load(ctx context.Context) ([]models.AuditEntry, error) {
	entries, _, err := collection.Load[models.AuditEntry](ctx, s.kv, Key)
	return entries, err
}

func (s *Store) Save(ctx context.Context, entries []models.AuditEntry) error {
	return collection.Save(ctx, s.kv, Key, entries)
}

// Prepend inserts entry at the head of the trail and persists the full list.
func (s *Store) Prepend(ctx context.Context, entry models.AuditEntry) error {
	entries, err := s.Load(ctx)
	if err != nil {
		return err
	}
	entries = append([]models.AuditEntry{entry}, entries...)
	return s.Save(ctx, entries)
}
