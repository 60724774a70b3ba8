// internal/domain/models/auditentry.go
package models

import "time"

// Audit actions. Free-text by contract, but every code path uses these.
const (
	ActionAdd    = "add"
	ActionEdit   = "edit"
	ActionDelete = "delete"
)

// AuditEntry records one mutating action. Entries are append-only and stored
// newest-first; the application never edits or deletes them.
//
// UserName is a snapshot taken at record time so the trail stays readable
// after the acting account is renamed or removed.
type AuditEntry struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	UserName   string    `json:"user_name"`
	Action     string    `json:"action"`
	EntityType string    `json:"entity_type"`
	EntityID   string    `json:"entity_id"`
	Timestamp  time.Time `json:"timestamp"`
}
