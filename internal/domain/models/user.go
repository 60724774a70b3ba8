// internal/domain/models/user.go
package models

import "time"

// Role values stored on User records. These are the stable storage strings;
// human-facing labels live in labels.go so the stored value never depends on
// the UI language.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleStaff   = "staff"
)

// DefaultPassword is assigned to newly created staff accounts. The account
// stays in the forced password-change state until the owner replaces it.
const DefaultPassword = "123"

// User represents a staff account.
//
// Passwords are stored and compared in plain text. That is the trust model of
// this system (single-tenant, non-adversarial deployment), not an oversight;
// only the auth service may read the Password field.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Username     string    `json:"username"` // unique across the system
	Password     string    `json:"password"`
	Role         string    `json:"role"` // admin | manager | staff
	BranchID     string    `json:"branch_id"`
	IsFirstLogin bool      `json:"is_first_login"`
	CreatedAt    time.Time `json:"created_at"`
}

// BranchRef reports the branch that scopes this record.
func (u User) BranchRef() string { return u.BranchID }

// IsAdmin reports whether the user sees every branch.
func (u User) IsAdmin() bool { return u.Role == RoleAdmin }
