// internal/domain/models/branch.go
package models

import "time"

// Branch is the top-level organizational unit. Staff, sponsors, regions, and
// beneficiaries all hang off a branch; deleting a branch orphans them (the
// source system had no cascade guard and we preserve that behavior).
type Branch struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// BranchRef lets branches travel through branch-scoped listings unchanged;
// a branch is scoped by itself.
func (b Branch) BranchRef() string { return b.ID }

// Region is a geographic subdivision of a branch.
type Region struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	BranchID  string    `json:"branch_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (r Region) BranchRef() string { return r.BranchID }
