// internal/domain/models/sponsor.go
package models

import "time"

// Sponsorship payment frequency values.
const (
	FrequencyMonthly = "monthly"
	FrequencyYearly  = "yearly"
	FrequencyOneTime = "one_time"
)

// Sponsor status values.
const (
	SponsorActive  = "active"
	SponsorStopped = "stopped"
)

// Sponsor is an external donor attached to a branch.
type Sponsor struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	BranchID  string    `json:"branch_id"`
	Amount    float64   `json:"amount"`
	Frequency string    `json:"frequency"` // monthly | yearly | one_time
	Status    string    `json:"status"`    // active | stopped
	StartDate time.Time `json:"start_date"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (s Sponsor) BranchRef() string { return s.BranchID }
