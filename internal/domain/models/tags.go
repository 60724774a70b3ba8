// internal/domain/models/tags.go
package models

import "time"

// Category is a beneficiary tag such as "poor", "orphan", or "widow".
// Beneficiaries reference categories many-to-many via CategoryIDs.
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// HealthCondition is an independently managed tag list of illnesses and
// disabilities. Same shape as Category, separate collection.
type HealthCondition struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
