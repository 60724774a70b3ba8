// internal/domain/models/beneficiary.go
package models

import "time"

// Beneficiary type values.
const (
	TypeIndividual   = "individual"
	TypeFamilyHead   = "family_head"
	TypeFamilyMember = "family_member"
)

// Gender values.
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// Beneficiary status values.
const (
	StatusActive    = "active"
	StatusSuspended = "suspended"
)

// Sponsorship status values.
const (
	Sponsored    = "sponsored"
	NotSponsored = "not_sponsored"
)

// NationalIDLength is the exact length of the national identity number
// accepted at entry.
const NationalIDLength = 14

// Beneficiary is a person registered to receive aid.
//
// FamilyID is a pointer so that "no family" round-trips as an absent field
// rather than an empty string; a set FamilyID must reference a record whose
// Type is TypeFamilyHead in the same branch.
type Beneficiary struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	NationalID        string    `json:"national_id"`
	Phone             string    `json:"phone,omitempty"`
	Address           string    `json:"address,omitempty"`
	BirthDate         time.Time `json:"birth_date"`
	Gender            string    `json:"gender"`
	RegionID          string    `json:"region_id"`
	BranchID          string    `json:"branch_id"`
	Status            string    `json:"status"`             // active | suspended
	SponsorshipStatus string    `json:"sponsorship_status"` // sponsored | not_sponsored
	Type              string    `json:"type"`               // individual | family_head | family_member
	CategoryIDs       []string  `json:"category_ids,omitempty"`
	FamilyID          *string   `json:"family_id,omitempty"` // set only on family members
	EducationLevel    string    `json:"education_level,omitempty"`
	SchoolName        string    `json:"school_name,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

func (b Beneficiary) BranchRef() string { return b.BranchID }

// DeriveType computes the record type from its linkage state. The source
// system derived type in two divergent places; this is the single rule every
// write path goes through now:
//
//   - a record explicitly created as a family head stays a family head as
//     long as it carries no family link;
//   - any other record with a non-empty family link is a family member;
//   - everything else is an individual.
func DeriveType(explicit string, familyID *string) string {
	if familyID != nil && *familyID != "" {
		return TypeFamilyMember
	}
	if explicit == TypeFamilyHead {
		return TypeFamilyHead
	}
	return TypeIndividual
}

// HasCategory reports whether the beneficiary carries the given category tag.
func (b Beneficiary) HasCategory(categoryID string) bool {
	for _, id := range b.CategoryIDs {
		if id == categoryID {
			return true
		}
	}
	return false
}
