// internal/app/features/beneficiaries/filter.go
package beneficiaries

import (
	"strings"

	"github.com/dalemusser/waffle/pantry/text"

	"github.com/takafulhq/takaful/internal/domain/models"
)

// CategoryMode selects how a category filter selection combines.
type CategoryMode int

const (
	// MatchAny passes records whose categories intersect the selection.
	MatchAny CategoryMode = iota
	// MatchAll passes only records carrying every selected category.
	MatchAll
)

// Filter is the compound predicate applied to a branch-scoped beneficiary
// list. Zero-valued fields pass everything; set fields are ANDed together.
type Filter struct {
	// Query matches case-insensitively against the name, or as a plain
	// substring against the national id or phone. Matching any of the
	// three passes.
	Query             string
	RegionID          string
	EducationLevel    string
	SponsorshipStatus string
	Gender            string
	CategoryIDs       []string
	CategoryMode      CategoryMode
}

// Match reports whether the beneficiary passes every set clause.
func (f Filter) Match(b models.Beneficiary) bool {
	if q := strings.TrimSpace(f.Query); q != "" {
		byName := strings.Contains(text.Fold(b.Name), text.Fold(q))
		byNationalID := strings.Contains(b.NationalID, q)
		byPhone := b.Phone != "" && strings.Contains(b.Phone, q)
		if !byName && !byNationalID && !byPhone {
			return false
		}
	}
	if f.RegionID != "" && b.RegionID != f.RegionID {
		return false
	}
	if f.EducationLevel != "" && b.EducationLevel != f.EducationLevel {
		return false
	}
	if f.SponsorshipStatus != "" && b.SponsorshipStatus != f.SponsorshipStatus {
		return false
	}
	if f.Gender != "" && b.Gender != f.Gender {
		return false
	}
	if len(f.CategoryIDs) > 0 && !f.matchCategories(b) {
		return false
	}
	return true
}

func (f Filter) matchCategories(b models.Beneficiary) bool {
	switch f.CategoryMode {
	case MatchAll:
		for _, id := range f.CategoryIDs {
			if !b.HasCategory(id) {
				return false
			}
		}
		return true
	default:
		for _, id := range f.CategoryIDs {
			if b.HasCategory(id) {
				return true
			}
		}
		return false
	}
}

// Apply returns the records passing the filter, in their original order.
func (f Filter) Apply(records []models.Beneficiary) []models.Beneficiary {
	out := make([]models.Beneficiary, 0, len(records))
	for _, b := range records {
		if f.Match(b) {
			out = append(out, b)
		}
	}
	return out
}
