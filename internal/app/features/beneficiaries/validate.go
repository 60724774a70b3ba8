// internal/app/features/beneficiaries/validate.go
package beneficiaries

import (
	"strings"
	"unicode"

	"github.com/takafulhq/takaful/internal/app/system/inputval"
	"github.com/takafulhq/takaful/internal/domain/models"
)

// validate applies the field-level rules shared by create and update. The
// caller checks referential rules (region and family head existence)
// separately because they need store access.
func validate(in Input) error {
	errs := inputval.Errors{}

	if strings.TrimSpace(in.Name) == "" {
		errs.Add("name", "name is required")
	}
	if in.NationalID == "" {
		errs.Add("national_id", "national id is required")
	} else if !validNationalID(in.NationalID) {
		errs.Add("national_id", "national id must be exactly 14 digits")
	}
	if in.BirthDate.IsZero() {
		errs.Add("birth_date", "birth date is required")
	}
	// A family link fills in the head's region when blank, so the
	// requirement only applies to unlinked records.
	if in.RegionID == "" && (in.FamilyID == nil || *in.FamilyID == "") {
		errs.Add("region_id", "region is required")
	}
	if in.Gender != "" && in.Gender != models.GenderMale && in.Gender != models.GenderFemale {
		errs.Add("gender", "unknown gender")
	}
	if in.Status != "" && in.Status != models.StatusActive && in.Status != models.StatusSuspended {
		errs.Add("status", "unknown status")
	}
	if in.SponsorshipStatus != "" && in.SponsorshipStatus != models.Sponsored && in.SponsorshipStatus != models.NotSponsored {
		errs.Add("sponsorship_status", "unknown sponsorship status")
	}
	if !models.ValidEducationLevel(in.EducationLevel) {
		errs.Add("education_level", "unknown education level")
	}

	return errs.OrNil()
}

func validNationalID(id string) bool {
	if len(id) != models.NationalIDLength {
		return false
	}
	for _, r := range id {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
