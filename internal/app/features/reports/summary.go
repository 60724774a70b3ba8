// internal/app/features/reports/summary.go

// Package reports derives counts and percentage breakdowns from an already
// branch-scoped beneficiary set. Everything here is a pure function of its
// input, safe to recompute on every request.
package reports

import (
	"time"

	"github.com/takafulhq/takaful/internal/domain/models"
)

// Age bucket keys.
const (
	BucketChild   = "child"   // 18 and under
	BucketAdult   = "adult"   // 19 through 60
	BucketElderly = "elderly" // 61 and up
)

// Snapshot is the aggregate view a dashboard renders.
type Snapshot struct {
	Total         int
	ByType        map[string]int
	ByStatus      map[string]int
	BySponsorship map[string]int
	ByAgeBucket   map[string]int
	ByBranchName  map[string]int
}

// Summarize aggregates the given beneficiaries as of now. branches supplies
// display names for the per-branch counts; records in a deleted branch are
// counted under their raw branch id.
func Summarize(beneficiaries []models.Beneficiary, branches []models.Branch, now time.Time) Snapshot {
	branchNames := make(map[string]string, len(branches))
	for _, b := range branches {
		branchNames[b.ID] = b.Name
	}

	snap := Snapshot{
		Total:         len(beneficiaries),
		ByType:        map[string]int{},
		ByStatus:      map[string]int{},
		BySponsorship: map[string]int{},
		ByAgeBucket:   map[string]int{},
		ByBranchName:  map[string]int{},
	}
	for _, b := range beneficiaries {
		snap.ByType[b.Type]++
		snap.ByStatus[b.Status]++
		snap.BySponsorship[b.SponsorshipStatus]++
		snap.ByAgeBucket[AgeBucket(b.BirthDate, now)]++

		name := branchNames[b.BranchID]
		if name == "" {
			name = b.BranchID
		}
		snap.ByBranchName[name]++
	}
	return snap
}

// Age returns calendar-aware whole years between birthDate and now: birth
// year subtracted from the current year, minus one if the current month/day
// has not yet reached the birth month/day.
func Age(birthDate, now time.Time) int {
	years := now.Year() - birthDate.Year()
	if now.Month() < birthDate.Month() ||
		(now.Month() == birthDate.Month() && now.Day() < birthDate.Day()) {
		years--
	}
	return years
}

// AgeBucket classifies a birth date as of now.
func AgeBucket(birthDate, now time.Time) string {
	switch age := Age(birthDate, now); {
	case age <= 18:
		return BucketChild
	case age <= 60:
		return BucketAdult
	default:
		return BucketElderly
	}
}

// Percent returns count/total as a display percentage. A zero total yields 0
// rather than propagating a division error.
func Percent(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}
