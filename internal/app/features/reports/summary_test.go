package reports_test

import (
	"testing"
	"time"

	"github.com/takafulhq/takaful/internal/app/features/reports"
	"github.com/takafulhq/takaful/internal/domain/models"
)

// A fixed "today" keeps the age arithmetic deterministic.
var today = time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

func TestSummarize_EmptySet(t *testing.T) {
	snap := reports.Summarize(nil, nil, today)
	if snap.Total != 0 {
		t.Errorf("expected total 0, got %d", snap.Total)
	}
	if len(snap.ByType) != 0 || len(snap.ByAgeBucket) != 0 {
		t.Error("expected empty breakdowns")
	}
	if p := reports.Percent(0, snap.Total); p != 0 {
		t.Errorf("zero total must yield 0%%, got %v", p)
	}
}

func TestSummarize_Breakdowns(t *testing.T) {
	branches := []models.Branch{{ID: "b1", Name: "Main Branch"}}
	records := []models.Beneficiary{
		{Type: models.TypeFamilyHead, Status: models.StatusActive, SponsorshipStatus: models.Sponsored,
			BranchID: "b1", BirthDate: time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC)},
		{Type: models.TypeFamilyMember, Status: models.StatusActive, SponsorshipStatus: models.NotSponsored,
			BranchID: "b1", BirthDate: time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC)},
		{Type: models.TypeIndividual, Status: models.StatusSuspended, SponsorshipStatus: models.NotSponsored,
			BranchID: "deleted-branch", BirthDate: time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	snap := reports.Summarize(records, branches, today)
	if snap.Total != 3 {
		t.Fatalf("expected total 3, got %d", snap.Total)
	}
	if snap.ByType[models.TypeFamilyHead] != 1 || snap.ByType[models.TypeIndividual] != 1 {
		t.Errorf("unexpected type breakdown: %v", snap.ByType)
	}
	if snap.ByStatus[models.StatusActive] != 2 || snap.ByStatus[models.StatusSuspended] != 1 {
		t.Errorf("unexpected status breakdown: %v", snap.ByStatus)
	}
	if snap.ByAgeBucket[reports.BucketChild] != 1 ||
		snap.ByAgeBucket[reports.BucketAdult] != 1 ||
		snap.ByAgeBucket[reports.BucketElderly] != 1 {
		t.Errorf("unexpected age breakdown: %v", snap.ByAgeBucket)
	}
	if snap.ByBranchName["Main Branch"] != 2 {
		t.Errorf("expected branch names resolved, got %v", snap.ByBranchName)
	}
	// A record in a branch that no longer exists is counted under its raw id.
	if snap.ByBranchName["deleted-branch"] != 1 {
		t.Errorf("expected raw id fallback, got %v", snap.ByBranchName)
	}

	if p := reports.Percent(snap.ByStatus[models.StatusActive], snap.Total); p < 66.6 || p > 66.7 {
		t.Errorf("expected ~66.7%%, got %v", p)
	}
}

func TestAge_CalendarAware(t *testing.T) {
	cases := []struct {
		name  string
		birth time.Time
		want  int
	}{
		{"birthday tomorrow", time.Date(2000, 6, 16, 0, 0, 0, 0, time.UTC), 23},
		{"birthday today", time.Date(2000, 6, 15, 0, 0, 0, 0, time.UTC), 24},
		{"birthday passed", time.Date(2000, 6, 14, 0, 0, 0, 0, time.UTC), 24},
		{"later month", time.Date(2000, 12, 1, 0, 0, 0, 0, time.UTC), 23},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := reports.Age(tc.birth, today); got != tc.want {
				t.Errorf("Age(%v) = %d, want %d", tc.birth, got, tc.want)
			}
		})
	}
}

func TestAgeBucket_Boundaries(t *testing.T) {
	cases := []struct {
		name  string
		birth time.Time
		want  string
	}{
		// Turns 18 today: still a child.
		{"exactly 18", time.Date(2006, 6, 15, 0, 0, 0, 0, time.UTC), reports.BucketChild},
		// 19th birthday was yesterday: adult.
		{"just 19", time.Date(2005, 6, 14, 0, 0, 0, 0, time.UTC), reports.BucketAdult},
		{"exactly 60", time.Date(1964, 6, 15, 0, 0, 0, 0, time.UTC), reports.BucketAdult},
		{"just 61", time.Date(1963, 6, 14, 0, 0, 0, 0, time.UTC), reports.BucketElderly},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := reports.AgeBucket(tc.birth, today); got != tc.want {
				t.Errorf("AgeBucket(%v) = %q, want %q", tc.birth, got, tc.want)
			}
		})
	}
}
