package models_test

import (
	"testing"

	"github.com/takafulhq/takaful/internal/app/features/reports"
	"github.com/takafulhq/takaful/internal/domain/models"
)

func TestLabel(t *testing.T) {
	cases := []struct {
		key  string
		want string
	}{
		{models.RoleAdmin, "Admin"},
		{models.TypeFamilyHead, "Family Head"},
		{models.StatusSuspended, "Suspended"},
		{models.NotSponsored, "Not Sponsored"},
		{models.FrequencyOneTime, "One-Time"},
		// Age bucket keys render as labels too, so report rows line up.
		{reports.BucketChild, "Child"},
		{reports.BucketAdult, "Adult"},
		{reports.BucketElderly, "Elderly"},
		// Unknown keys fall back to themselves.
		{"branch-main", "branch-main"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := models.Label(tc.key); got != tc.want {
			t.Errorf("Label(%q) = %q, want %q", tc.key, got, tc.want)
		}
	}
}
