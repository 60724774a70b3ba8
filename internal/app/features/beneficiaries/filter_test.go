package beneficiaries_test

import (
	"testing"

	"github.com/takafulhq/takaful/internal/app/features/beneficiaries"
	"github.com/takafulhq/takaful/internal/domain/models"
)

func TestFilter_EmptyMatchesAll(t *testing.T) {
	records := []models.Beneficiary{
		{ID: "b1", Name: "Ali"},
		{ID: "b2", Name: "Sara"},
	}
	got := beneficiaries.Filter{}.Apply(records)
	if len(got) != 2 {
		t.Fatalf("empty filter should pass everything, got %d", len(got))
	}
}

func TestFilter_TextSearch(t *testing.T) {
	records := []models.Beneficiary{
		{ID: "b1", Name: "Ali Hassan", NationalID: "29801011234567", Phone: "01001234567"},
		{ID: "b2", Name: "Sara Ahmed", NationalID: "30005050987654", Phone: "01227654321"},
	}

	cases := []struct {
		name  string
		query string
		want  []string
	}{
		{"name substring, case-insensitive", "ali", []string{"b1"}},
		{"national id substring", "298010", []string{"b1"}},
		{"phone substring", "0122", []string{"b2"}},
		{"no match", "zzz", nil},
		{"shared digits match both", "0", []string{"b1", "b2"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := beneficiaries.Filter{Query: tc.query}.Apply(records)
			if len(got) != len(tc.want) {
				t.Fatalf("expected %d matches, got %d", len(tc.want), len(got))
			}
			for i, id := range tc.want {
				if got[i].ID != id {
					t.Errorf("position %d: expected %s, got %s", i, id, got[i].ID)
				}
			}
		})
	}
}

func TestFilter_CategoryAnyMode(t *testing.T) {
	b := models.Beneficiary{ID: "b1", CategoryIDs: []string{"cat1", "cat3"}}

	f := beneficiaries.Filter{CategoryIDs: []string{"cat2", "cat3"}, CategoryMode: beneficiaries.MatchAny}
	if !f.Match(b) {
		t.Error("OR mode: {cat1,cat3} should match selection {cat2,cat3}")
	}
	f.CategoryIDs = []string{"cat2", "cat4"}
	if f.Match(b) {
		t.Error("OR mode: disjoint selection must not match")
	}
}

func TestFilter_CategoryAllMode(t *testing.T) {
	b := models.Beneficiary{ID: "b1", CategoryIDs: []string{"cat1", "cat3"}}

	f := beneficiaries.Filter{CategoryIDs: []string{"cat1", "cat2"}, CategoryMode: beneficiaries.MatchAll}
	if f.Match(b) {
		t.Error("AND mode: record lacking cat2 must not match")
	}
	f.CategoryIDs = []string{"cat1", "cat3"}
	if !f.Match(b) {
		t.Error("AND mode: record carrying the full selection should match")
	}
}

func TestFilter_ClausesAreANDed(t *testing.T) {
	records := []models.Beneficiary{
		{ID: "b1", Name: "Ali", RegionID: "r1", Gender: models.GenderMale, SponsorshipStatus: models.Sponsored, EducationLevel: "primary_3"},
		{ID: "b2", Name: "Aliaa", RegionID: "r1", Gender: models.GenderFemale, SponsorshipStatus: models.Sponsored, EducationLevel: "primary_3"},
		{ID: "b3", Name: "Ali", RegionID: "r2", Gender: models.GenderMale, SponsorshipStatus: models.NotSponsored, EducationLevel: "none"},
	}
	f := beneficiaries.Filter{
		Query:             "ali",
		RegionID:          "r1",
		Gender:            models.GenderMale,
		SponsorshipStatus: models.Sponsored,
		EducationLevel:    "primary_3",
	}
	got := f.Apply(records)
	if len(got) != 1 || got[0].ID != "b1" {
		t.Fatalf("expected exactly b1, got %v", got)
	}
}
