package beneficiaries_test

import (
	"testing"

	"github.com/takafulhq/takaful/internal/app/features/beneficiaries"
	"github.com/takafulhq/takaful/internal/domain/models"
	"github.com/takafulhq/takaful/internal/testutil"
)

func member(id, familyID string) models.Beneficiary {
	return models.Beneficiary{ID: id, Type: models.TypeFamilyMember, FamilyID: testutil.StrPtr(familyID)}
}

func TestBuildTree_HeadsThenIndividuals(t *testing.T) {
	all := []models.Beneficiary{
		{ID: "i1", Type: models.TypeIndividual},
		{ID: "h1", Type: models.TypeFamilyHead},
		member("m1", "h1"),
		{ID: "i2", Type: models.TypeIndividual},
		{ID: "h2", Type: models.TypeFamilyHead},
		member("m2", "h2"),
		member("m3", "h1"),
	}

	nodes := beneficiaries.BuildTree(all, all)
	wantOrder := []string{"h1", "h2", "i1", "i2"}
	if len(nodes) != len(wantOrder) {
		t.Fatalf("expected %d nodes, got %d", len(wantOrder), len(nodes))
	}
	for i, want := range wantOrder {
		if nodes[i].Beneficiary.ID != want {
			t.Errorf("node %d: expected %s, got %s", i, want, nodes[i].Beneficiary.ID)
		}
	}

	// h1's members in insertion order.
	if len(nodes[0].Members) != 2 || nodes[0].Members[0].ID != "m1" || nodes[0].Members[1].ID != "m3" {
		t.Errorf("h1 members wrong: %v", nodes[0].Members)
	}
	if len(nodes[1].Members) != 1 || nodes[1].Members[0].ID != "m2" {
		t.Errorf("h2 members wrong: %v", nodes[1].Members)
	}
	if len(nodes[2].Members) != 0 {
		t.Errorf("individuals carry no members, got %v", nodes[2].Members)
	}
}

func TestBuildTree_MembersAttachedFromUnfilteredSet(t *testing.T) {
	head := models.Beneficiary{ID: "h1", Name: "Ali", Type: models.TypeFamilyHead}
	m := member("m1", "h1")
	m.Name = "Sara"
	all := []models.Beneficiary{head, m}

	// The filter matched only the head; the member must still appear
	// because visibility follows the head.
	filtered := []models.Beneficiary{head}
	nodes := beneficiaries.BuildTree(filtered, all)
	if len(nodes) != 1 {
		t.Fatalf("expected 1 node, got %d", len(nodes))
	}
	if len(nodes[0].Members) != 1 || nodes[0].Members[0].ID != "m1" {
		t.Fatalf("expected member m1 attached, got %v", nodes[0].Members)
	}
}

func TestBuildTree_FilteredOutMemberDoesNotAppearStandalone(t *testing.T) {
	m := member("m1", "h-gone")
	all := []models.Beneficiary{m}

	// A member whose head is not in the filtered set produces no node of
	// its own; members only render under their head.
	nodes := beneficiaries.BuildTree(all, all)
	if len(nodes) != 0 {
		t.Fatalf("expected no nodes, got %d", len(nodes))
	}
}
