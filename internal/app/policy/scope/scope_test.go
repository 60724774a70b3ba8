package scope_test

import (
	"testing"

	"github.com/takafulhq/takaful/internal/app/policy/scope"
	"github.com/takafulhq/takaful/internal/domain/models"
)

func TestVisible_AdminSeesEverythingInOrder(t *testing.T) {
	records := []models.Beneficiary{
		{ID: "b1", BranchID: "branch-a"},
		{ID: "b2", BranchID: "branch-b"},
		{ID: "b3", BranchID: "branch-a"},
	}
	admin := models.User{Role: models.RoleAdmin, BranchID: "branch-a"}

	visible := scope.Visible(records, admin)
	if len(visible) != 3 {
		t.Fatalf("expected 3 records, got %d", len(visible))
	}
	for i, want := range []string{"b1", "b2", "b3"} {
		if visible[i].ID != want {
			t.Errorf("position %d: expected %s, got %s", i, want, visible[i].ID)
		}
	}
}

func TestVisible_ManagerScopedToOwnBranch(t *testing.T) {
	records := []models.Beneficiary{
		{ID: "b1", BranchID: "branch-a"},
		{ID: "b2", BranchID: "branch-b"},
		{ID: "b3", BranchID: "branch-a"},
	}
	manager := models.User{Role: models.RoleManager, BranchID: "branch-a"}

	visible := scope.Visible(records, manager)
	if len(visible) != 2 {
		t.Fatalf("expected 2 records, got %d", len(visible))
	}
	for _, b := range visible {
		if b.BranchID != "branch-a" {
			t.Errorf("record %s leaked from branch %s", b.ID, b.BranchID)
		}
	}
	if visible[0].ID != "b1" || visible[1].ID != "b3" {
		t.Errorf("order not preserved: got %s, %s", visible[0].ID, visible[1].ID)
	}
}

func TestVisible_StaffScopedLikeManager(t *testing.T) {
	regions := []models.Region{
		{ID: "r1", BranchID: "branch-a"},
		{ID: "r2", BranchID: "branch-b"},
	}
	staff := models.User{Role: models.RoleStaff, BranchID: "branch-b"}

	visible := scope.Visible(regions, staff)
	if len(visible) != 1 || visible[0].ID != "r2" {
		t.Fatalf("expected only r2, got %v", visible)
	}
}

func TestVisible_EmptyInput(t *testing.T) {
	staff := models.User{Role: models.RoleStaff, BranchID: "branch-a"}
	if got := scope.Visible([]models.Sponsor{}, staff); len(got) != 0 {
		t.Fatalf("expected empty result, got %d records", len(got))
	}
}

func TestCanManageBranch(t *testing.T) {
	admin := models.User{Role: models.RoleAdmin, BranchID: "branch-a"}
	manager := models.User{Role: models.RoleManager, BranchID: "branch-a"}

	if !scope.CanManageBranch(admin, "branch-b") {
		t.Error("admin should manage any branch")
	}
	if !scope.CanManageBranch(manager, "branch-a") {
		t.Error("manager should manage own branch")
	}
	if scope.CanManageBranch(manager, "branch-b") {
		t.Error("manager must not manage another branch")
	}
}
