// internal/app/policy/scope/scope.go

// Package scope implements the branch visibility rule applied to every
// listing, report, and dropdown in the system.
//
// Authorization rules:
//   - Admins see every record in every branch
//   - Managers and staff see only records in their own branch
//
// Every read path must pass through Visible before filtering or display; a
// missing scope check is the most safety-critical bug class in this system.
package scope

import "github.com/takafulhq/takaful/internal/domain/models"

// BranchScoped is any record that belongs to a branch.
type BranchScoped interface {
	BranchRef() string
}

// Visible returns the subset of records the user may see. Admins get the
// input back unchanged; everyone else gets an order-preserving filter on
// their own branch. The function is pure: no side effects, deterministic,
// input order retained.
func Visible[T BranchScoped](records []T, user models.User) []T {
	if user.IsAdmin() {
		return records
	}
	visible := make([]T, 0, len(records))
	for _, r := range records {
		if r.BranchRef() == user.BranchID {
			visible = append(visible, r)
		}
	}
	return visible
}

// CanManageBranch reports whether the user may mutate records in the given
// branch: admins anywhere, managers only in their own branch, staff in their
// own branch for records they are allowed to edit at all.
func CanManageBranch(user models.User, branchID string) bool {
	if user.IsAdmin() {
		return true
	}
	return user.BranchID == branchID
}
