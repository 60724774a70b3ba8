// internal/app/features/beneficiaries/tree.go
package beneficiaries

import "github.com/takafulhq/takaful/internal/domain/models"

// Node is one row of the hierarchical display: a family head with its
// resolved members, or an individual with none. Whether a node renders open
// or collapsed is caller-held display state, not part of the data.
type Node struct {
	Beneficiary models.Beneficiary
	Members     []models.Beneficiary
}

// BuildTree assembles the two-level family view. filtered is the set that
// passed the active filter; all is the unfiltered branch-scoped collection.
// Members are attached from all, not filtered: visibility follows the head,
// so a member that would itself fail the filter still appears under its
// family. Heads are emitted first, then individuals, each group in source
// collection order; members keep their insertion order under each head.
func BuildTree(filtered, all []models.Beneficiary) []Node {
	membersByFamily := make(map[string][]models.Beneficiary)
	for _, b := range all {
		if b.Type == models.TypeFamilyMember && b.FamilyID != nil {
			membersByFamily[*b.FamilyID] = append(membersByFamily[*b.FamilyID], b)
		}
	}

	var heads, individuals []Node
	for _, b := range filtered {
		switch b.Type {
		case models.TypeFamilyHead:
			heads = append(heads, Node{Beneficiary: b, Members: membersByFamily[b.ID]})
		case models.TypeIndividual:
			individuals = append(individuals, Node{Beneficiary: b})
		}
	}
	return append(heads, individuals...)
}
