// internal/domain/models/labels.go
package models

// Display labels for stored enum values. Comparison and storage always use
// the stable keys; only rendering goes through these maps, so swapping the
// UI language never touches persisted data.

var roleLabels = map[string]string{
	RoleAdmin:   "Admin",
	RoleManager: "Manager",
	RoleStaff:   "Staff",
}

var typeLabels = map[string]string{
	TypeIndividual:   "Individual",
	TypeFamilyHead:   "Family Head",
	TypeFamilyMember: "Family Member",
}

var statusLabels = map[string]string{
	StatusActive:    "Active",
	StatusSuspended: "Suspended",
}

var sponsorshipLabels = map[string]string{
	Sponsored:    "Sponsored",
	NotSponsored: "Not Sponsored",
}

var frequencyLabels = map[string]string{
	FrequencyMonthly: "Monthly",
	FrequencyYearly:  "Yearly",
	FrequencyOneTime: "One-Time",
}

// Age bucket keys as produced by the reporting aggregator.
var ageBucketLabels = map[string]string{
	"child":   "Child",
	"adult":   "Adult",
	"elderly": "Elderly",
}

// Label returns the display label for any stored enum key, falling back to
// the key itself for values it does not know.
func Label(key string) string {
	for _, m := range []map[string]string{
		roleLabels, typeLabels, statusLabels, sponsorshipLabels,
		frequencyLabels, ageBucketLabels,
	} {
		if label, ok := m[key]; ok {
			return label
		}
	}
	return key
}
