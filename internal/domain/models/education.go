// internal/domain/models/education.go
package models

// EducationLevels is the fixed ordered list of schooling stages a beneficiary
// can be recorded at, from no schooling through postgraduate study. The
// stored value is the stage key; ordering follows slice position.
var EducationLevels = []string{
	"none",
	"kindergarten_1",
	"kindergarten_2",
	"primary_1",
	"primary_2",
	"primary_3",
	"primary_4",
	"primary_5",
	"primary_6",
	"preparatory_1",
	"preparatory_2",
	"preparatory_3",
	"secondary_1",
	"secondary_2",
	"secondary_3",
	"university_1",
	"university_2",
	"university_3",
	"university_4",
	"university_5",
	"graduate",
	"postgraduate",
}

// ValidEducationLevel reports whether level is one of the fixed stages.
// The empty string is accepted; education is an optional field.
func ValidEducationLevel(level string) bool {
	if level == "" {
		return true
	}
	for _, l := range EducationLevels {
		if l == level {
			return true
		}
	}
	return false
}
