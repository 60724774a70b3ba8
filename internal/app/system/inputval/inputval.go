// internal/app/system/inputval/inputval.go

// Package inputval carries field-level validation results. A failed create or
// update surfaces one Errors value mapping field name to message, and leaves
// stored state untouched.
package inputval

import (
	"sort"
	"strings"
)

// Errors maps field name to a human-readable message. A nil or empty map
// means the input passed.
type Errors map[string]string

// Error joins the field messages in field-name order.
func (e Errors) Error() string {
	if len(e) == 0 {
		return ""
	}
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e[f])
	}
	return strings.Join(parts, "; ")
}

// Add records a message for field, keeping the first message per field.
func (e Errors) Add(field, message string) {
	if _, exists := e[field]; !exists {
		e[field] = message
	}
}

// OrNil returns e as an error, or nil when no field failed. Returning the
// map directly would yield a non-nil error interface around an empty map.
func (e Errors) OrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// AsErrors unwraps err into Errors when it is a validation failure.
func AsErrors(err error) (Errors, bool) {
	ve, ok := err.(Errors)
	return ve, ok
}
