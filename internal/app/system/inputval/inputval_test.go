package inputval_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/takafulhq/takaful/internal/app/system/inputval"
)

func TestErrors_ErrorJoinsInFieldOrder(t *testing.T) {
	errs := inputval.Errors{}
	errs.Add("name", "name is required")
	errs.Add("birth_date", "birth date is required")

	want := "birth_date: birth date is required; name: name is required"
	if got := errs.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrors_AddKeepsFirstMessage(t *testing.T) {
	errs := inputval.Errors{}
	errs.Add("national_id", "national id is required")
	errs.Add("national_id", "national id must be exactly 14 digits")

	if got := errs["national_id"]; got != "national id is required" {
		t.Errorf("expected first message kept, got %q", got)
	}
}

func TestErrors_OrNil(t *testing.T) {
	empty := inputval.Errors{}
	if err := empty.OrNil(); err != nil {
		t.Errorf("empty map must yield nil error, got %v", err)
	}

	errs := inputval.Errors{}
	errs.Add("name", "name is required")
	err := errs.OrNil()
	if err == nil {
		t.Fatal("non-empty map must yield an error")
	}

	// The value survives a trip through the error interface.
	wrapped := fmt.Errorf("create beneficiary: %w", err)
	var got inputval.Errors
	if !errors.As(wrapped, &got) {
		t.Fatal("expected errors.As to recover the field map")
	}
	if got["name"] != "name is required" {
		t.Errorf("unexpected field map: %v", got)
	}
}

func TestAsErrors(t *testing.T) {
	errs := inputval.Errors{}
	errs.Add("region_id", "region is required")

	if got, ok := inputval.AsErrors(errs.OrNil()); !ok || got["region_id"] == "" {
		t.Errorf("AsErrors on a validation failure = %v, %v", got, ok)
	}
	if _, ok := inputval.AsErrors(errors.New("disk full")); ok {
		t.Error("AsErrors must not match unrelated errors")
	}
}
