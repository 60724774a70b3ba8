package auditlog_test

import (
	"testing"

	"github.com/takafulhq/takaful/internal/app/system/auditlog"
	"github.com/takafulhq/takaful/internal/domain/models"
	"github.com/takafulhq/takaful/internal/testutil"
)

var actor = models.User{ID: "user-1", Name: "Amira", Role: models.RoleAdmin}

func TestRecord_NewestFirst(t *testing.T) {
	st := testutil.SetupStore(t)
	rec := auditlog.New(st.Audit, testutil.Logger(), auditlog.Config{Destination: "db"})
	ctx, cancel := testutil.TestContext()
	defer cancel()

	first, err := rec.Record(ctx, actor, models.ActionAdd, "branch", "b-1")
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	second, err := rec.Record(ctx, actor, models.ActionDelete, "branch", "b-1")
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if first.ID == second.ID {
		t.Error("entries must get distinct ids")
	}
	if first.UserName != "Amira" {
		t.Errorf("user name must be denormalized into the entry, got %q", first.UserName)
	}

	entries, err := rec.Entries(ctx)
	if err != nil {
		t.Fatalf("entries: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != second.ID || entries[1].ID != first.ID {
		t.Error("entries must come back newest first")
	}
}

func TestRecord_OffDestinationStoresNothing(t *testing.T) {
	st := testutil.SetupStore(t)
	rec := auditlog.New(st.Audit, testutil.Logger(), auditlog.Config{Destination: "off"})
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := rec.Record(ctx, actor, models.ActionAdd, "branch", "b-1"); err != nil {
		t.Fatalf("record: %v", err)
	}
	entries, err := rec.Entries(ctx)
	if err != nil {
		t.Fatalf("entries: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("off destination must store nothing, got %d entries", len(entries))
	}
}

func TestRecord_NilRecorderIsNoop(t *testing.T) {
	var rec *auditlog.Recorder
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := rec.Record(ctx, actor, models.ActionAdd, "branch", "b-1"); err != nil {
		t.Fatalf("nil recorder must not error: %v", err)
	}
	entries, err := rec.Entries(ctx)
	if err != nil || entries != nil {
		t.Fatalf("nil recorder must return nothing, got %v, %v", entries, err)
	}
}
