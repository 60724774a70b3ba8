// internal/testutil/fixtures.go

// Package testutil provides shared helpers for service and store tests.
// Every test runs against a fresh in-memory kv backend; no test touches a
// file or a network.
package testutil

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/takafulhq/takaful/internal/app/store"
	"github.com/takafulhq/takaful/internal/app/store/kv"
	"github.com/takafulhq/takaful/internal/domain/models"
)

// TestContext returns a context with a generous timeout for a single test.
func TestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

// SetupStore returns a store aggregate over a fresh in-memory backend.
func SetupStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(kv.NewMemory())
}

// Logger returns a no-op zap logger for constructing services under test.
func Logger() *zap.Logger {
	return zap.NewNop()
}

// Fixtures creates test records directly through the typed stores,
// bypassing service validation.
type Fixtures struct {
	st *store.Store
	t  *testing.T
}

func NewFixtures(t *testing.T, st *store.Store) *Fixtures {
	t.Helper()
	return &Fixtures{st: st, t: t}
}

// CreateBranch stores a branch with the given id and name.
func (f *Fixtures) CreateBranch(ctx context.Context, id, name string) models.Branch {
	f.t.Helper()
	branches, err := f.st.Branches.Load(ctx)
	if err != nil {
		f.t.Fatalf("load branches: %v", err)
	}
	branch := models.Branch{ID: id, Name: name, CreatedAt: time.Now().UTC()}
	if err := f.st.Branches.Save(ctx, append(branches, branch)); err != nil {
		f.t.Fatalf("save branches: %v", err)
	}
	return branch
}

// CreateRegion stores a region under the given branch.
func (f *Fixtures) CreateRegion(ctx context.Context, id, name, branchID string) models.Region {
	f.t.Helper()
	regions, err := f.st.Regions.Load(ctx)
	if err != nil {
		f.t.Fatalf("load regions: %v", err)
	}
	region := models.Region{ID: id, Name: name, BranchID: branchID, CreatedAt: time.Now().UTC()}
	if err := f.st.Regions.Save(ctx, append(regions, region)); err != nil {
		f.t.Fatalf("save regions: %v", err)
	}
	return region
}

// CreateUser stores a staff account with a ready (non-first-login) password.
func (f *Fixtures) CreateUser(ctx context.Context, username, role, branchID string) models.User {
	f.t.Helper()
	users, err := f.st.Users.Load(ctx)
	if err != nil {
		f.t.Fatalf("load users: %v", err)
	}
	user := models.User{
		ID:        "user-" + username,
		Name:      username,
		Username:  username,
		Password:  "secret",
		Role:      role,
		BranchID:  branchID,
		CreatedAt: time.Now().UTC(),
	}
	if err := f.st.Users.Save(ctx, append(users, user)); err != nil {
		f.t.Fatalf("save users: %v", err)
	}
	return user
}

// CreateBeneficiary stores a beneficiary record exactly as given.
func (f *Fixtures) CreateBeneficiary(ctx context.Context, b models.Beneficiary) models.Beneficiary {
	f.t.Helper()
	records, err := f.st.Beneficiaries.Load(ctx)
	if err != nil {
		f.t.Fatalf("load beneficiaries: %v", err)
	}
	if b.Status == "" {
		b.Status = models.StatusActive
	}
	if b.SponsorshipStatus == "" {
		b.SponsorshipStatus = models.NotSponsored
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}
	if err := f.st.Beneficiaries.Save(ctx, append(records, b)); err != nil {
		f.t.Fatalf("save beneficiaries: %v", err)
	}
	return b
}

// StrPtr returns a pointer to s, for optional reference fields.
func StrPtr(s string) *string { return &s }
