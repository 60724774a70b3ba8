// internal/app/store/branches/branchstore.go
package branchstore

import (
	"context"
	"errors"
	"time"

	"github.com/takafulhq/takaful/internal/app/store/collection"
	"github.com/takafulhq/takaful/internal/app/store/kv"
	"github.com/takafulhq/takaful/internal/domain/models"
)

// Key is the kv key holding the branch collection.
const Key = "branches"

var ErrNotFound = errors.New("branch not found")

// SeedBranchID is the id of the branch created on first run. Fixed so the
// seed admin account can reference it.
const SeedBranchID = "branch-main"

type Store struct {
	kv kv.Store
}

func New(kv kv.Store) *Store {
	return &Store{kv: kv}
}

// Seed returns the default branch collection used when none has been saved.
func Seed() []models.Branch {
	return []models.Branch{{
		ID:        SeedBranchID,
		Name:      "Main Branch",
		Location:  "Head Office",
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}}
}

// Load returns the saved branch collection, or the seed default if none
// exists yet.
func (s *Store) Load(ctx context.Context) ([]models.Branch, error) {
	branches, found, err := collection.Load[models.Branch](ctx, s.kv, Key)
	if err != nil {
		return nil, err
	}
	if !found {
		return Seed(), nil
	}
	return branches, nil
}

// Save overwrites the branch collection.
func (s *Store) Save(ctx context.Context, branches []models.Branch) error {
	return collection.Save(ctx, s.kv, Key, branches)
}

// ByID returns the branch with the given id.
func (s *Store) ByID(ctx context.Context, id string) (models.Branch, error) {
	branches, err := s.Load(ctx)
	if err != nil {
		return models.Branch{}, err
	}
	for _, b := range branches {
		if b.ID == id {
			return b, nil
		}
	}
	return models.Branch{}, ErrNotFound
}
