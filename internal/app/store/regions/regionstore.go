// internal/app/store/regions/regionstore.go
package regionstore

import (
	"context"
	"errors"

	"github.com/takafulhq/takaful/internal/app/store/collection"
	"github.com/takafulhq/takaful/internal/app/store/kv"
	"github.com/takafulhq/takaful/internal/domain/models"
)

// Key is the kv key holding the region collection.
const Key = "regions"

var ErrNotFound = errors.New("region not found")

type Store struct {
	kv kv.Store
}

func New(kv kv.Store) *Store {
	return &Store{kv: kv}
}

// Load returns the saved region collection. There is no seed; a fresh
// installation starts with no regions.
func (s *Store) Load(ctx context.Context) ([]models.Region, error) {
	regions, _, err := collection.Load[models.Region](ctx, s.kv, Key)
	return regions, err
}

func (s *Store) Save(ctx context.Context, regions []models.Region) error {
	return collection.Save(ctx, s.kv, Key, regions)
}

func (s *Store) ByID(ctx context.Context, id string) (models.Region, error) {
	regions, err := s.Load(ctx)
	if err != nil {
		return models.Region{}, err
	}
	for _, r := range regions {
		if r.ID == id {
			return r, nil
		}
	}
	return models.Region{}, ErrNotFound
}
