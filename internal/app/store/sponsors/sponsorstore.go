// internal/app/store/sponsors/sponsorstore.go
package sponsorstore

import (
	"context"
	"errors"

	"github.com/takafulhq/takaful/internal/app/store/collection"
	"github.com/takafulhq/takaful/internal/app/store/kv"
	"github.com/takafulhq/takaful/internal/domain/models"
)

// Key is the kv key holding the sponsor collection.
const Key = "sponsors"

var ErrNotFound = errors.New("sponsor not found")

type Store struct {
	kv kv.Store
}

func New(kv kv.Store) *Store {
	return &Store{kv: kv}
}

func (s *Store) Load(ctx context.Context) ([]models.Sponsor, error) {
	sponsors, _, err := collection.Load[models.Sponsor](ctx, s.kv, Key)
	return sponsors, err
}

func (s *Store) Save(ctx context.Context, sponsors []models.Sponsor) error {
	return collection.Save(ctx, s.kv, Key, sponsors)
}

func (s *Store) ByID(ctx context.Context, id string) (models.Sponsor, error) {
	sponsors, err := s.Load(ctx)
	if err != nil {
		return models.Sponsor{}, err
	}
	for _, sp := range sponsors {
		if sp.ID == id {
			return sp, nil
		}
	}
	return models.Sponsor{}, ErrNotFound
}
