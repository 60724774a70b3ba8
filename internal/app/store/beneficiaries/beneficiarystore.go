// internal/app/store/beneficiaries/beneficiarystore.go
package beneficiarystore

import (
	"context"
	"errors"

	"github.com/takafulhq/takaful/internal/app/store/collection"
	"github.com/takafulhq/takaful/internal/app/store/kv"
	"github.com/takafulhq/takaful/internal/domain/models"
)

// Key is the kv key holding the beneficiary collection.
const Key = "beneficiaries"

var ErrNotFound = errors.New("beneficiary not found")

type Store struct {
	kv kv.Store
}

func New(kv kv.Store) *Store {
	return &Store{kv: kv}
}

func (s *Store) Load(ctx context.Context) ([]models.Beneficiary, error) {
	records, _, err := collection.Load[models.Beneficiary](ctx, s.kv, Key)
	return records, err
}

func (s *Store) Save(ctx context.Context, records []models.Beneficiary) error {
	return collection.Save(ctx, s.kv, Key, records)
}

func (s *Store) ByID(ctx context.Context, id string) (models.Beneficiary, error) {
	records, err := s.Load(ctx)
	if err != nil {
		return models.Beneficiary{}, err
	}
	for _, b := range records {
		if b.ID == id {
			return b, nil
		}
	}
	return models.Beneficiary{}, ErrNotFound
}
