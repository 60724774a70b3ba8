// internal/app/store/tags/tagstore.go

// Package tagstore holds the two global tag collections: beneficiary
// categories and health conditions. They share a shape but are independent
// lists under independent keys.
package tagstore

import (
	"context"
	"errors"
	"time"

	"github.com/takafulhq/takaful/internal/app/store/collection"
	"github.com/takafulhq/takaful/internal/app/store/kv"
	"github.com/takafulhq/takaful/internal/domain/models"
)

// Collection keys.
const (
	CategoriesKey       = "categories"
	HealthConditionsKey = "health_conditions"
)

var ErrNotFound = errors.New("tag not found")

type Store struct {
	kv kv.Store
}

func New(kv kv.Store) *Store {
	return &Store{kv: kv}
}

var seedTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// SeedCategories is the default category list on first run.
func SeedCategories() []models.Category {
	return []models.Category{
		{ID: "cat-poor", Name: "Poor", CreatedAt: seedTime},
		{ID: "cat-orphan", Name: "Orphan", CreatedAt: seedTime},
		{ID: "cat-widow", Name: "Widow", CreatedAt: seedTime},
	}
}

// SeedHealthConditions is the default health condition list on first run.
func SeedHealthConditions() []models.HealthCondition {
	return []models.HealthCondition{
		{ID: "hc-diabetes", Name: "Diabetes", CreatedAt: seedTime},
		{ID: "hc-hypertension", Name: "Hypertension", CreatedAt: seedTime},
		{ID: "hc-disability", Name: "Disability", CreatedAt: seedTime},
	}
}

func (s *Store) LoadCategories(ctx context.Context) ([]models.Category, error) {
	cats, found, err := collection.Load[models.Category](ctx, s.kv, CategoriesKey)
	if err != nil {
		return nil, err
	}
	if !found {
		return SeedCategories(), nil
	}
	return cats, nil
}

func (s *Store) SaveCategories(ctx context.Context, cats []models.Category) error {
	return collection.Save(ctx, s.kv, CategoriesKey, cats)
}

func (s *Store) LoadHealthConditions(ctx context.Context) ([]models.HealthCondition, error) {
	conds, found, err := collection.Load[models.HealthCondition](ctx, s.kv, HealthConditionsKey)
	if err != nil {
		return nil, err
	}
	if !found {
		return SeedHealthConditions(), nil
	}
	return conds, nil
}

func (s *Store) SaveHealthConditions(ctx context.Context, conds []models.HealthCondition) error {
	return collection.Save(ctx, s.kv, HealthConditionsKey, conds)
}

// CategoryByID returns the category with the given id.
func (s *Store) CategoryByID(ctx context.Context, id string) (models.Category, error) {
	cats, err := s.LoadCategories(ctx)
	if err != nil {
		return models.Category{}, err
	}
	for _, c := range cats {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Category{}, ErrNotFound
}
