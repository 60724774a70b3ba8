// internal/app/store/users/userstore.go
package userstore

import (
	"context"
	"errors"
	"time"

	"github.com/takafulhq/takaful/internal/app/store/branches"
	"github.com/takafulhq/takaful/internal/app/store/collection"
	"github.com/takafulhq/takaful/internal/app/store/kv"
	"github.com/takafulhq/takaful/internal/domain/models"
)

// Key is the kv key holding the staff account collection.
const Key = "users"

var (
	ErrNotFound          = errors.New("user not found")
	ErrDuplicateUsername = errors.New("a user with this username already exists")
)

type Store struct {
	kv kv.Store
}

func New(kv kv.Store) *Store {
	return &Store{kv: kv}
}

// Seed returns the default account collection: one admin in the seed branch,
// carrying the default password and the forced password-change flag.
func Seed() []models.User {
	return []models.User{{
		ID:           "user-admin",
		Name:         "Administrator",
		Username:     "admin",
		Password:     models.DefaultPassword,
		Role:         models.RoleAdmin,
		BranchID:     branchstore.SeedBranchID,
		IsFirstLogin: true,
		CreatedAt:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}}
}

func (s *Store) Load(ctx context.Context) ([]models.User, error) {
	users, found, err := collection.Load[models.User](ctx, s.kv, Key)
	if err != nil {
		return nil, err
	}
	if !found {
		return Seed(), nil
	}
	return users, nil
}

func (s *Store) Save(ctx context.Context, users []models.User) error {
	return collection.Save(ctx, s.kv, Key, users)
}

func (s *Store) ByID(ctx context.Context, id string) (models.User, error) {
	users, err := s.Load(ctx)
	if err != nil {
		return models.User{}, err
	}
	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

// ByUsername returns the account with the exact (case-sensitive) username.
func (s *Store) ByUsername(ctx context.Context, username string) (models.User, error) {
	users, err := s.Load(ctx)
	if err != nil {
		return models.User{}, err
	}
	for _, u := range users {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

// Update replaces the stored user with the same id.
func (s *Store) Update(ctx context.Context, user models.User) error {
	users, err := s.Load(ctx)
	if err != nil {
		return err
	}
	for i, u := range users {
		if u.ID == user.ID {
			users[i] = user
			return s.Save(ctx, users)
		}
	}
	return ErrNotFound
}
