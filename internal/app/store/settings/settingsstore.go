// internal/app/store/settings/settingsstore.go

// Package settingsstore holds the scalar preference keys that sit beside the
// entity collections: the UI theme and the last-logged-in-user convenience
// cache.
package settingsstore

import (
	"context"

	"github.com/takafulhq/takaful/internal/app/store/kv"
)

// Scalar keys.
const (
	ThemeKey     = "theme"
	LastLoginKey = "last_login_user"
)

// DefaultTheme is used when no theme has been saved.
const DefaultTheme = "light"

type Store struct {
	kv kv.Store
}

func New(kv kv.Store) *Store {
	return &Store{kv: kv}
}

// Theme returns the saved theme preference, or DefaultTheme.
func (s *Store) Theme(ctx context.Context) (string, error) {
	raw, ok, err := s.kv.Get(ctx, ThemeKey)
	if err != nil {
		return "", err
	}
	if !ok {
		return DefaultTheme, nil
	}
	return string(raw), nil
}

func (s *Store) SaveTheme(ctx context.Context, theme string) error {
	return s.kv.Set(ctx, ThemeKey, []byte(theme))
}

// LastLogin returns the username that last authenticated successfully, or ""
// when no one has logged in yet.
func (s *Store) LastLogin(ctx context.Context) (string, error) {
	raw, _, err := s.kv.Get(ctx, LastLoginKey)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func (s *Store) SaveLastLogin(ctx context.Context, username string) error {
	return s.kv.Set(ctx, LastLoginKey, []byte(username))
}
