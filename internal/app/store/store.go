// internal/app/store/store.go

// Package store aggregates the typed collection stores over one kv backend.
// It is constructed once at startup and injected into every service that
// needs data access; nothing else touches the kv boundary directly.
package store

import (
	"context"

	auditstore "github.com/takafulhq/takaful/internal/app/store/audit"
	beneficiarystore "github.com/takafulhq/takaful/internal/app/store/beneficiaries"
	branchstore "github.com/takafulhq/takaful/internal/app/store/branches"
	"github.com/takafulhq/takaful/internal/app/store/kv"
	regionstore "github.com/takafulhq/takaful/internal/app/store/regions"
	settingsstore "github.com/takafulhq/takaful/internal/app/store/settings"
	sponsorstore "github.com/takafulhq/takaful/internal/app/store/sponsors"
	tagstore "github.com/takafulhq/takaful/internal/app/store/tags"
	userstore "github.com/takafulhq/takaful/internal/app/store/users"
)

// Store bundles every collection store. The seven entity collections are
// independent; there is no cross-collection transaction guarantee.
type Store struct {
	Branches      *branchstore.Store
	Regions       *regionstore.Store
	Users         *userstore.Store
	Beneficiaries *beneficiarystore.Store
	Tags          *tagstore.Store
	Sponsors      *sponsorstore.Store
	Audit         *auditstore.Store
	Settings      *settingsstore.Store

	backend kv.Store
}

// New wires every typed store onto the given kv backend.
func New(backend kv.Store) *Store {
	return &Store{
		Branches:      branchstore.New(backend),
		Regions:       regionstore.New(backend),
		Users:         userstore.New(backend),
		Beneficiaries: beneficiarystore.New(backend),
		Tags:          tagstore.New(backend),
		Sponsors:      sponsorstore.New(backend),
		Audit:         auditstore.New(backend),
		Settings:      settingsstore.New(backend),
		backend:       backend,
	}
}

// ResetAll clears every key. Collections fall back to their documented seed
// defaults on the next Load.
func (s *Store) ResetAll(ctx context.Context) error {
	return s.backend.Reset(ctx)
}

// Close releases the kv backend.
func (s *Store) Close() error {
	return s.backend.Close()
}
