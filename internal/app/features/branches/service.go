// internal/app/features/branches/service.go

// Package branches manages the top-level organizational units. Only admins
// may create, edit, or delete branches.
package branches

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/takafulhq/takaful/internal/app/policy/scope"
	branchstore "github.com/takafulhq/takaful/internal/app/store/branches"
	"github.com/takafulhq/takaful/internal/app/system/auditlog"
	"github.com/takafulhq/takaful/internal/app/system/htmlsanitize"
	"github.com/takafulhq/takaful/internal/app/system/inputval"
	"github.com/takafulhq/takaful/internal/domain/models"
)

var (
	ErrNotFound  = branchstore.ErrNotFound
	ErrForbidden = errors.New("only admins can manage branches")
)

type Service struct {
	branches *branchstore.Store
	audit    *auditlog.Recorder
	log      *zap.Logger
}

func New(branches *branchstore.Store, audit *auditlog.Recorder, log *zap.Logger) *Service {
	return &Service{branches: branches, audit: audit, log: log}
}

// List returns branches visible to the user. Non-admins see only their own
// branch, which keeps branch dropdowns scoped like every other listing.
func (s *Service) List(ctx context.Context, user models.User) ([]models.Branch, error) {
	branches, err := s.branches.Load(ctx)
	if err != nil {
		return nil, err
	}
	return scope.Visible(branches, user), nil
}

type Input struct {
	Name     string
	Location string
}

func (s *Service) Create(ctx context.Context, actor models.User, in Input) (models.Branch, error) {
	if !actor.IsAdmin() {
		return models.Branch{}, ErrForbidden
	}
	in.Name = strings.TrimSpace(in.Name)
	in.Location = htmlsanitize.Strip(in.Location)
	if in.Name == "" {
		errs := inputval.Errors{}
		errs.Add("name", "branch name is required")
		return models.Branch{}, errs
	}

	branches, err := s.branches.Load(ctx)
	if err != nil {
		return models.Branch{}, err
	}
	branch := models.Branch{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Location:  in.Location,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.branches.Save(ctx, append(branches, branch)); err != nil {
		return models.Branch{}, err
	}
	if _, err := s.audit.Record(ctx, actor, models.ActionAdd, "branch", branch.ID); err != nil {
		return models.Branch{}, err
	}
	s.log.Info("branch created", zap.String("id", branch.ID), zap.String("name", branch.Name))
	return branch, nil
}

func (s *Service) Update(ctx context.Context, actor models.User, id string, in Input) (models.Branch, error) {
	if !actor.IsAdmin() {
		return models.Branch{}, ErrForbidden
	}
	in.Name = strings.TrimSpace(in.Name)
	in.Location = htmlsanitize.Strip(in.Location)
	if in.Name == "" {
		errs := inputval.Errors{}
		errs.Add("name", "branch name is required")
		return models.Branch{}, errs
	}

	branches, err := s.branches.Load(ctx)
	if err != nil {
		return models.Branch{}, err
	}
	for i, b := range branches {
		if b.ID == id {
			b.Name = in.Name
			b.Location = in.Location
			branches[i] = b
			if err := s.branches.Save(ctx, branches); err != nil {
				return models.Branch{}, err
			}
			if _, err := s.audit.Record(ctx, actor, models.ActionEdit, "branch", id); err != nil {
				return models.Branch{}, err
			}
			return b, nil
		}
	}
	return models.Branch{}, ErrNotFound
}

// Delete removes the branch. Regions, users, sponsors, and beneficiaries in
// the branch are orphaned, not deleted; the source system behaved the same
// way and reports simply stop showing the orphans to non-admins.
func (s *Service) Delete(ctx context.Context, actor models.User, id string) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	branches, err := s.branches.Load(ctx)
	if err != nil {
		return err
	}
	remaining := make([]models.Branch, 0, len(branches))
	found := false
	for _, b := range branches {
		if b.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, b)
	}
	if !found {
		return ErrNotFound
	}
	if err := s.branches.Save(ctx, remaining); err != nil {
		return err
	}
	if _, err := s.audit.Record(ctx, actor, models.ActionDelete, "branch", id); err != nil {
		return err
	}
	s.log.Info("branch deleted", zap.String("id", id))
	return nil
}
