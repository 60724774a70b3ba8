// internal/app/features/regions/service.go

// Package regions manages the geographic subdivisions of a branch. Admins
// may create regions anywhere; managers only inside their own branch.
package regions

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/takafulhq/takaful/internal/app/policy/scope"
	branchstore "github.com/takafulhq/takaful/internal/app/store/branches"
	regionstore "github.com/takafulhq/takaful/internal/app/store/regions"
	"github.com/takafulhq/takaful/internal/app/system/auditlog"
	"github.com/takafulhq/takaful/internal/app/system/inputval"
	"github.com/takafulhq/takaful/internal/domain/models"
)

var (
	ErrNotFound  = regionstore.ErrNotFound
	ErrForbidden = errors.New("not allowed to manage regions in this branch")
)

type Service struct {
	regions  *regionstore.Store
	branches *branchstore.Store
	audit    *auditlog.Recorder
	log      *zap.Logger
}

func New(regions *regionstore.Store, branches *branchstore.Store, audit *auditlog.Recorder, log *zap.Logger) *Service {
	return &Service{regions: regions, branches: branches, audit: audit, log: log}
}

// List returns regions visible to the user, scoped by the region's branch.
func (s *Service) List(ctx context.Context, user models.User) ([]models.Region, error) {
	regions, err := s.regions.Load(ctx)
	if err != nil {
		return nil, err
	}
	return scope.Visible(regions, user), nil
}

type Input struct {
	Name     string
	BranchID string
}

func (s *Service) Create(ctx context.Context, actor models.User, in Input) (models.Region, error) {
	in.Name = strings.TrimSpace(in.Name)
	errs := inputval.Errors{}
	if in.Name == "" {
		errs.Add("name", "region name is required")
	}
	if in.BranchID == "" {
		errs.Add("branch_id", "branch is required")
	}
	if err := errs.OrNil(); err != nil {
		return models.Region{}, err
	}

	if actor.Role == models.RoleStaff || !scope.CanManageBranch(actor, in.BranchID) {
		return models.Region{}, ErrForbidden
	}
	if _, err := s.branches.ByID(ctx, in.BranchID); err != nil {
		if errors.Is(err, branchstore.ErrNotFound) {
			errs := inputval.Errors{}
			errs.Add("branch_id", "branch no longer exists")
			return models.Region{}, errs
		}
		return models.Region{}, err
	}

	regions, err := s.regions.Load(ctx)
	if err != nil {
		return models.Region{}, err
	}
	region := models.Region{
		ID:        uuid.NewString(),
		Name:      in.Name,
		BranchID:  in.BranchID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.regions.Save(ctx, append(regions, region)); err != nil {
		return models.Region{}, err
	}
	if _, err := s.audit.Record(ctx, actor, models.ActionAdd, "region", region.ID); err != nil {
		return models.Region{}, err
	}
	s.log.Info("region created",
		zap.String("id", region.ID),
		zap.String("branch_id", region.BranchID),
	)
	return region, nil
}

func (s *Service) Update(ctx context.Context, actor models.User, id string, name string) (models.Region, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		errs := inputval.Errors{}
		errs.Add("name", "region name is required")
		return models.Region{}, errs
	}

	regions, err := s.regions.Load(ctx)
	if err != nil {
		return models.Region{}, err
	}
	for i, r := range regions {
		if r.ID != id {
			continue
		}
		if actor.Role == models.RoleStaff || !scope.CanManageBranch(actor, r.BranchID) {
			return models.Region{}, ErrForbidden
		}
		r.Name = name
		regions[i] = r
		if err := s.regions.Save(ctx, regions); err != nil {
			return models.Region{}, err
		}
		if _, err := s.audit.Record(ctx, actor, models.ActionEdit, "region", id); err != nil {
			return models.Region{}, err
		}
		return r, nil
	}
	return models.Region{}, ErrNotFound
}

func (s *Service) Delete(ctx context.Context, actor models.User, id string) error {
	regions, err := s.regions.Load(ctx)
	if err != nil {
		return err
	}
	remaining := make([]models.Region, 0, len(regions))
	found := false
	for _, r := range regions {
		if r.ID == id {
			if actor.Role == models.RoleStaff || !scope.CanManageBranch(actor, r.BranchID) {
				return ErrForbidden
			}
			found = true
			continue
		}
		remaining = append(remaining, r)
	}
	if !found {
		return ErrNotFound
	}
	if err := s.regions.Save(ctx, remaining); err != nil {
		return err
	}
	if _, err := s.audit.Record(ctx, actor, models.ActionDelete, "region", id); err != nil {
		return err
	}
	s.log.Info("region deleted", zap.String("id", id))
	return nil
}
