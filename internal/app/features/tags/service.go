// internal/app/features/tags/service.go

// Package tags manages the global category and health condition lists.
// Tags are not branch-scoped; admins and managers may edit them.
package tags

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	tagstore "github.com/takafulhq/takaful/internal/app/store/tags"
	"github.com/takafulhq/takaful/internal/app/system/auditlog"
	"github.com/takafulhq/takaful/internal/app/system/inputval"
	"github.com/takafulhq/takaful/internal/domain/models"
)

var (
	ErrNotFound  = tagstore.ErrNotFound
	ErrForbidden = errors.New("staff accounts cannot manage tag lists")
)

type Service struct {
	tags  *tagstore.Store
	audit *auditlog.Recorder
	log   *zap.Logger
}

func New(tags *tagstore.Store, audit *auditlog.Recorder, log *zap.Logger) *Service {
	return &Service{tags: tags, audit: audit, log: log}
}

func (s *Service) Categories(ctx context.Context) ([]models.Category, error) {
	return s.tags.LoadCategories(ctx)
}

func (s *Service) HealthConditions(ctx context.Context) ([]models.HealthCondition, error) {
	return s.tags.LoadHealthConditions(ctx)
}

func canManage(actor models.User) bool {
	return actor.Role == models.RoleAdmin || actor.Role == models.RoleManager
}

func validName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		errs := inputval.Errors{}
		errs.Add("name", "name is required")
		return "", errs
	}
	return name, nil
}

func (s *Service) CreateCategory(ctx context.Context, actor models.User, name string) (models.Category, error) {
	if !canManage(actor) {
		return models.Category{}, ErrForbidden
	}
	name, err := validName(name)
	if err != nil {
		return models.Category{}, err
	}
	cats, err := s.tags.LoadCategories(ctx)
	if err != nil {
		return models.Category{}, err
	}
	cat := models.Category{ID: uuid.NewString(), Name: name, CreatedAt: time.Now().UTC()}
	if err := s.tags.SaveCategories(ctx, append(cats, cat)); err != nil {
		return models.Category{}, err
	}
	if _, err := s.audit.Record(ctx, actor, models.ActionAdd, "category", cat.ID); err != nil {
		return models.Category{}, err
	}
	return cat, nil
}

// DeleteCategory removes the tag from the list. Beneficiaries keep the stale
// id in their CategoryIDs; lookups simply stop resolving it, matching the
// source behavior.
func (s *Service) DeleteCategory(ctx context.Context, actor models.User, id string) error {
	if !canManage(actor) {
		return ErrForbidden
	}
	cats, err := s.tags.LoadCategories(ctx)
	if err != nil {
		return err
	}
	remaining := make([]models.Category, 0, len(cats))
	found := false
	for _, c := range cats {
		if c.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, c)
	}
	if !found {
		return ErrNotFound
	}
	if err := s.tags.SaveCategories(ctx, remaining); err != nil {
		return err
	}
	if _, err := s.audit.Record(ctx, actor, models.ActionDelete, "category", id); err != nil {
		return err
	}
	return nil
}

func (s *Service) CreateHealthCondition(ctx context.Context, actor models.User, name string) (models.HealthCondition, error) {
	if !canManage(actor) {
		return models.HealthCondition{}, ErrForbidden
	}
	name, err := validName(name)
	if err != nil {
		return models.HealthCondition{}, err
	}
	conds, err := s.tags.LoadHealthConditions(ctx)
	if err != nil {
		return models.HealthCondition{}, err
	}
	cond := models.HealthCondition{ID: uuid.NewString(), Name: name, CreatedAt: time.Now().UTC()}
	if err := s.tags.SaveHealthConditions(ctx, append(conds, cond)); err != nil {
		return models.HealthCondition{}, err
	}
	if _, err := s.audit.Record(ctx, actor, models.ActionAdd, "health_condition", cond.ID); err != nil {
		return models.HealthCondition{}, err
	}
	return cond, nil
}

func (s *Service) DeleteHealthCondition(ctx context.Context, actor models.User, id string) error {
	if !canManage(actor) {
		return ErrForbidden
	}
	conds, err := s.tags.LoadHealthConditions(ctx)
	if err != nil {
		return err
	}
	remaining := make([]models.HealthCondition, 0, len(conds))
	found := false
	for _, c := range conds {
		if c.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, c)
	}
	if !found {
		return ErrNotFound
	}
	if err := s.tags.SaveHealthConditions(ctx, remaining); err != nil {
		return err
	}
	if _, err := s.audit.Record(ctx, actor, models.ActionDelete, "health_condition", id); err != nil {
		return err
	}
	return nil
}
