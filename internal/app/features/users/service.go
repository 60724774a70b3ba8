// internal/app/features/users/service.go

// Package users manages staff accounts. New accounts always start on the
// default password with the forced password-change flag set.
package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/takafulhq/takaful/internal/app/policy/scope"
	branchstore "github.com/takafulhq/takaful/internal/app/store/branches"
	userstore "github.com/takafulhq/takaful/internal/app/store/users"
	"github.com/takafulhq/takaful/internal/app/system/auditlog"
	"github.com/takafulhq/takaful/internal/app/system/inputval"
	"github.com/takafulhq/takaful/internal/domain/models"
)

var (
	ErrNotFound  = userstore.ErrNotFound
	ErrForbidden = errors.New("not allowed to manage accounts in this branch")
)

type Service struct {
	users    *userstore.Store
	branches *branchstore.Store
	audit    *auditlog.Recorder
	log      *zap.Logger
}

func New(users *userstore.Store, branches *branchstore.Store, audit *auditlog.Recorder, log *zap.Logger) *Service {
	return &Service{users: users, branches: branches, audit: audit, log: log}
}

// List returns accounts visible to the user, branch-scoped like everything
// else. Password fields are blanked: only the auth service reads passwords.
func (s *Service) List(ctx context.Context, user models.User) ([]models.User, error) {
	accounts, err := s.users.Load(ctx)
	if err != nil {
		return nil, err
	}
	visible := scope.Visible(accounts, user)
	out := make([]models.User, len(visible))
	for i, u := range visible {
		u.Password = ""
		out[i] = u
	}
	return out, nil
}

type Input struct {
	Name     string
	Username string
	Role     string
	BranchID string
}

func validate(in Input) (Input, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Username = strings.TrimSpace(in.Username)

	errs := inputval.Errors{}
	if in.Name == "" {
		errs.Add("name", "name is required")
	}
	if in.Username == "" {
		errs.Add("username", "username is required")
	}
	switch in.Role {
	case models.RoleAdmin, models.RoleManager, models.RoleStaff:
	default:
		errs.Add("role", "unknown role")
	}
	if in.BranchID == "" {
		errs.Add("branch_id", "branch is required")
	}
	return in, errs.OrNil()
}

// Create adds a staff account with the default password and the first-login
// flag set. Admins create accounts anywhere; managers only staff accounts in
// their own branch.
func (s *Service) Create(ctx context.Context, actor models.User, in Input) (models.User, error) {
	in, err := validate(in)
	if err != nil {
		return models.User{}, err
	}
	if !actor.IsAdmin() {
		if actor.Role != models.RoleManager || in.BranchID != actor.BranchID || in.Role != models.RoleStaff {
			return models.User{}, ErrForbidden
		}
	}
	if _, err := s.branches.ByID(ctx, in.BranchID); err != nil {
		if errors.Is(err, branchstore.ErrNotFound) {
			errs := inputval.Errors{}
			errs.Add("branch_id", "branch no longer exists")
			return models.User{}, errs
		}
		return models.User{}, err
	}

	accounts, err := s.users.Load(ctx)
	if err != nil {
		return models.User{}, err
	}
	for _, u := range accounts {
		if u.Username == in.Username {
			return models.User{}, userstore.ErrDuplicateUsername
		}
	}

	account := models.User{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Username:     in.Username,
		Password:     models.DefaultPassword,
		Role:         in.Role,
		BranchID:     in.BranchID,
		IsFirstLogin: true,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Save(ctx, append(accounts, account)); err != nil {
		return models.User{}, err
	}
	if _, err := s.audit.Record(ctx, actor, models.ActionAdd, "user", account.ID); err != nil {
		return models.User{}, err
	}
	s.log.Info("account created",
		zap.String("id", account.ID),
		zap.String("role", account.Role),
		zap.String("branch_id", account.BranchID),
	)
	account.Password = ""
	return account, nil
}

// Delete removes an account. Admin only; the audit trail keeps the deleted
// account's name on its historical entries.
func (s *Service) Delete(ctx context.Context, actor models.User, id string) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	accounts, err := s.users.Load(ctx)
	if err != nil {
		return err
	}
	remaining := make([]models.User, 0, len(accounts))
	found := false
	for _, u := range accounts {
		if u.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, u)
	}
	if !found {
		return ErrNotFound
	}
	if err := s.users.Save(ctx, remaining); err != nil {
		return err
	}
	if _, err := s.audit.Record(ctx, actor, models.ActionDelete, "user", id); err != nil {
		return err
	}
	s.log.Info("account deleted", zap.String("id", id))
	return nil
}
