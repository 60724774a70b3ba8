// internal/app/system/auth/auth.go

// Package auth implements sign-in and the forced first-login password change.
//
// Credentials are compared in plain text against the stored user collection.
// There is no hashing, rate limiting, or lockout: the deployment model is a
// single trusted operator station, and reproducing that trust model is a
// stated requirement, not a gap.
package auth

import (
	"context"
	"errors"

	"go.uber.org/zap"

	settingsstore "github.com/takafulhq/takaful/internal/app/store/settings"
	userstore "github.com/takafulhq/takaful/internal/app/store/users"
	"github.com/takafulhq/takaful/internal/app/system/inputval"
	"github.com/takafulhq/takaful/internal/domain/models"
)

// ErrInvalidCredentials is returned for any failed sign-in. It deliberately
// does not distinguish "no such user" from "wrong password".
var ErrInvalidCredentials = errors.New("invalid username or password")

// MinPasswordLength is the floor enforced by ChangePassword.
const MinPasswordLength = 4

// Outcome is the result of a successful credential check.
type Outcome struct {
	User models.User
	// MustChangePassword is set when the account is still on its initial
	// password; the caller must complete ChangePassword before treating
	// the outcome as a session.
	MustChangePassword bool
}

// Service owns the current-session user for the process lifetime. Sessions
// never expire and there is no revocation; the session ends with the process.
type Service struct {
	users    *userstore.Store
	settings *settingsstore.Store
	log      *zap.Logger

	current *models.User
}

func New(users *userstore.Store, settings *settingsstore.Store, log *zap.Logger) *Service {
	return &Service{users: users, settings: settings, log: log}
}

// Authenticate checks username and password with an exact, case-sensitive
// match on both. First-login accounts yield MustChangePassword instead of a
// usable session.
func (s *Service) Authenticate(ctx context.Context, username, password string) (Outcome, error) {
	user, err := s.users.ByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			s.log.Warn("sign-in rejected", zap.String("username", username))
			return Outcome{}, ErrInvalidCredentials
		}
		return Outcome{}, err
	}
	if user.Password != password {
		s.log.Warn("sign-in rejected", zap.String("username", username))
		return Outcome{}, ErrInvalidCredentials
	}

	if user.IsFirstLogin {
		s.log.Info("sign-in pending password change", zap.String("username", username))
		return Outcome{User: user, MustChangePassword: true}, nil
	}

	s.startSession(ctx, user)
	return Outcome{User: user}, nil
}

// ChangePassword sets a new password, clears the first-login flag, and opens
// a session for the updated user.
func (s *Service) ChangePassword(ctx context.Context, user models.User, newPassword string) (models.User, error) {
	if len(newPassword) < MinPasswordLength {
		errs := inputval.Errors{}
		errs.Add("password", "password must be at least 4 characters")
		return models.User{}, errs
	}

	user.Password = newPassword
	user.IsFirstLogin = false
	if err := s.users.Update(ctx, user); err != nil {
		return models.User{}, err
	}

	s.log.Info("password changed", zap.String("username", user.Username))
	s.startSession(ctx, user)
	return user, nil
}

// CurrentUser returns the signed-in user, if any.
func (s *Service) CurrentUser() (models.User, bool) {
	if s.current == nil {
		return models.User{}, false
	}
	return *s.current, true
}

// SignOut drops the current session. Stored state is untouched.
func (s *Service) SignOut() {
	s.current = nil
}

func (s *Service) startSession(ctx context.Context, user models.User) {
	u := user
	s.current = &u
	if err := s.settings.SaveLastLogin(ctx, user.Username); err != nil {
		// The cache is a convenience; losing it does not fail the login.
		s.log.Warn("could not cache last login", zap.Error(err))
	}
	s.log.Info("signed in",
		zap.String("username", user.Username),
		zap.String("role", user.Role),
	)
}
