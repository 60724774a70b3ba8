// internal/app/features/sponsors/service.go

// Package sponsors manages donor records, branch-scoped like beneficiaries.
package sponsors

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/takafulhq/takaful/internal/app/policy/scope"
	sponsorstore "github.com/takafulhq/takaful/internal/app/store/sponsors"
	"github.com/takafulhq/takaful/internal/app/system/auditlog"
	"github.com/takafulhq/takaful/internal/app/system/htmlsanitize"
	"github.com/takafulhq/takaful/internal/app/system/inputval"
	"github.com/takafulhq/takaful/internal/domain/models"
)

var ErrNotFound = sponsorstore.ErrNotFound

type Service struct {
	sponsors *sponsorstore.Store
	audit    *auditlog.Recorder
	log      *zap.Logger
}

func New(sponsors *sponsorstore.Store, audit *auditlog.Recorder, log *zap.Logger) *Service {
	return &Service{sponsors: sponsors, audit: audit, log: log}
}

func (s *Service) List(ctx context.Context, user models.User) ([]models.Sponsor, error) {
	sponsors, err := s.sponsors.Load(ctx)
	if err != nil {
		return nil, err
	}
	return scope.Visible(sponsors, user), nil
}

type Input struct {
	Name      string
	Phone     string
	Amount    float64
	Frequency string
	Status    string
	StartDate time.Time
	Notes     string
}

func validate(in Input) (Input, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Notes = htmlsanitize.Strip(in.Notes)

	errs := inputval.Errors{}
	if in.Name == "" {
		errs.Add("name", "sponsor name is required")
	}
	if strings.TrimSpace(in.Phone) == "" {
		errs.Add("phone", "phone is required")
	}
	if in.Amount <= 0 {
		errs.Add("amount", "amount must be positive")
	}
	switch in.Frequency {
	case models.FrequencyMonthly, models.FrequencyYearly, models.FrequencyOneTime:
	default:
		errs.Add("frequency", "unknown frequency")
	}
	if in.Status != "" && in.Status != models.SponsorActive && in.Status != models.SponsorStopped {
		errs.Add("status", "unknown status")
	}
	return in, errs.OrNil()
}

// Create stores a sponsor in the acting user's branch. As with
// beneficiaries, the branch is never caller-supplied.
func (s *Service) Create(ctx context.Context, actor models.User, in Input) (models.Sponsor, error) {
	in, err := validate(in)
	if err != nil {
		return models.Sponsor{}, err
	}

	sponsors, err := s.sponsors.Load(ctx)
	if err != nil {
		return models.Sponsor{}, err
	}
	sponsor := models.Sponsor{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Phone:     in.Phone,
		BranchID:  actor.BranchID,
		Amount:    in.Amount,
		Frequency: in.Frequency,
		Status:    in.Status,
		StartDate: in.StartDate,
		Notes:     in.Notes,
		CreatedAt: time.Now().UTC(),
	}
	if sponsor.Status == "" {
		sponsor.Status = models.SponsorActive
	}
	if err := s.sponsors.Save(ctx, append(sponsors, sponsor)); err != nil {
		return models.Sponsor{}, err
	}
	if _, err := s.audit.Record(ctx, actor, models.ActionAdd, "sponsor", sponsor.ID); err != nil {
		return models.Sponsor{}, err
	}
	s.log.Info("sponsor created", zap.String("id", sponsor.ID), zap.String("branch_id", sponsor.BranchID))
	return sponsor, nil
}

func (s *Service) Update(ctx context.Context, actor models.User, id string, in Input) (models.Sponsor, error) {
	in, err := validate(in)
	if err != nil {
		return models.Sponsor{}, err
	}

	sponsors, err := s.sponsors.Load(ctx)
	if err != nil {
		return models.Sponsor{}, err
	}
	for i, sp := range sponsors {
		if sp.ID != id {
			continue
		}
		if !scope.CanManageBranch(actor, sp.BranchID) {
			return models.Sponsor{}, ErrNotFound
		}
		sp.Name = in.Name
		sp.Phone = in.Phone
		sp.Amount = in.Amount
		sp.Frequency = in.Frequency
		if in.Status != "" {
			sp.Status = in.Status
		}
		if !in.StartDate.IsZero() {
			sp.StartDate = in.StartDate
		}
		sp.Notes = in.Notes
		sponsors[i] = sp
		if err := s.sponsors.Save(ctx, sponsors); err != nil {
			return models.Sponsor{}, err
		}
		if _, err := s.audit.Record(ctx, actor, models.ActionEdit, "sponsor", id); err != nil {
			return models.Sponsor{}, err
		}
		return sp, nil
	}
	return models.Sponsor{}, ErrNotFound
}

func (s *Service) Delete(ctx context.Context, actor models.User, id string) error {
	sponsors, err := s.sponsors.Load(ctx)
	if err != nil {
		return err
	}
	remaining := make([]models.Sponsor, 0, len(sponsors))
	found := false
	for _, sp := range sponsors {
		if sp.ID == id {
			if !scope.CanManageBranch(actor, sp.BranchID) {
				return ErrNotFound
			}
			found = true
			continue
		}
		remaining = append(remaining, sp)
	}
	if !found {
		return ErrNotFound
	}
	if err := s.sponsors.Save(ctx, remaining); err != nil {
		return err
	}
	if _, err := s.audit.Record(ctx, actor, models.ActionDelete, "sponsor", id); err != nil {
		return err
	}
	s.log.Info("sponsor deleted", zap.String("id", id))
	return nil
}
