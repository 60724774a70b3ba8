// internal/app/features/beneficiaries/service.go

// Package beneficiaries implements the family hierarchy engine: compound
// filtering, two-level tree assembly, and the beneficiary write paths with
// their linkage invariants.
package beneficiaries

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/takafulhq/takaful/internal/app/policy/scope"
	beneficiarystore "github.com/takafulhq/takaful/internal/app/store/beneficiaries"
	regionstore "github.com/takafulhq/takaful/internal/app/store/regions"
	"github.com/takafulhq/takaful/internal/app/system/auditlog"
	"github.com/takafulhq/takaful/internal/app/system/htmlsanitize"
	"github.com/takafulhq/takaful/internal/app/system/inputval"
	"github.com/takafulhq/takaful/internal/domain/models"
)

// ErrNotFound is returned when the requested beneficiary no longer exists,
// e.g. a stale reference after an edit elsewhere. Callers treat it as
// "record no longer available", not a fatal error.
var ErrNotFound = beneficiarystore.ErrNotFound

// Service is the beneficiary hierarchy engine. All reads are scoped to the
// acting user's branch before any filter runs.
type Service struct {
	records *beneficiarystore.Store
	regions *regionstore.Store
	audit   *auditlog.Recorder
	log     *zap.Logger
}

func New(records *beneficiarystore.Store, regions *regionstore.Store, audit *auditlog.Recorder, log *zap.Logger) *Service {
	return &Service{records: records, regions: regions, audit: audit, log: log}
}

// Input carries the caller-editable beneficiary fields. The id, branch, and
// record type are never taken from input: ids are generated, the branch is
// the acting user's, and the type is derived from the linkage state (an
// explicit Type is honored only to mark a new record as a family head).
type Input struct {
	Name              string
	NationalID        string
	Phone             string
	Address           string
	BirthDate         time.Time
	Gender            string
	RegionID          string
	Status            string
	SponsorshipStatus string
	Type              string
	CategoryIDs       []string
	FamilyID          *string
	EducationLevel    string
	SchoolName        string
}

// List returns the user's visible beneficiaries passing the filter, in
// stored order.
func (s *Service) List(ctx context.Context, user models.User, f Filter) ([]models.Beneficiary, error) {
	visible, err := s.visible(ctx, user)
	if err != nil {
		return nil, err
	}
	return f.Apply(visible), nil
}

// Tree returns the hierarchical view of the filtered set. Family members are
// attached from the unfiltered branch-scoped collection, so a family stays
// whole even when only its head matches the filter.
func (s *Service) Tree(ctx context.Context, user models.User, f Filter) ([]Node, error) {
	visible, err := s.visible(ctx, user)
	if err != nil {
		return nil, err
	}
	return BuildTree(f.Apply(visible), visible), nil
}

// Create validates and stores a new beneficiary in the acting user's branch.
func (s *Service) Create(ctx context.Context, actor models.User, in Input) (models.Beneficiary, error) {
	in = sanitizeInput(in)
	if err := validate(in); err != nil {
		return models.Beneficiary{}, err
	}

	records, err := s.records.Load(ctx)
	if err != nil {
		return models.Beneficiary{}, err
	}

	// Linking to a family copies the head's region and address as defaults
	// when the form left them blank. This is a one-time default, not an
	// invariant: the copies may drift afterwards.
	if in.FamilyID != nil && *in.FamilyID != "" {
		head, err := s.familyHead(records, *in.FamilyID, actor.BranchID)
		if err != nil {
			return models.Beneficiary{}, err
		}
		if in.RegionID == "" {
			in.RegionID = head.RegionID
		}
		if in.Address == "" {
			in.Address = head.Address
		}
	}

	if err := s.checkRegion(ctx, in.RegionID, actor.BranchID); err != nil {
		return models.Beneficiary{}, err
	}

	record := models.Beneficiary{
		ID:                uuid.NewString(),
		Name:              in.Name,
		NationalID:        in.NationalID,
		Phone:             in.Phone,
		Address:           in.Address,
		BirthDate:         in.BirthDate,
		Gender:            in.Gender,
		RegionID:          in.RegionID,
		BranchID:          actor.BranchID,
		Status:            defaultString(in.Status, models.StatusActive),
		SponsorshipStatus: defaultString(in.SponsorshipStatus, models.NotSponsored),
		Type:              models.DeriveType(in.Type, in.FamilyID),
		CategoryIDs:       in.CategoryIDs,
		FamilyID:          in.FamilyID,
		EducationLevel:    in.EducationLevel,
		SchoolName:        in.SchoolName,
		CreatedAt:         time.Now().UTC(),
	}

	if err := s.records.Save(ctx, append(records, record)); err != nil {
		return models.Beneficiary{}, err
	}
	if _, err := s.audit.Record(ctx, actor, models.ActionAdd, record.Type, record.ID); err != nil {
		return models.Beneficiary{}, err
	}
	s.log.Info("beneficiary created",
		zap.String("id", record.ID),
		zap.String("type", record.Type),
		zap.String("branch_id", record.BranchID),
	)
	return record, nil
}

// Update merges the input into the existing record, keeping its id, branch,
// and creation time, and re-derives the record type.
func (s *Service) Update(ctx context.Context, actor models.User, id string, in Input) (models.Beneficiary, error) {
	in = sanitizeInput(in)
	if err := validate(in); err != nil {
		return models.Beneficiary{}, err
	}

	records, err := s.records.Load(ctx)
	if err != nil {
		return models.Beneficiary{}, err
	}

	idx := -1
	for i, b := range records {
		if b.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Beneficiary{}, ErrNotFound
	}
	existing := records[idx]
	if !scope.CanManageBranch(actor, existing.BranchID) {
		return models.Beneficiary{}, ErrNotFound
	}

	if in.RegionID == "" {
		in.RegionID = existing.RegionID
	}
	if in.FamilyID != nil && *in.FamilyID != "" {
		if *in.FamilyID == id {
			errs := inputval.Errors{}
			errs.Add("family_id", "a record cannot be its own family head")
			return models.Beneficiary{}, errs
		}
		if _, err := s.familyHead(records, *in.FamilyID, existing.BranchID); err != nil {
			return models.Beneficiary{}, err
		}
	}
	if err := s.checkRegion(ctx, in.RegionID, existing.BranchID); err != nil {
		return models.Beneficiary{}, err
	}

	// An explicit head stays a head as long as it carries no family link.
	explicit := in.Type
	if explicit == "" && existing.Type == models.TypeFamilyHead {
		explicit = models.TypeFamilyHead
	}

	// A head with members cannot be demoted: its members would be left
	// pointing at a non-head. The family must be emptied (or deleted,
	// which cascades) first.
	newType := models.DeriveType(explicit, in.FamilyID)
	if existing.Type == models.TypeFamilyHead && newType != models.TypeFamilyHead {
		for _, b := range records {
			if b.FamilyID != nil && *b.FamilyID == id {
				errs := inputval.Errors{}
				errs.Add("family_id", "family head still has members")
				return models.Beneficiary{}, errs
			}
		}
	}

	updated := existing
	updated.Name = in.Name
	updated.NationalID = in.NationalID
	updated.Phone = in.Phone
	updated.Address = in.Address
	updated.BirthDate = in.BirthDate
	updated.Gender = in.Gender
	updated.RegionID = in.RegionID
	updated.Status = defaultString(in.Status, existing.Status)
	updated.SponsorshipStatus = defaultString(in.SponsorshipStatus, existing.SponsorshipStatus)
	updated.CategoryIDs = in.CategoryIDs
	updated.FamilyID = in.FamilyID
	updated.EducationLevel = in.EducationLevel
	updated.SchoolName = in.SchoolName
	updated.Type = newType

	records[idx] = updated
	if err := s.records.Save(ctx, records); err != nil {
		return models.Beneficiary{}, err
	}
	if _, err := s.audit.Record(ctx, actor, models.ActionEdit, "beneficiary", updated.ID); err != nil {
		return models.Beneficiary{}, err
	}
	s.log.Info("beneficiary updated", zap.String("id", updated.ID))
	return updated, nil
}

// Delete removes the record. Deleting a family head cascades to every member
// linked to it in the same save; one audit entry is recorded, for the
// principal id only.
func (s *Service) Delete(ctx context.Context, actor models.User, id string) error {
	records, err := s.records.Load(ctx)
	if err != nil {
		return err
	}

	var target *models.Beneficiary
	for i := range records {
		if records[i].ID == id {
			target = &records[i]
			break
		}
	}
	if target == nil {
		return ErrNotFound
	}
	if !scope.CanManageBranch(actor, target.BranchID) {
		return ErrNotFound
	}

	cascade := target.Type == models.TypeFamilyHead
	remaining := make([]models.Beneficiary, 0, len(records))
	removed := 0
	for _, b := range records {
		if b.ID == id {
			removed++
			continue
		}
		if cascade && b.FamilyID != nil && *b.FamilyID == id {
			removed++
			continue
		}
		remaining = append(remaining, b)
	}

	if err := s.records.Save(ctx, remaining); err != nil {
		return err
	}
	if _, err := s.audit.Record(ctx, actor, models.ActionDelete, "beneficiary", id); err != nil {
		return err
	}
	s.log.Info("beneficiary deleted",
		zap.String("id", id),
		zap.Int("records_removed", removed),
	)
	return nil
}

// Get returns one visible beneficiary by id.
func (s *Service) Get(ctx context.Context, user models.User, id string) (models.Beneficiary, error) {
	record, err := s.records.ByID(ctx, id)
	if err != nil {
		return models.Beneficiary{}, err
	}
	if !user.IsAdmin() && record.BranchID != user.BranchID {
		return models.Beneficiary{}, ErrNotFound
	}
	return record, nil
}

func (s *Service) visible(ctx context.Context, user models.User) ([]models.Beneficiary, error) {
	records, err := s.records.Load(ctx)
	if err != nil {
		return nil, err
	}
	return scope.Visible(records, user), nil
}

// familyHead resolves a family link to an existing head record in the given
// branch. The check runs on every write; membership is never just assumed.
func (s *Service) familyHead(records []models.Beneficiary, familyID, branchID string) (models.Beneficiary, error) {
	for _, b := range records {
		if b.ID == familyID && b.Type == models.TypeFamilyHead && b.BranchID == branchID {
			return b, nil
		}
	}
	errs := inputval.Errors{}
	errs.Add("family_id", "family head no longer exists in this branch")
	return models.Beneficiary{}, errs
}

func (s *Service) checkRegion(ctx context.Context, regionID, branchID string) error {
	region, err := s.regions.ByID(ctx, regionID)
	if err != nil {
		if errors.Is(err, regionstore.ErrNotFound) {
			errs := inputval.Errors{}
			errs.Add("region_id", "region no longer exists")
			return errs
		}
		return err
	}
	if region.BranchID != branchID {
		errs := inputval.Errors{}
		errs.Add("region_id", "region belongs to another branch")
		return errs
	}
	return nil
}

func sanitizeInput(in Input) Input {
	in.Name = htmlsanitize.Strip(in.Name)
	in.Address = htmlsanitize.Strip(in.Address)
	in.SchoolName = htmlsanitize.Strip(in.SchoolName)
	return in
}

func defaultString(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
