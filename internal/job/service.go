package job

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ssengur01/TalentFlows/internal/model"
	"github.com/ssengur01/TalentFlows/internal/scope"
	"github.com/ssengur01/TalentFlows/internal/tenant"
	"gorm.io/gorm"
)

// Input carries the writable fields of a job posting.
type Input struct {
	Title          string
	Description    string
	Location       string
	SalaryMin      *float64
	SalaryMax      *float64
	Requirements   string
	Benefits       string
	EmploymentType string
}

// Service implements the job posting operations over the tenant-scoped
// repository.
type Service struct {
	repo *scope.Repository[model.Job]
}

// NewService creates the job service.
func NewService(db *gorm.DB) *Service {
	return &Service{repo: scope.NewRepository[model.Job](db)}
}

// Create stores a new job posting. Jobs always start inactive; only an
// explicit Publish makes them visible in the public listing.
func (s *Service) Create(ctx context.Context, tc tenant.Context, in Input) (*model.Job, error) {
	j := &model.Job{
		Title:          in.Title,
		Description:    in.Description,
		Location:       in.Location,
		SalaryMin:      in.SalaryMin,
		SalaryMax:      in.SalaryMax,
		Requirements:   in.Requirements,
		Benefits:       in.Benefits,
		EmploymentType: in.EmploymentType,
		IsActive:       false,
	}
	if err := s.repo.Create(ctx, tc, j); err != nil {
		return nil, err
	}
	return j, nil
}

// List returns the tenant's published jobs. Unpublished postings are only
// reachable through Get, which the owner uses for previews.
func (s *Service) List(ctx context.Context, tc tenant.Context) ([]model.Job, error) {
	return s.repo.List(ctx, tc, "is_active = ?", true)
}

// Get returns a job regardless of its active state.
func (s *Service) Get(ctx context.Context, tc tenant.Context, id uuid.UUID) (*model.Job, error) {
	return s.repo.Get(ctx, tc, id)
}

// Update replaces the writable fields of an existing posting.
func (s *Service) Update(ctx context.Context, tc tenant.Context, id uuid.UUID, in Input) (*model.Job, error) {
	j, err := s.repo.Get(ctx, tc, id)
	if err != nil {
		return nil, err
	}

	j.Title = in.Title
	j.Description = in.Description
	j.Location = in.Location
	j.SalaryMin = in.SalaryMin
	j.SalaryMax = in.SalaryMax
	j.Requirements = in.Requirements
	j.Benefits = in.Benefits
	j.EmploymentType = in.EmploymentType

	if err := s.repo.Update(ctx, tc, j); err != nil {
		return nil, err
	}
	return j, nil
}

// Publish activates a posting and stamps its publication time.
func (s *Service) Publish(ctx context.Context, tc tenant.Context, id uuid.UUID) (*model.Job, error) {
	j, err := s.repo.Get(ctx, tc, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	j.IsActive = true
	j.PublishedAt = &now

	if err := s.repo.Update(ctx, tc, j); err != nil {
		return nil, err
	}
	return j, nil
}

// Delete removes a posting within the caller's tenant.
func (s *Service) Delete(ctx context.Context, tc tenant.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, tc, id)
}
