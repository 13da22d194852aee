package company

import (
	"context"

	"github.com/google/uuid"
	"github.com/ssengur01/TalentFlows/internal/model"
	"github.com/ssengur01/TalentFlows/internal/scope"
	"github.com/ssengur01/TalentFlows/internal/tenant"
	"gorm.io/gorm"
)

// Input carries the writable fields of a company profile.
type Input struct {
	Name          string
	Description   string
	Industry      string
	Website       string
	LogoURL       string
	Location      string
	EmployeeCount int
}

// Service implements the company profile operations over the tenant-scoped
// repository.
type Service struct {
	repo *scope.Repository[model.Company]
}

// NewService creates the company service.
func NewService(db *gorm.DB) *Service {
	return &Service{repo: scope.NewRepository[model.Company](db)}
}

// Create stores a new company profile under the caller's tenant.
func (s *Service) Create(ctx context.Context, tc tenant.Context, in Input) (*model.Company, error) {
	c := &model.Company{
		Name:          in.Name,
		Description:   in.Description,
		Industry:      in.Industry,
		Website:       in.Website,
		LogoURL:       in.LogoURL,
		Location:      in.Location,
		EmployeeCount: in.EmployeeCount,
	}
	if err := s.repo.Create(ctx, tc, c); err != nil {
		return nil, err
	}
	return c, nil
}

// List returns the tenant's company profiles.
func (s *Service) List(ctx context.Context, tc tenant.Context) ([]model.Company, error) {
	return s.repo.List(ctx, tc)
}

// Get returns a single profile within the caller's tenant.
func (s *Service) Get(ctx context.Context, tc tenant.Context, id uuid.UUID) (*model.Company, error) {
	return s.repo.Get(ctx, tc, id)
}

// Update replaces the writable fields of an existing profile.
func (s *Service) Update(ctx context.Context, tc tenant.Context, id uuid.UUID, in Input) (*model.Company, error) {
	c, err := s.repo.Get(ctx, tc, id)
	if err != nil {
		return nil, err
	}

	c.Name = in.Name
	c.Description = in.Description
	c.Industry = in.Industry
	c.Website = in.Website
	c.LogoURL = in.LogoURL
	c.Location = in.Location
	c.EmployeeCount = in.EmployeeCount

	if err := s.repo.Update(ctx, tc, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Delete removes a profile within the caller's tenant.
func (s *Service) Delete(ctx context.Context, tc tenant.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, tc, id)
}
