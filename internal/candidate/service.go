package candidate

import (
	"context"

	"github.com/google/uuid"
	"github.com/ssengur01/TalentFlows/internal/model"
	"github.com/ssengur01/TalentFlows/internal/scope"
	"gorm.io/gorm"
)

// Input carries the writable fields of a candidate profile.
type Input struct {
	FullName          string
	Email             string
	Phone             string
	ResumeURL         string
	Skills            string
	YearsOfExperience int
	Education         string
	LinkedInURL       string
}

// Service implements candidate profile operations. Candidates are globally
// scoped: every company tenant can see every profile, so this service is an
// enumerated call site of the repository bypass and takes no tenant context.
type Service struct {
	repo *scope.GlobalRepository[model.Candidate]
}

// NewService creates the candidate service.
func NewService(db *gorm.DB) *Service {
	return &Service{repo: scope.NewGlobalRepository[model.Candidate](db)}
}

// Create stores a new candidate profile.
func (s *Service) Create(ctx context.Context, in Input) (*model.Candidate, error) {
	c := &model.Candidate{
		FullName:          in.FullName,
		Email:             in.Email,
		Phone:             in.Phone,
		ResumeURL:         in.ResumeURL,
		Skills:            in.Skills,
		YearsOfExperience: in.YearsOfExperience,
		Education:         in.Education,
		LinkedInURL:       in.LinkedInURL,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// List returns all candidate profiles regardless of requester tenant.
func (s *Service) List(ctx context.Context) ([]model.Candidate, error) {
	return s.repo.List(ctx)
}

// Get returns a single profile.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.Candidate, error) {
	return s.repo.Get(ctx, id)
}

// Update replaces the writable fields of an existing profile.
func (s *Service) Update(ctx context.Context, id uuid.UUID, in Input) (*model.Candidate, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	c.FullName = in.FullName
	c.Email = in.Email
	c.Phone = in.Phone
	c.ResumeURL = in.ResumeURL
	c.Skills = in.Skills
	c.YearsOfExperience = in.YearsOfExperience
	c.Education = in.Education
	c.LinkedInURL = in.LinkedInURL

	if err := s.repo.Update(ctx, c.ID, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Delete removes a profile.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
