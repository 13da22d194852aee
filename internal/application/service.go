package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/ssengur01/TalentFlows/internal/event"
	"github.com/ssengur01/TalentFlows/internal/model"
	"github.com/ssengur01/TalentFlows/internal/scope"
	"github.com/ssengur01/TalentFlows/internal/tenant"
	"gorm.io/gorm"
)

// Input carries an application creation request.
type Input struct {
	JobID       uuid.UUID
	CandidateID uuid.UUID
	CoverLetter string
}

// Service implements the application operations. Creation writes the
// application row and its ApplicationCreated outbox event in one
// transaction; a background dispatcher delivers the event to the bus.
type Service struct {
	db         *gorm.DB
	repo       *scope.Repository[model.Application]
	candidates *scope.GlobalRepository[model.Candidate]
	topic      string
}

// NewService creates the application service.
func NewService(db *gorm.DB, topic string) *Service {
	return &Service{
		db:         db,
		repo:       scope.NewRepository[model.Application](db),
		candidates: scope.NewGlobalRepository[model.Candidate](db),
		topic:      topic,
	}
}

// Create stores a new application. The status is always Applied on
// creation; any caller-supplied status is ignored.
func (s *Service) Create(ctx context.Context, tc tenant.Context, in Input) (*model.Application, error) {
	if in.JobID == uuid.Nil {
		return nil, model.NewValidationError("jobId is required")
	}
	if in.CandidateID == uuid.Nil {
		return nil, model.NewValidationError("candidateId is required")
	}

	// Candidate identity enriches the event payload; profiles are global,
	// so this lookup runs through the bypass.
	var candidateName, candidateEmail string
	if c, err := s.candidates.Get(ctx, in.CandidateID); err == nil {
		candidateName = c.FullName
		candidateEmail = c.Email
	} else if !errors.Is(err, model.ErrNotFound) {
		return nil, err
	}

	app := &model.Application{
		JobID:       in.JobID,
		CandidateID: in.CandidateID,
		Status:      model.StatusApplied,
		CoverLetter: in.CoverLetter,
		AppliedAt:   time.Now().UTC(),
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Create(ctx, tc, app); err != nil {
			return err
		}
		return event.StageTx(tx, s.topic, event.ApplicationCreated{
			ApplicationID:  app.ID,
			JobID:          app.JobID,
			CandidateID:    app.CandidateID,
			TenantID:       app.TenantID,
			CandidateName:  candidateName,
			CandidateEmail: candidateEmail,
			AppliedAt:      app.AppliedAt,
		})
	})
	if err != nil {
		return nil, err
	}
	return app, nil
}

// List returns the tenant's applications.
func (s *Service) List(ctx context.Context, tc tenant.Context) ([]model.Application, error) {
	return s.repo.List(ctx, tc)
}

// Get returns a single application within the caller's tenant.
func (s *Service) Get(ctx context.Context, tc tenant.Context, id uuid.UUID) (*model.Application, error) {
	return s.repo.Get(ctx, tc, id)
}

// UpdateStatus moves an application to another status of the closed set.
// Values outside the set are rejected; no other field is touched.
func (s *Service) UpdateStatus(ctx context.Context, tc tenant.Context, id uuid.UUID, status string) (*model.Application, error) {
	if !model.ValidApplicationStatus(status) {
		return nil, model.ErrInvalidStatus
	}

	app, err := s.repo.Get(ctx, tc, id)
	if err != nil {
		return nil, err
	}

	app.Status = status
	if err := s.repo.Update(ctx, tc, app); err != nil {
		return nil, err
	}
	return app, nil
}
