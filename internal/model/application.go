package model

import (
	"time"

	"github.com/google/uuid"
)

// Application statuses form a closed set. Every application starts as
// Applied; UpdateStatus rejects values outside this set.
const (
	StatusApplied            = "Applied"
	StatusReviewing          = "Reviewing"
	StatusPhoneInterview     = "PhoneInterview"
	StatusTechnicalInterview = "TechnicalInterview"
	StatusOffer              = "Offer"
	StatusRejected           = "Rejected"
)

var applicationStatuses = map[string]struct{}{
	StatusApplied:            {},
	StatusReviewing:          {},
	StatusPhoneInterview:     {},
	StatusTechnicalInterview: {},
	StatusOffer:              {},
	StatusRejected:           {},
}

// ValidApplicationStatus reports whether s belongs to the closed status set.
func ValidApplicationStatus(s string) bool {
	_, ok := applicationStatuses[s]
	return ok
}

// Application represents a candidate's application to a job, tenant-scoped
// to the company that owns the job.
type Application struct {
	TenantEntity
	JobID       uuid.UUID `json:"jobId" gorm:"type:uuid;index"`
	CandidateID uuid.UUID `json:"candidateId" gorm:"type:uuid;index"`
	Status      string    `json:"status" gorm:"type:varchar(50)"`
	CoverLetter string    `json:"coverLetter" gorm:"type:text"`
	AppliedAt   time.Time `json:"appliedAt"`
}
