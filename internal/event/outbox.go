package event

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/ssengur01/TalentFlows/internal/model"
	"gorm.io/gorm"
)

// ApplicationCreated is the event emitted after a candidate applies to a job.
type ApplicationCreated struct {
	ApplicationID  uuid.UUID `json:"applicationId"`
	JobID          uuid.UUID `json:"jobId"`
	CandidateID    uuid.UUID `json:"candidateId"`
	TenantID       uuid.UUID `json:"tenantId"`
	CandidateName  string    `json:"candidateName"`
	CandidateEmail string    `json:"candidateEmail"`
	AppliedAt      time.Time `json:"appliedAt"`
}

// StageTx serializes the payload and inserts a pending outbox row inside the
// caller's transaction, so the event is persisted atomically with the write
// that produced it.
func StageTx(tx *gorm.DB, topic string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	row := &model.OutboxEvent{
		Topic:   topic,
		Payload: string(body),
		Status:  model.OutboxPending,
	}
	return tx.Create(row).Error
}
