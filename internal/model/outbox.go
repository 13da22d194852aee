package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Outbox event statuses.
const (
	OutboxPending   = "pending"
	OutboxPublished = "published"
	OutboxFailed    = "failed"
)

// OutboxEvent is a domain event staged in the same transaction as the write
// that produced it. A background dispatcher publishes pending rows to the
// event bus and retries failures up to a bounded attempt count.
type OutboxEvent struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Topic       string     `json:"topic" gorm:"type:varchar(100);index"`
	Payload     string     `json:"payload" gorm:"type:jsonb"`
	Status      string     `json:"status" gorm:"type:varchar(20);index;default:'pending'"`
	Attempts    int        `json:"attempts" gorm:"default:0"`
	LastError   string     `json:"lastError,omitempty" gorm:"type:text"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
}

// BeforeCreate assigns a fresh ID when none was provided
func (e *OutboxEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
