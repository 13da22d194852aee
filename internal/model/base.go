package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TenantEntity is embedded by every tenant-scoped record. The TenantID is
// stamped by the scoped repository at insertion time and never updated
// afterwards.
type TenantEntity struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	TenantID  uuid.UUID `json:"tenantId" gorm:"type:uuid;index"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate assigns a fresh ID when none was provided
func (e *TenantEntity) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// EntityID returns the record's primary key
func (e *TenantEntity) EntityID() uuid.UUID {
	return e.ID
}

// OwnerTenant returns the tenant the record belongs to
func (e *TenantEntity) OwnerTenant() uuid.UUID {
	return e.TenantID
}

// StampTenant sets the owning tenant. Called once, at creation.
func (e *TenantEntity) StampTenant(id uuid.UUID) {
	e.TenantID = id
}
