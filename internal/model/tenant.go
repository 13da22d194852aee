package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SystemTenantName is the singleton tenant that owns entities with no
// natural owning company, such as candidate accounts.
const SystemTenantName = "System"

// Tenant represents one company account. Tenants are the isolation
// boundary of the platform and are themselves global records.
type Tenant struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(100)"`
	Domain    string    `json:"domain" gorm:"type:varchar(150);uniqueIndex"`
	IsActive  bool      `json:"isActive" gorm:"default:true"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate assigns a fresh ID when none was provided
func (t *Tenant) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
