package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User roles. Company users own a tenant; candidates share the System tenant.
const (
	RoleCompany   = "Company"
	RoleCandidate = "Candidate"
)

// User represents a credential holder. Email uniqueness is global and
// case-sensitive; every user belongs to exactly one tenant.
type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	TenantID     uuid.UUID `json:"tenantId" gorm:"type:uuid;index"`
	Email        string    `json:"email" gorm:"type:varchar(100);uniqueIndex"`
	PasswordHash string    `json:"-" gorm:"type:varchar(255)"`
	FullName     string    `json:"fullName" gorm:"type:varchar(100)"`
	Role         string    `json:"role" gorm:"type:varchar(50)"`
	IsActive     bool      `json:"isActive" gorm:"default:true"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// BeforeCreate assigns a fresh ID when none was provided
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
