package model

import "time"

// Job represents a job posting owned by a company tenant. Jobs are created
// inactive and only become publicly visible after an explicit publish.
type Job struct {
	TenantEntity
	Title          string     `json:"title" gorm:"type:varchar(200)"`
	Description    string     `json:"description" gorm:"type:text"`
	Location       string     `json:"location" gorm:"type:varchar(100)"`
	SalaryMin      *float64   `json:"salaryMin,omitempty"`
	SalaryMax      *float64   `json:"salaryMax,omitempty"`
	Requirements   string     `json:"requirements" gorm:"type:text"`
	Benefits       string     `json:"benefits" gorm:"type:text"`
	EmploymentType string     `json:"employmentType" gorm:"type:varchar(50)"` // "Full-time", "Part-time", "Contract"
	IsActive       bool       `json:"isActive" gorm:"default:false"`
	PublishedAt    *time.Time `json:"publishedAt,omitempty"`
}
