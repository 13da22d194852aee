package model

// Candidate represents a candidate profile. Candidates are globally scoped:
// they are visible to every company tenant and are accessed through the
// repository bypass, never through the tenant filter.
type Candidate struct {
	TenantEntity
	FullName          string `json:"fullName" gorm:"type:varchar(100)"`
	Email             string `json:"email" gorm:"type:varchar(100)"`
	Phone             string `json:"phone" gorm:"type:varchar(30)"`
	ResumeURL         string `json:"resumeUrl" gorm:"type:varchar(300)"`
	Skills            string `json:"skills" gorm:"type:text"`
	YearsOfExperience int    `json:"yearsOfExperience"`
	Education         string `json:"education" gorm:"type:varchar(200)"`
	LinkedInURL       string `json:"linkedInUrl" gorm:"type:varchar(300)"`
}
