package model

// Company represents a company profile, tenant-scoped.
type Company struct {
	TenantEntity
	Name          string `json:"name" gorm:"type:varchar(100)"`
	Description   string `json:"description" gorm:"type:text"`
	Industry      string `json:"industry" gorm:"type:varchar(100)"`
	Website       string `json:"website" gorm:"type:varchar(200)"`
	LogoURL       string `json:"logoUrl" gorm:"type:varchar(300)"`
	Location      string `json:"location" gorm:"type:varchar(100)"`
	EmployeeCount int    `json:"employeeCount"`
}
