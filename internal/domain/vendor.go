package domain

import "time"

type Vendor struct {
	ID              int       `json:"id"`
	CompanyName     string    `json:"company_name"`
	ContactName     string    `json:"contact_name"`
	Phone           string    `json:"phone"`
	Email           string    `json:"email"`
	TotalJobs       int       `json:"total_jobs"`
	ServicesOffered []int64   `json:"services_offered"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type UpdateVendorRequest struct {
	ID              int      `json:"id"`
	CompanyName     *string  `json:"company_name"`
	ContactName     *string  `json:"contact_name"`
	Phone           *string  `json:"phone"`
	Email           *string  `json:"email"`
	Active          *bool    `json:"active"`
	ServicesOffered *[]int64 `json:"services_offered"`
}
