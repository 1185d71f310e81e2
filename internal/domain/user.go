package domain

import (
	"time"
)

type Role string

const (
	RoleManager    Role = "manager"
	RoleTechnician Role = "technician"
	RoleDriver     Role = "driver"
)

// DashboardPath returns the dashboard a user of this role should land on
// after login. An empty string means the role is unrecognized.
func (r Role) DashboardPath() string {
	switch r {
	case RoleManager:
		return "/manager"
	case RoleTechnician:
		return "/technician"
	case RoleDriver:
		return "/staff"
	default:
		return ""
	}
}

type Brand string

const (
	BrandDicon     Brand = "Dicon"
	BrandMElectric Brand = "M Electric"
	BrandBoth      Brand = "both"
)

// Covers reports whether a staff member holding this certification may work
// on a job of the given brand.
func (b Brand) Covers(jobBrand Brand) bool {
	return b == BrandBoth || b == jobBrand
}

type User struct {
	ID                   int64     `json:"id"`
	Username             string    `json:"username"`
	PasswordHash         string    `json:"-"`
	FullName             string    `json:"fullName"`
	Email                string    `json:"email"`
	Role                 Role      `json:"role"`
	Brand                Brand     `json:"brand,omitempty"` // only meaningful for technicians
	AnnualLeaveRemaining int32     `json:"annualLeaveRemaining"`
	IsActive             bool      `json:"isActive"`
	CreatedAt            time.Time `json:"createdAt"`
	Version              int32     `json:"-"`
}
