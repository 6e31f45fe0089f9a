package models

import (
	"time"
)

type UserRole string

const (
	RoleHR     UserRole = "hr"
	RoleVendor UserRole = "vendor"
)

// User is an HR requester or a wellness vendor. CompanyName is only
// meaningful for HR users; vendors leave it empty.
type User struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name"`
	Email       string    `json:"email" gorm:"uniqueIndex"`
	Password    string    `json:"-"`
	Role        UserRole  `json:"role" gorm:"index"`
	CompanyName string    `json:"companyName,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
