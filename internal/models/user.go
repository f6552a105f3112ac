package models

import (
	"time"

	"github.com/lib/pq"
)

// UserRole represents the roles recognised by the portal.
type UserRole string

const (
	RoleEmployee UserRole = "EMPLOYEE"
	RoleManager  UserRole = "MANAGER"
	RoleAdmin    UserRole = "ADMIN"
)

// Valid reports whether r is a known role.
func (r UserRole) Valid() bool {
	switch r {
	case RoleEmployee, RoleManager, RoleAdmin:
		return true
	}
	return false
}

// UserProfile is the portal-side profile of an externally authenticated user.
type UserProfile struct {
	ID             string         `db:"id" json:"id"`
	Email          string         `db:"email" json:"email"`
	Role           UserRole       `db:"role" json:"role"`
	TeamNumber     *int           `db:"team_number" json:"teamNumber,omitempty"`
	Department     string         `db:"department" json:"department"`
	ExistingSkills pq.StringArray `db:"existing_skills" json:"existingSkills"`
	CreatedAt      time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time      `db:"updated_at" json:"updatedAt"`
}

// Pagination contains pagination metadata returned in list responses.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
}
