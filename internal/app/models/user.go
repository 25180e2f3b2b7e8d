package models

import (
	"time"
)

// Role defines the user role type
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleInstructor Role = "instructor"
)

// IsValid reports whether the role is one of the known roles.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleInstructor
}

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`                                   // Unique identifier for the user
	Name      *string   `json:"name,omitempty" db:"name" example:"Priya Gupta"`           // Display name (nullable, the seeded admin has none)
	Email     string    `json:"email" db:"email" example:"priya.gupta@gmail.com"`         // User's email address, unique across all users
	Password  string    `json:"-" db:"password"`                                          // User's hashed password (excluded from JSON)
	Role      Role      `json:"role" db:"role" example:"instructor"`                      // User's role (admin or instructor)
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Timestamp when the user was created
}
