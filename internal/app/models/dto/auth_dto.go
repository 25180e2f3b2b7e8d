package dto

import "github.com/devraj/lecturehall/internal/app/models"

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents a successful authentication response.
// The client stores Token and routes on User.Role.
type LoginResponse struct {
	Auth  bool         `json:"auth" example:"true"`
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse represents basic user information returned to clients
type UserResponse struct {
	ID        int64       `json:"id"`
	Name      *string     `json:"name,omitempty"`
	Email     string      `json:"email"`
	Role      models.Role `json:"role" example:"admin"`
	CreatedAt string      `json:"createdAt"`
}

// NewUserResponse maps a user model onto the wire representation.
func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}
