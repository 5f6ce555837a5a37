package dto

import (
	"time"

	"user_backend/internal/feature/user/domain/entity"
)

// PublicUser is the minimal user projection returned by register and login.
type PublicUser struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

// AuthResponse is the body returned by register (201) and login (200).
type AuthResponse struct {
	User  PublicUser `json:"user"`
	Token string     `json:"token"`
}

// UserResponse is a full user record with the password hash excluded.
type UserResponse struct {
	ID        uint            `json:"id"`
	Email     string          `json:"email"`
	Name      string          `json:"name"`
	Age       int             `json:"age"`
	Roles     entity.RoleList `json:"roles"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// NewUserResponse projects an entity into a response, dropping the password hash.
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Age:       u.Age,
		Roles:     u.Roles,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// MessageResponse is a generic message body used for errors and confirmations.
type MessageResponse struct {
	Message string `json:"message"`
}
