// Package dto defines data transfer objects for the user feature's HTTP transport layer.
package dto

import "user_backend/internal/feature/user/domain/entity"

// RegisterReq represents the request body for the /users/register endpoint.
// Presence is checked with Gin's binding tags; field-level rules (email
// shape, name length, age, role enum) are enforced by the store.
type RegisterReq struct {
	Email    string          `json:"email" binding:"required"`
	Password string          `json:"password" binding:"required"`
	Name     string          `json:"name" binding:"required"`
	Age      int             `json:"age" binding:"required"`
	Roles    entity.RoleList `json:"roles" binding:"required"`
}
