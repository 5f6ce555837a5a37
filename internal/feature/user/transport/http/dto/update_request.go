package dto

import "user_backend/internal/feature/user/domain/entity"

// UpdateReq represents the request body for PUT /users/:id.
// All fields are optional; absent fields are left unchanged.
type UpdateReq struct {
	Email    *string         `json:"email"`
	Name     *string         `json:"name"`
	Age      *int            `json:"age"`
	Roles    entity.RoleList `json:"roles"`
	Password *string         `json:"password"`
}
