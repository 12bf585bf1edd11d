package dto

import (
	"time"

	"dengueapp_backend/internals/features/users/user/model"
)

// ============================
// Response DTO
// ============================

type UserDTO struct {
	UserID       string    `json:"user_id"`
	UserName     string    `json:"user_name"`
	UserEmail    string    `json:"user_email"`
	UserRole     string    `json:"user_role"`
	UserIsActive bool      `json:"user_is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

// ============================
// Create Request DTO
// ============================

type CreateUserRequest struct {
	UserName     string `json:"user_name" validate:"required,min=3,max=100"`
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required,min=8"`
	UserRole     string `json:"user_role" validate:"omitempty,oneof=admin agent user"`
}

// ============================
// Update Request DTO
// ============================

type UpdateUserRequest struct {
	UserName     *string `json:"user_name" validate:"omitempty,min=3,max=100"`
	UserIsActive *bool   `json:"user_is_active"`
}

// ============================
// Converter
// ============================

func ToUserDTO(m model.UserModel) UserDTO {
	return UserDTO{
		UserID:       m.UserID.String(),
		UserName:     m.UserName,
		UserEmail:    m.UserEmail,
		UserRole:     m.UserRole,
		UserIsActive: m.UserIsActive,
		CreatedAt:    m.CreatedAt,
	}
}
