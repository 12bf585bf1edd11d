package dto

import (
	"time"

	"dengueapp_backend/internals/features/quiz/categories/model"
)

// ============================
// Response DTO
// ============================

type QuizCategoryDTO struct {
	QuizCategoryID          string    `json:"quiz_category_id"`
	QuizCategoryName        string    `json:"quiz_category_name"`
	QuizCategoryDescription string    `json:"quiz_category_description"`
	QuizCategoryIsActive    bool      `json:"quiz_category_is_active"`
	CreatedAt               time.Time `json:"created_at"`
}

// ============================
// Create Request DTO
// ============================

type CreateQuizCategoryRequest struct {
	QuizCategoryName        string `json:"quiz_category_name" validate:"required,min=3,max=100"`
	QuizCategoryDescription string `json:"quiz_category_description"`
}

// ============================
// Update Request DTO
// ============================

type UpdateQuizCategoryRequest struct {
	QuizCategoryName        *string `json:"quiz_category_name" validate:"omitempty,min=3,max=100"`
	QuizCategoryDescription *string `json:"quiz_category_description"`
	QuizCategoryIsActive    *bool   `json:"quiz_category_is_active"`
}

// ============================
// Converter
// ============================

func ToQuizCategoryDTO(m model.QuizCategoryModel) QuizCategoryDTO {
	return QuizCategoryDTO{
		QuizCategoryID:          m.QuizCategoryID.String(),
		QuizCategoryName:        m.QuizCategoryName,
		QuizCategoryDescription: m.QuizCategoryDescription,
		QuizCategoryIsActive:    m.QuizCategoryIsActive,
		CreatedAt:               m.CreatedAt,
	}
}
