package dto

import (
	"time"

	"dengueapp_backend/internals/features/quiz/questions/model"
	"dengueapp_backend/internals/helpers/apperr"
)

// ============================
// Response DTO (visão admin — inclui gabarito)
// ============================

type QuizAnswerOptionDTO struct {
	QuizAnswerOptionID        string `json:"quiz_answer_option_id"`
	QuizAnswerOptionText      string `json:"quiz_answer_option_text"`
	QuizAnswerOptionIsCorrect bool   `json:"quiz_answer_option_is_correct"`
	QuizAnswerOptionOrder     int    `json:"quiz_answer_option_order"`
}

type QuizQuestionDTO struct {
	QuizQuestionID          string                `json:"quiz_question_id"`
	QuizQuestionCategoryID  string                `json:"quiz_question_category_id"`
	QuizQuestionText        string                `json:"quiz_question_text"`
	QuizQuestionExplanation string                `json:"quiz_question_explanation"`
	QuizQuestionDifficulty  int                   `json:"quiz_question_difficulty"`
	QuizQuestionPoints      int                   `json:"quiz_question_points"`
	QuizQuestionIsActive    bool                  `json:"quiz_question_is_active"`
	Options                 []QuizAnswerOptionDTO `json:"options"`
	CreatedAt               time.Time             `json:"created_at"`
}

// ============================
// Create Request DTO
// ============================

type CreateAnswerOptionRequest struct {
	QuizAnswerOptionText      string `json:"quiz_answer_option_text" validate:"required"`
	QuizAnswerOptionIsCorrect bool   `json:"quiz_answer_option_is_correct"`
	QuizAnswerOptionOrder     int    `json:"quiz_answer_option_order" validate:"gte=0"`
}

type CreateQuizQuestionRequest struct {
	QuizQuestionCategoryID  string                      `json:"quiz_question_category_id" validate:"required,uuid"`
	QuizQuestionText        string                      `json:"quiz_question_text" validate:"required"`
	QuizQuestionExplanation string                      `json:"quiz_question_explanation"`
	QuizQuestionDifficulty  int                         `json:"quiz_question_difficulty" validate:"gte=1,lte=5"`
	QuizQuestionPoints      int                         `json:"quiz_question_points" validate:"gte=1"`
	Options                 []CreateAnswerOptionRequest `json:"options" validate:"required,min=1,dive"`
}

// ValidateCorrectOption garante exatamente uma opção correta (invariante do banco
// de perguntas, não só convenção).
func (r CreateQuizQuestionRequest) ValidateCorrectOption() error {
	correct := 0
	for _, opt := range r.Options {
		if opt.QuizAnswerOptionIsCorrect {
			correct++
		}
	}
	if correct != 1 {
		return apperr.Validation("A pergunta deve ter exatamente uma opção correta")
	}
	return nil
}

// ============================
// Update Request DTO — substitui o conjunto de opções inteiro
// ============================

type UpdateQuizQuestionRequest struct {
	QuizQuestionText        *string                     `json:"quiz_question_text" validate:"omitempty,min=1"`
	QuizQuestionExplanation *string                     `json:"quiz_question_explanation"`
	QuizQuestionDifficulty  *int                        `json:"quiz_question_difficulty" validate:"omitempty,gte=1,lte=5"`
	QuizQuestionPoints      *int                        `json:"quiz_question_points" validate:"omitempty,gte=1"`
	QuizQuestionIsActive    *bool                       `json:"quiz_question_is_active"`
	Options                 []CreateAnswerOptionRequest `json:"options" validate:"omitempty,min=1,dive"`
}

func (r UpdateQuizQuestionRequest) ValidateCorrectOption() error {
	if r.Options == nil {
		return nil
	}
	correct := 0
	for _, opt := range r.Options {
		if opt.QuizAnswerOptionIsCorrect {
			correct++
		}
	}
	if correct != 1 {
		return apperr.Validation("A pergunta deve ter exatamente uma opção correta")
	}
	return nil
}

// ============================
// Converter
// ============================

func ToQuizAnswerOptionDTO(m model.QuizAnswerOptionModel) QuizAnswerOptionDTO {
	return QuizAnswerOptionDTO{
		QuizAnswerOptionID:        m.QuizAnswerOptionID.String(),
		QuizAnswerOptionText:      m.QuizAnswerOptionText,
		QuizAnswerOptionIsCorrect: m.QuizAnswerOptionIsCorrect,
		QuizAnswerOptionOrder:     m.QuizAnswerOptionOrder,
	}
}

func ToQuizQuestionDTO(m model.QuizQuestionModel) QuizQuestionDTO {
	opts := make([]QuizAnswerOptionDTO, 0, len(m.Options))
	for _, o := range m.Options {
		opts = append(opts, ToQuizAnswerOptionDTO(o))
	}
	return QuizQuestionDTO{
		QuizQuestionID:          m.QuizQuestionID.String(),
		QuizQuestionCategoryID:  m.QuizQuestionCategoryID.String(),
		QuizQuestionText:        m.QuizQuestionText,
		QuizQuestionExplanation: m.QuizQuestionExplanation,
		QuizQuestionDifficulty:  m.QuizQuestionDifficulty,
		QuizQuestionPoints:      m.QuizQuestionPoints,
		QuizQuestionIsActive:    m.QuizQuestionIsActive,
		Options:                 opts,
		CreatedAt:               m.CreatedAt,
	}
}
