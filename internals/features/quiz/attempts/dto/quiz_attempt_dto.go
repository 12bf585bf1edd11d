package dto

import (
	"time"

	attemptModel "dengueapp_backend/internals/features/quiz/attempts/model"
	questionModel "dengueapp_backend/internals/features/quiz/questions/model"
)

// ============================
// Start — projeção SEM gabarito (o cliente não pode aprender a resposta aqui)
// ============================

type StartQuizRequest struct {
	TotalQuestions int `json:"total_questions" validate:"required,gte=1,lte=50"`
}

type RedactedOptionDTO struct {
	QuizAnswerOptionID    string `json:"quiz_answer_option_id"`
	QuizAnswerOptionText  string `json:"quiz_answer_option_text"`
	QuizAnswerOptionOrder int    `json:"quiz_answer_option_order"`
}

type RedactedQuestionDTO struct {
	QuizQuestionID         string              `json:"quiz_question_id"`
	QuizQuestionCategoryID string              `json:"quiz_question_category_id"`
	QuizQuestionText       string              `json:"quiz_question_text"`
	QuizQuestionDifficulty int                 `json:"quiz_question_difficulty"`
	QuizQuestionPoints     int                 `json:"quiz_question_points"`
	Options                []RedactedOptionDTO `json:"options"`
}

type StartQuizResponse struct {
	QuizAttemptID  string                `json:"quiz_attempt_id"`
	TotalQuestions int                   `json:"total_questions"`
	StartedAt      time.Time             `json:"started_at"`
	Questions      []RedactedQuestionDTO `json:"questions"`
}

// ToRedactedQuestionDTO projeta a pergunta escondendo is_correct e explicação.
func ToRedactedQuestionDTO(q questionModel.QuizQuestionModel) RedactedQuestionDTO {
	opts := make([]RedactedOptionDTO, 0, len(q.Options))
	for _, o := range q.Options {
		opts = append(opts, RedactedOptionDTO{
			QuizAnswerOptionID:    o.QuizAnswerOptionID.String(),
			QuizAnswerOptionText:  o.QuizAnswerOptionText,
			QuizAnswerOptionOrder: o.QuizAnswerOptionOrder,
		})
	}
	return RedactedQuestionDTO{
		QuizQuestionID:         q.QuizQuestionID.String(),
		QuizQuestionCategoryID: q.QuizQuestionCategoryID.String(),
		QuizQuestionText:       q.QuizQuestionText,
		QuizQuestionDifficulty: q.QuizQuestionDifficulty,
		QuizQuestionPoints:     q.QuizQuestionPoints,
		Options:                opts,
	}
}

// ============================
// SubmitAnswer — aqui o gabarito É revelado (feedback pós-resposta)
// ============================

type SubmitAnswerRequest struct {
	QuizAttemptID    string `json:"quiz_attempt_id" validate:"required,uuid"`
	QuizQuestionID   string `json:"quiz_question_id" validate:"required,uuid"`
	SelectedOptionID string `json:"selected_option_id" validate:"required,uuid"`
	TimeSpentSeconds int    `json:"time_spent_seconds" validate:"gte=0"`
}

type SubmitAnswerResponse struct {
	IsCorrect       bool   `json:"is_correct"`
	CorrectAnswerID string `json:"correct_answer_id"`
	Explanation     string `json:"explanation"`
}

// ============================
// Finish / GetResult — detalhe completo por pergunta respondida
// ============================

type FinishQuizRequest struct {
	QuizAttemptID    string `json:"quiz_attempt_id" validate:"required,uuid"`
	TotalTimeSeconds int    `json:"total_time_seconds" validate:"gte=0"`
}

type AnswerDetailDTO struct {
	QuestionText      string `json:"question_text"`
	UserAnswerText    string `json:"user_answer_text"`
	CorrectAnswerText string `json:"correct_answer_text"`
	IsCorrect         bool   `json:"is_correct"`
	Explanation       string `json:"explanation"`
}

type QuizResultResponse struct {
	QuizAttemptID          string            `json:"quiz_attempt_id"`
	Status                 string            `json:"status"`
	Score                  float64           `json:"score"`
	CorrectAnswers         int               `json:"correct_answers"`
	IncorrectAnswers       int               `json:"incorrect_answers"`
	TotalQuestions         int               `json:"total_questions"`
	TotalTimeSeconds       int               `json:"total_time_seconds"`
	CompletedAt            *time.Time        `json:"completed_at,omitempty"`
	Passed                 bool              `json:"passed"`
	CanGenerateCertificate bool              `json:"can_generate_certificate"`
	Details                []AnswerDetailDTO `json:"details"`
}

// ============================
// Histórico
// ============================

type AttemptSummaryDTO struct {
	QuizAttemptID    string     `json:"quiz_attempt_id"`
	Status           string     `json:"status"`
	Score            float64    `json:"score"`
	TotalQuestions   int        `json:"total_questions"`
	StartedAt        time.Time  `json:"started_at"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
	TotalTimeSeconds int        `json:"total_time_seconds"`
}

func ToAttemptSummaryDTO(a attemptModel.QuizAttemptModel) AttemptSummaryDTO {
	return AttemptSummaryDTO{
		QuizAttemptID:    a.QuizAttemptID.String(),
		Status:           a.QuizAttemptStatus,
		Score:            a.QuizAttemptScore,
		TotalQuestions:   a.QuizAttemptTotalQuestions,
		StartedAt:        a.QuizAttemptStartedAt,
		CompletedAt:      a.QuizAttemptCompletedAt,
		TotalTimeSeconds: a.QuizAttemptTotalTimeSeconds,
	}
}
