package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Status da tentativa. Não existe transição saindo de completed/abandoned.
const (
	AttemptStatusInProgress = "in_progress"
	AttemptStatusCompleted  = "completed"
	AttemptStatusAbandoned  = "abandoned"
)

type QuizAttemptModel struct {
	QuizAttemptID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:quiz_attempt_id" json:"quiz_attempt_id"`
	QuizAttemptUserID uuid.UUID `gorm:"type:uuid;not null;index;column:quiz_attempt_user_id" json:"quiz_attempt_user_id"`
	QuizAttemptStatus string    `gorm:"type:varchar(20);not null;default:'in_progress';column:quiz_attempt_status" json:"quiz_attempt_status"`

	// Perguntas sorteadas na abertura (ids), na ordem apresentada
	QuizAttemptQuestionIDs datatypes.JSON `gorm:"type:jsonb;column:quiz_attempt_question_ids" json:"quiz_attempt_question_ids"`

	QuizAttemptTotalQuestions   int        `gorm:"not null;column:quiz_attempt_total_questions" json:"quiz_attempt_total_questions"`
	QuizAttemptScore            float64    `gorm:"type:numeric(5,2);not null;default:0;column:quiz_attempt_score" json:"quiz_attempt_score"`
	QuizAttemptCorrectAnswers   int        `gorm:"not null;default:0;column:quiz_attempt_correct_answers" json:"quiz_attempt_correct_answers"`
	QuizAttemptIncorrectAnswers int        `gorm:"not null;default:0;column:quiz_attempt_incorrect_answers" json:"quiz_attempt_incorrect_answers"`
	QuizAttemptTotalTimeSeconds int        `gorm:"not null;default:0;column:quiz_attempt_total_time_seconds" json:"quiz_attempt_total_time_seconds"`
	QuizAttemptStartedAt        time.Time  `gorm:"not null;default:current_timestamp;column:quiz_attempt_started_at" json:"quiz_attempt_started_at"`
	QuizAttemptCompletedAt      *time.Time `gorm:"column:quiz_attempt_completed_at" json:"quiz_attempt_completed_at,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (QuizAttemptModel) TableName() string {
	return "quiz_attempts"
}

func (a QuizAttemptModel) IsInProgress() bool {
	return a.QuizAttemptStatus == AttemptStatusInProgress
}

func (a QuizAttemptModel) IsCompleted() bool {
	return a.QuizAttemptStatus == AttemptStatusCompleted
}
