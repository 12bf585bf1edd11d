package model

import (
	"time"

	"github.com/google/uuid"

	questionModel "dengueapp_backend/internals/features/quiz/questions/model"
)

// Índice único composto: uma resposta por (tentativa, pergunta). A checagem
// em aplicação existe só para dar mensagem melhor; quem segura a corrida é
// o banco.
type QuizUserAnswerModel struct {
	QuizUserAnswerID               uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:quiz_user_answer_id" json:"quiz_user_answer_id"`
	QuizUserAnswerAttemptID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_quiz_user_answer_attempt_question;column:quiz_user_answer_attempt_id" json:"quiz_user_answer_attempt_id"`
	QuizUserAnswerQuestionID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_quiz_user_answer_attempt_question;column:quiz_user_answer_question_id" json:"quiz_user_answer_question_id"`
	QuizUserAnswerSelectedOptionID uuid.UUID `gorm:"type:uuid;not null;column:quiz_user_answer_selected_option_id" json:"quiz_user_answer_selected_option_id"`
	QuizUserAnswerIsCorrect        bool      `gorm:"not null;column:quiz_user_answer_is_correct" json:"quiz_user_answer_is_correct"`
	QuizUserAnswerTimeSpentSeconds int       `gorm:"not null;default:0;column:quiz_user_answer_time_spent_seconds" json:"quiz_user_answer_time_spent_seconds"`

	// Snapshot textual para o relatório final sobreviver a edições da pergunta
	QuizUserAnswerQuestionText string `gorm:"type:text;not null;column:quiz_user_answer_question_text" json:"quiz_user_answer_question_text"`
	QuizUserAnswerSelectedText string `gorm:"type:text;not null;column:quiz_user_answer_selected_text" json:"quiz_user_answer_selected_text"`
	QuizUserAnswerCorrectText  string `gorm:"type:text;not null;column:quiz_user_answer_correct_text" json:"quiz_user_answer_correct_text"`
	QuizUserAnswerExplanation  string `gorm:"type:text;column:quiz_user_answer_explanation" json:"quiz_user_answer_explanation"`

	Question *questionModel.QuizQuestionModel `gorm:"foreignKey:QuizUserAnswerQuestionID;references:QuizQuestionID" json:"question,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
}

func (QuizUserAnswerModel) TableName() string {
	return "quiz_user_answers"
}
