package model

import (
	"time"

	"github.com/google/uuid"
)

type QuizAnswerOptionModel struct {
	QuizAnswerOptionID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:quiz_answer_option_id" json:"quiz_answer_option_id"`
	QuizAnswerOptionQuestionID uuid.UUID `gorm:"type:uuid;not null;index;column:quiz_answer_option_question_id" json:"quiz_answer_option_question_id"`
	QuizAnswerOptionText       string    `gorm:"type:text;not null;column:quiz_answer_option_text" json:"quiz_answer_option_text"`
	QuizAnswerOptionIsCorrect  bool      `gorm:"not null;default:false;column:quiz_answer_option_is_correct" json:"quiz_answer_option_is_correct"`
	QuizAnswerOptionOrder      int       `gorm:"not null;default:0;column:quiz_answer_option_order" json:"quiz_answer_option_order"`

	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
}

func (QuizAnswerOptionModel) TableName() string {
	return "quiz_answer_options"
}
