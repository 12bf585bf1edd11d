package model

import (
	"time"

	"github.com/google/uuid"
)

type QuizQuestionModel struct {
	QuizQuestionID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:quiz_question_id" json:"quiz_question_id"`
	QuizQuestionCategoryID  uuid.UUID `gorm:"type:uuid;not null;index;column:quiz_question_category_id" json:"quiz_question_category_id"`
	QuizQuestionText        string    `gorm:"type:text;not null;column:quiz_question_text" json:"quiz_question_text"`
	QuizQuestionExplanation string    `gorm:"type:text;column:quiz_question_explanation" json:"quiz_question_explanation"`
	QuizQuestionDifficulty  int       `gorm:"not null;default:1;column:quiz_question_difficulty" json:"quiz_question_difficulty"`
	QuizQuestionPoints      int       `gorm:"not null;default:10;column:quiz_question_points" json:"quiz_question_points"`
	QuizQuestionIsActive    bool      `gorm:"not null;default:true;column:quiz_question_is_active" json:"quiz_question_is_active"`

	// Opções carregadas via Preload
	Options []QuizAnswerOptionModel `gorm:"foreignKey:QuizAnswerOptionQuestionID;references:QuizQuestionID" json:"options,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (QuizQuestionModel) TableName() string {
	return "quiz_questions"
}

// CorrectOption devolve a opção correta (invariante: exatamente uma por pergunta).
func (q QuizQuestionModel) CorrectOption() *QuizAnswerOptionModel {
	for i := range q.Options {
		if q.Options[i].QuizAnswerOptionIsCorrect {
			return &q.Options[i]
		}
	}
	return nil
}

// OptionByID localiza uma opção pertencente a esta pergunta.
func (q QuizQuestionModel) OptionByID(id uuid.UUID) *QuizAnswerOptionModel {
	for i := range q.Options {
		if q.Options[i].QuizAnswerOptionID == id {
			return &q.Options[i]
		}
	}
	return nil
}
