package model

import (
	"time"

	"github.com/google/uuid"
)

type QuizCategoryModel struct {
	QuizCategoryID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:quiz_category_id" json:"quiz_category_id"`
	QuizCategoryName        string    `gorm:"type:varchar(100);not null;column:quiz_category_name" json:"quiz_category_name"`
	QuizCategoryDescription string    `gorm:"type:text;column:quiz_category_description" json:"quiz_category_description"`
	QuizCategoryIsActive    bool      `gorm:"not null;default:true;column:quiz_category_is_active" json:"quiz_category_is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (QuizCategoryModel) TableName() string {
	return "quiz_categories"
}
