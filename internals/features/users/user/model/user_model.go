package model

import (
	"time"

	"github.com/google/uuid"
)

type UserModel struct {
	UserID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_id" json:"user_id"`
	UserName     string    `gorm:"type:varchar(100);not null;column:user_name" json:"user_name"`
	UserEmail    string    `gorm:"type:varchar(255);not null;unique;column:user_email" json:"user_email"`
	UserPassword string    `gorm:"type:text;not null;column:user_password" json:"-"`
	UserRole     string    `gorm:"type:varchar(20);not null;default:'user';column:user_role" json:"user_role"`
	UserIsActive bool      `gorm:"not null;default:true;column:user_is_active" json:"user_is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}
