package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dengueapp_backend/internals/features/users/user/model"
	"dengueapp_backend/internals/helpers/apperr"
)

// Profile é a projeção mínima que o quiz e o certificado precisam do usuário.
type Profile struct {
	Name  string
	Email string
}

// IdentityService resolve existência e perfil de usuário para os demais módulos.
type IdentityService struct {
	DB *gorm.DB
}

func NewIdentityService(db *gorm.DB) *IdentityService {
	return &IdentityService{DB: db}
}

func (s *IdentityService) Exists(ctx context.Context, userID uuid.UUID) (bool, error) {
	var count int64
	err := s.DB.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("user_id = ? AND user_is_active = TRUE", userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *IdentityService) GetProfile(ctx context.Context, userID uuid.UUID) (Profile, error) {
	var u model.UserModel
	err := s.DB.WithContext(ctx).
		Select("user_name", "user_email").
		First(&u, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Profile{}, apperr.NotFound("Usuário não encontrado")
	}
	if err != nil {
		return Profile{}, err
	}
	return Profile{Name: u.UserName, Email: u.UserEmail}, nil
}
