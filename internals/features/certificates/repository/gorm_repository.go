package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dengueapp_backend/internals/features/certificates/model"
	helper "dengueapp_backend/internals/helpers"
)

type GormCertificateStore struct {
	DB *gorm.DB
}

func NewGormCertificateStore(db *gorm.DB) *GormCertificateStore {
	return &GormCertificateStore{DB: db}
}

func (r *GormCertificateStore) WithinTx(ctx context.Context, fn func(tx CertificateStore) error) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormCertificateStore{DB: tx})
	})
}

func (r *GormCertificateStore) Create(ctx context.Context, cert *model.CertificateModel) error {
	if err := r.DB.WithContext(ctx).Create(cert).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return ErrActiveCertificateExists
		}
		return err
	}
	return nil
}

func (r *GormCertificateStore) ByID(ctx context.Context, id uuid.UUID) (*model.CertificateModel, error) {
	var cert model.CertificateModel
	err := r.DB.WithContext(ctx).First(&cert, "certificate_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cert, nil
}

func (r *GormCertificateStore) ByCode(ctx context.Context, code string) (*model.CertificateModel, error) {
	var cert model.CertificateModel
	err := r.DB.WithContext(ctx).First(&cert, "certificate_verification_code = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cert, nil
}

func (r *GormCertificateStore) ActiveByUser(ctx context.Context, userID uuid.UUID) (*model.CertificateModel, error) {
	var cert model.CertificateModel
	err := r.DB.WithContext(ctx).
		First(&cert, "certificate_user_id = ? AND certificate_status = ?", userID, model.CertificateStatusActive).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cert, nil
}

func (r *GormCertificateStore) Update(ctx context.Context, cert *model.CertificateModel) error {
	return r.DB.WithContext(ctx).Save(cert).Error
}

func (r *GormCertificateStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.CertificateModel, error) {
	var certs []model.CertificateModel
	if err := r.DB.WithContext(ctx).
		Where("certificate_user_id = ?", userID).
		Order("certificate_issued_at DESC").
		Find(&certs).Error; err != nil {
		return nil, err
	}
	return certs, nil
}
