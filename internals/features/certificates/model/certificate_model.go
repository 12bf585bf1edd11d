package model

import (
	"time"

	"github.com/google/uuid"
)

// Status do certificado. Revogado é estado terminal; nunca há hard-delete.
const (
	CertificateStatusActive  = "active"
	CertificateStatusRevoked = "revoked"
)

// Invariante: no máximo UM certificado ativo por usuário. Garantido por
// índice único parcial criado na migração:
//
//	CREATE UNIQUE INDEX uq_certificates_active_per_user
//	ON certificates (certificate_user_id)
//	WHERE certificate_status = 'active';
type CertificateModel struct {
	CertificateID               uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:certificate_id" json:"certificate_id"`
	CertificateUserID           uuid.UUID  `gorm:"type:uuid;not null;index;column:certificate_user_id" json:"certificate_user_id"`
	CertificateAttemptID        uuid.UUID  `gorm:"type:uuid;not null;column:certificate_attempt_id" json:"certificate_attempt_id"`
	CertificateVerificationCode string     `gorm:"type:varchar(32);not null;unique;column:certificate_verification_code" json:"certificate_verification_code"`
	CertificateScore            float64    `gorm:"type:numeric(5,2);not null;column:certificate_score" json:"certificate_score"`
	CertificateStatus           string     `gorm:"type:varchar(20);not null;default:'active';column:certificate_status" json:"certificate_status"`
	CertificatePdfURL           string     `gorm:"type:text;not null;column:certificate_pdf_url" json:"certificate_pdf_url"`
	CertificateIssuedAt         time.Time  `gorm:"not null;default:current_timestamp;column:certificate_issued_at" json:"certificate_issued_at"`
	CertificateRevokedAt        *time.Time `gorm:"column:certificate_revoked_at" json:"certificate_revoked_at,omitempty"`
	CertificateRevokeReason     string     `gorm:"type:text;column:certificate_revoke_reason" json:"certificate_revoke_reason,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (CertificateModel) TableName() string {
	return "certificates"
}

func (c CertificateModel) IsActive() bool {
	return c.CertificateStatus == CertificateStatusActive
}
