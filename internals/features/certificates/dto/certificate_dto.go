package dto

import (
	"time"

	"dengueapp_backend/internals/features/certificates/model"
)

// ============================
// Response DTOs
// ============================

type CertificateDTO struct {
	CertificateID    string     `json:"certificate_id"`
	VerificationCode string     `json:"verification_code"`
	Score            float64    `json:"score"`
	Status           string     `json:"status"`
	PdfURL           string     `json:"pdf_url"`
	IssuedAt         time.Time  `json:"issued_at"`
	RevokedAt        *time.Time `json:"revoked_at,omitempty"`
	UserName         string     `json:"user_name,omitempty"`
	UserEmail        string     `json:"user_email,omitempty"`
}

// VerifyCertificateResponse nunca é erro: código desconhecido vira is_valid=false.
type VerifyCertificateResponse struct {
	IsValid          bool       `json:"is_valid"`
	Message          string     `json:"message"`
	VerificationCode string     `json:"verification_code"`
	UserName         string     `json:"user_name,omitempty"`
	Score            *float64   `json:"score,omitempty"`
	IssuedAt         *time.Time `json:"issued_at,omitempty"`
	Status           string     `json:"status,omitempty"`
}

// ============================
// Request DTOs
// ============================

type GenerateCertificateRequest struct {
	QuizAttemptID string `json:"quiz_attempt_id" validate:"required,uuid"`
}

type RevokeCertificateRequest struct {
	Reason string `json:"reason" validate:"required,min=3"`
}

// ============================
// Converter
// ============================

func ToCertificateDTO(m model.CertificateModel, userName, userEmail string) CertificateDTO {
	return CertificateDTO{
		CertificateID:    m.CertificateID.String(),
		VerificationCode: m.CertificateVerificationCode,
		Score:            m.CertificateScore,
		Status:           m.CertificateStatus,
		PdfURL:           m.CertificatePdfURL,
		IssuedAt:         m.CertificateIssuedAt,
		RevokedAt:        m.CertificateRevokedAt,
		UserName:         userName,
		UserEmail:        userEmail,
	}
}
