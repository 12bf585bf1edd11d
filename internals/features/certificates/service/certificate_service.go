package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"dengueapp_backend/internals/features/certificates/dto"
	"dengueapp_backend/internals/features/certificates/model"
	"dengueapp_backend/internals/features/certificates/repository"
	attemptRepo "dengueapp_backend/internals/features/quiz/attempts/repository"
	userService "dengueapp_backend/internals/features/users/user/service"
	"dengueapp_backend/internals/helpers/apperr"
	"dengueapp_backend/internals/platform/pdfgen"
)

// BlobStore é o storage de PDFs. Get devolve (nil, nil) quando o blob não existe.
// Delete é best-effort nos fluxos de supersessão.
type BlobStore interface {
	Put(ctx context.Context, data []byte, filename string) (string, error)
	Get(ctx context.Context, blobID string) ([]byte, error)
	Delete(ctx context.Context, blobID string) error
}

// PdfRenderer gera os bytes do certificado.
type PdfRenderer interface {
	Render(data pdfgen.CertificateData) ([]byte, error)
}

// ProfileLookup resolve nome/e-mail do dono do certificado.
type ProfileLookup interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (userService.Profile, error)
}

// EventPublisher publica eventos de domínio; falha nunca aborta a operação.
type EventPublisher interface {
	Publish(eventType string, payload interface{}) error
}

// CertificateService aplica a política de um-certificado-ativo-por-usuário,
// gera código de verificação, renderiza e armazena o PDF.
type CertificateService struct {
	Certs        repository.CertificateStore
	Attempts     attemptRepo.AttemptStore
	Users        ProfileLookup
	Blob         BlobStore
	Pdf          PdfRenderer
	Events       EventPublisher
	PassingScore float64
	CodeSalt     string
}

func NewCertificateService(
	certs repository.CertificateStore,
	attempts attemptRepo.AttemptStore,
	users ProfileLookup,
	blob BlobStore,
	pdf PdfRenderer,
	events EventPublisher,
	passingScore float64,
	codeSalt string,
) *CertificateService {
	return &CertificateService{
		Certs:        certs,
		Attempts:     attempts,
		Users:        users,
		Blob:         blob,
		Pdf:          pdf,
		Events:       events,
		PassingScore: passingScore,
		CodeSalt:     codeSalt,
	}
}

// =============================
// Generate
// =============================

// Generate emite o certificado da tentativa, aplicando a política:
//   - sem certificado ativo → emite
//   - ativo da MESMA tentativa → devolve o existente (idempotente)
//   - ativo de outra tentativa com nota MENOR → revoga o antigo (apaga o PDF
//     best-effort) e emite o novo
//   - ativo com nota maior ou igual → Conflict
//
// A sequência inteira roda numa transação; o índice único parcial segura
// corridas entre dois Generate do mesmo usuário.
func (s *CertificateService) Generate(ctx context.Context, userID, attemptID uuid.UUID) (*dto.CertificateDTO, error) {
	attempt, err := s.Attempts.ByID(ctx, attemptID)
	if err != nil {
		return nil, err
	}
	if attempt == nil || attempt.QuizAttemptUserID != userID {
		return nil, apperr.NotFound("Tentativa não encontrada")
	}
	if !attempt.IsCompleted() {
		return nil, apperr.InvalidState("Tentativa ainda não finalizada")
	}
	if attempt.QuizAttemptScore < s.PassingScore {
		return nil, apperr.InvalidState(fmt.Sprintf(
			"Nota %.1f abaixo da mínima de %.1f para emitir certificado",
			attempt.QuizAttemptScore, s.PassingScore))
	}

	profile, err := s.Users.GetProfile(ctx, attempt.QuizAttemptUserID)
	if err != nil {
		return nil, err
	}

	var issued *model.CertificateModel
	var newlyIssued bool
	var supersededBlobID string

	txErr := s.Certs.WithinTx(ctx, func(tx repository.CertificateStore) error {
		existing, err := tx.ActiveByUser(ctx, attempt.QuizAttemptUserID)
		if err != nil {
			return err
		}

		if existing != nil {
			if existing.CertificateAttemptID == attemptID {
				// re-pedido da mesma tentativa: devolve o existente, sem nova emissão
				issued = existing
				return nil
			}
			if attempt.QuizAttemptScore <= existing.CertificateScore {
				return apperr.Conflict(fmt.Sprintf(
					"Certificado ativo %s com nota %.1f bloqueia a emissão (nova nota %.1f não é maior)",
					existing.CertificateID, existing.CertificateScore, attempt.QuizAttemptScore))
			}

			// supersessão: nota estritamente maior revoga o antigo
			now := time.Now()
			existing.CertificateStatus = model.CertificateStatusRevoked
			existing.CertificateRevokedAt = &now
			existing.CertificateRevokeReason = "Substituído por tentativa com nota maior"
			if err := tx.Update(ctx, existing); err != nil {
				return err
			}
			supersededBlobID = existing.CertificatePdfURL
		}

		now := time.Now()
		code := GenerateVerificationCode(attempt.QuizAttemptUserID, attemptID, now, s.CodeSalt)

		pdfBytes, err := s.Pdf.Render(pdfgen.CertificateData{
			UserName:         profile.Name,
			UserEmail:        profile.Email,
			Score:            attempt.QuizAttemptScore,
			TotalQuestions:   attempt.QuizAttemptTotalQuestions,
			CorrectAnswers:   attempt.QuizAttemptCorrectAnswers,
			IssuedAt:         now,
			VerificationCode: code,
		})
		if err != nil {
			return apperr.Dependency("Falha ao gerar PDF do certificado", err)
		}

		// upload ANTES do insert: linha nunca aponta para blob inexistente
		filename := fmt.Sprintf("certificado_%s_%d.pdf", attempt.QuizAttemptUserID, now.Unix())
		blobID, err := s.Blob.Put(ctx, pdfBytes, filename)
		if err != nil {
			return apperr.Dependency("Falha ao armazenar PDF do certificado", err)
		}

		cert := &model.CertificateModel{
			CertificateUserID:           attempt.QuizAttemptUserID,
			CertificateAttemptID:        attemptID,
			CertificateVerificationCode: code,
			CertificateScore:            attempt.QuizAttemptScore,
			CertificateStatus:           model.CertificateStatusActive,
			CertificatePdfURL:           blobID,
			CertificateIssuedAt:         now,
		}
		if err := tx.Create(ctx, cert); err != nil {
			// insert barrado: não deixar blob órfão
			if delErr := s.Blob.Delete(ctx, blobID); delErr != nil {
				log.Printf("[WARN] Falha ao limpar blob órfão %s: %v", blobID, delErr)
			}
			if err == repository.ErrActiveCertificateExists {
				return apperr.Conflict("Usuário já possui certificado ativo")
			}
			return err
		}
		issued = cert
		newlyIssued = true
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	// limpeza best-effort do PDF substituído (fora da transação)
	if supersededBlobID != "" {
		if err := s.Blob.Delete(ctx, supersededBlobID); err != nil {
			log.Printf("[WARN] Falha ao apagar PDF substituído %s: %v", supersededBlobID, err)
		}
	}

	if s.Events != nil && newlyIssued {
		if err := s.Events.Publish("certificate.issued", map[string]interface{}{
			"certificate_id":    issued.CertificateID.String(),
			"user_id":           issued.CertificateUserID.String(),
			"verification_code": issued.CertificateVerificationCode,
			"score":             issued.CertificateScore,
		}); err != nil {
			log.Printf("[WARN] Falha ao publicar evento certificate.issued: %v", err)
		}
	}

	out := dto.ToCertificateDTO(*issued, profile.Name, profile.Email)
	return &out, nil
}

// =============================
// Verify
// =============================

// Verify é consulta pura: código desconhecido devolve is_valid=false em vez
// de erro, e distingue "não encontrado" de "encontrado porém revogado".
func (s *CertificateService) Verify(ctx context.Context, code string) (*dto.VerifyCertificateResponse, error) {
	cert, err := s.Certs.ByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if cert == nil {
		return &dto.VerifyCertificateResponse{
			IsValid:          false,
			Message:          "Código de verificação não encontrado",
			VerificationCode: code,
		}, nil
	}

	profile, err := s.Users.GetProfile(ctx, cert.CertificateUserID)
	if err != nil && !apperr.IsNotFound(err) {
		return nil, err
	}

	resp := &dto.VerifyCertificateResponse{
		VerificationCode: cert.CertificateVerificationCode,
		UserName:         profile.Name,
		Score:            &cert.CertificateScore,
		IssuedAt:         &cert.CertificateIssuedAt,
		Status:           cert.CertificateStatus,
	}
	if cert.IsActive() {
		resp.IsValid = true
		resp.Message = "Certificado válido"
	} else {
		resp.IsValid = false
		resp.Message = "Certificado revogado"
	}
	return resp, nil
}

// =============================
// Revoke (admin)
// =============================

// Revoke marca o certificado como revogado. O PDF NÃO é apagado aqui;
// só a supersessão por nota maior tenta apagar o arquivo antigo.
func (s *CertificateService) Revoke(ctx context.Context, certificateID uuid.UUID, reason string) (*dto.CertificateDTO, error) {
	cert, err := s.Certs.ByID(ctx, certificateID)
	if err != nil {
		return nil, err
	}
	if cert == nil {
		return nil, apperr.NotFound("Certificado não encontrado")
	}
	if !cert.IsActive() {
		return nil, apperr.InvalidState("Certificado já está revogado")
	}

	now := time.Now()
	cert.CertificateStatus = model.CertificateStatusRevoked
	cert.CertificateRevokedAt = &now
	cert.CertificateRevokeReason = reason
	if err := s.Certs.Update(ctx, cert); err != nil {
		return nil, err
	}

	log.Printf("[INFO] Certificado %s revogado: %s", certificateID, reason)

	out := dto.ToCertificateDTO(*cert, "", "")
	return &out, nil
}

// =============================
// Download
// =============================

// Download devolve os bytes do PDF. userID == uuid.Nil pula a checagem de
// dono (caminho usado pelo admin).
func (s *CertificateService) Download(ctx context.Context, userID, certificateID uuid.UUID) ([]byte, string, error) {
	cert, err := s.Certs.ByID(ctx, certificateID)
	if err != nil {
		return nil, "", err
	}
	if cert == nil {
		return nil, "", apperr.NotFound("Certificado não encontrado")
	}
	if userID != uuid.Nil && cert.CertificateUserID != userID {
		return nil, "", apperr.NotFound("Certificado não encontrado")
	}
	if !cert.IsActive() {
		return nil, "", apperr.InvalidState("Certificado revogado não pode ser baixado")
	}

	data, err := s.Blob.Get(ctx, cert.CertificatePdfURL)
	if err != nil {
		return nil, "", apperr.Dependency("Falha ao buscar PDF do certificado", err)
	}
	if data == nil {
		return nil, "", apperr.NotFound("Arquivo do certificado não encontrado")
	}

	filename := fmt.Sprintf("certificado_%s.pdf", cert.CertificateVerificationCode)
	return data, filename, nil
}

// =============================
// Listagem do usuário
// =============================

func (s *CertificateService) ListByUser(ctx context.Context, userID uuid.UUID) ([]dto.CertificateDTO, error) {
	certs, err := s.Certs.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CertificateDTO, 0, len(certs))
	for _, c := range certs {
		out = append(out, dto.ToCertificateDTO(c, "", ""))
	}
	return out, nil
}
