package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"dengueapp_backend/internals/features/certificates/model"
)

// ErrActiveCertificateExists sinaliza violação do índice único parcial
// "um certificado ativo por usuário".
var ErrActiveCertificateExists = errors.New("usuário já possui certificado ativo")

// CertificateStore persiste certificados. Ausência é (nil, nil).
type CertificateStore interface {
	// WithinTx roda fn numa transação; o store passado a fn opera dentro dela.
	// A sequência check-existente → revogar → inserir do Generate precisa
	// disso para o invariante valer sob concorrência.
	WithinTx(ctx context.Context, fn func(tx CertificateStore) error) error

	// Create devolve ErrActiveCertificateExists quando o índice parcial barra.
	Create(ctx context.Context, cert *model.CertificateModel) error
	ByID(ctx context.Context, id uuid.UUID) (*model.CertificateModel, error)
	ByCode(ctx context.Context, code string) (*model.CertificateModel, error)
	ActiveByUser(ctx context.Context, userID uuid.UUID) (*model.CertificateModel, error)
	Update(ctx context.Context, cert *model.CertificateModel) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.CertificateModel, error)
}
