package helper

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// Códigos SQLSTATE que interessam aqui.
const (
	pgUniqueViolation = "23505"
	pgFKViolation     = "23503"
)

// IsUniqueViolation detecta violação de índice único vinda do driver pgx ou lib/pq.
func IsUniqueViolation(err error) bool {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code == pgUniqueViolation
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgUniqueViolation
	}
	return false
}

func MapPGError(err error) (int, string) {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		switch pgxErr.Code {
		case pgFKViolation:
			return http.StatusBadRequest, "Referência não encontrada (violação de FK)."
		case pgUniqueViolation:
			return http.StatusConflict, "Registro duplicado (violação de unicidade)."
		default:
			return http.StatusInternalServerError, pgxErr.Message
		}
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pgFKViolation:
			return http.StatusBadRequest, "Referência não encontrada (violação de FK)."
		case pgUniqueViolation:
			return http.StatusConflict, "Registro duplicado (violação de unicidade)."
		default:
			return http.StatusInternalServerError, pqErr.Error()
		}
	}
	return http.StatusInternalServerError, err.Error()
}

func WritePGError(c *fiber.Ctx, err error) error {
	code, msg := MapPGError(err)
	return Error(c, code, msg)
}
