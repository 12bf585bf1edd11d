package apperr

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Kind classifica o erro de domínio independente do transporte HTTP.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindInvalidState
	KindConflict
	KindValidation
	KindDependency
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func NotFound(message string) *Error     { return New(KindNotFound, message) }
func InvalidState(message string) *Error { return New(KindInvalidState, message) }
func Conflict(message string) *Error     { return New(KindConflict, message) }
func Validation(message string) *Error   { return New(KindValidation, message) }
func Dependency(message string, err error) *Error {
	return Wrap(KindDependency, message, err)
}

func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return 0
}

func IsNotFound(err error) bool     { return KindOf(err) == KindNotFound }
func IsInvalidState(err error) bool { return KindOf(err) == KindInvalidState }
func IsConflict(err error) bool     { return KindOf(err) == KindConflict }

// HTTPStatus traduz o Kind para status HTTP. Erros sem Kind viram 500.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return fiber.StatusNotFound
	case KindInvalidState:
		return fiber.StatusUnprocessableEntity
	case KindConflict:
		return fiber.StatusConflict
	case KindValidation:
		return fiber.StatusBadRequest
	case KindDependency:
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
