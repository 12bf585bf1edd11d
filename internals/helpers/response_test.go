package helper

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"dengueapp_backend/internals/helpers/apperr"
)

func TestFromAppErrorHidesWrappedCause(t *testing.T) {
	app := fiber.New()
	app.Get("/falha", func(c *fiber.Ctx) error {
		cause := errors.New("dial tcp 10.0.0.5:5672: connection refused")
		return FromAppError(c, apperr.Dependency("Falha ao armazenar PDF do certificado", cause))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/falha", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusBadGateway {
		t.Errorf("status = %d, esperado %d", resp.StatusCode, fiber.StatusBadGateway)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(raw), "connection refused") {
		t.Errorf("corpo expõe a causa interna: %s", raw)
	}

	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatal(err)
	}
	if body.Message != "Falha ao armazenar PDF do certificado" {
		t.Errorf("message = %q", body.Message)
	}
}

func TestFromAppErrorPlainError(t *testing.T) {
	app := fiber.New()
	app.Get("/falha", func(c *fiber.Ctx) error {
		return FromAppError(c, errors.New("algo deu errado"))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/falha", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Errorf("status = %d, esperado %d", resp.StatusCode, fiber.StatusInternalServerError)
	}
}
