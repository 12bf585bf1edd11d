package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"dengueapp_backend/internals/constants"
)

func roleApp(role string, guard fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Get("/recurso", func(c *fiber.Ctx) error {
		c.Locals("role", role)
		return c.Next()
	}, guard, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestOnlyAdmin(t *testing.T) {
	cases := []struct {
		role string
		want int
	}{
		{constants.RoleAdmin, fiber.StatusOK},
		{constants.RoleAgent, fiber.StatusForbidden},
		{constants.RoleUser, fiber.StatusForbidden},
		{"", fiber.StatusForbidden},
	}
	for _, tc := range cases {
		app := roleApp(tc.role, OnlyAdmin("usuários"))
		resp, err := app.Test(httptest.NewRequest("GET", "/recurso", nil))
		if err != nil {
			t.Fatalf("role %q: %v", tc.role, err)
		}
		if resp.StatusCode != tc.want {
			t.Errorf("role %q: status = %d, esperado %d", tc.role, resp.StatusCode, tc.want)
		}
	}
}

func TestOnlyStaff(t *testing.T) {
	cases := []struct {
		role string
		want int
	}{
		{constants.RoleAdmin, fiber.StatusOK},
		{constants.RoleAgent, fiber.StatusOK},
		{constants.RoleUser, fiber.StatusForbidden},
		{"", fiber.StatusForbidden},
	}
	for _, tc := range cases {
		app := roleApp(tc.role, OnlyStaff("usuários"))
		resp, err := app.Test(httptest.NewRequest("GET", "/recurso", nil))
		if err != nil {
			t.Fatalf("role %q: %v", tc.role, err)
		}
		if resp.StatusCode != tc.want {
			t.Errorf("role %q: status = %d, esperado %d", tc.role, resp.StatusCode, tc.want)
		}
	}
}
