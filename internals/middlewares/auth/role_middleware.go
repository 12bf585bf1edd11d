package auth

import (
	"github.com/gofiber/fiber/v2"

	"dengueapp_backend/internals/constants"
)

// OnlyRoles libera a rota apenas para as roles informadas.
func OnlyRoles(feature string, roles ...string) fiber.Handler {
	return onlyRoles(constants.RoleErrorAdmin(feature), roles...)
}

func OnlyAdmin(feature string) fiber.Handler {
	return OnlyRoles(feature, constants.RoleAdmin)
}

// OnlyStaff libera a rota para admin e agente de saúde.
func OnlyStaff(feature string) fiber.Handler {
	return onlyRoles(constants.RoleErrorAgent(feature), constants.RoleAdmin, constants.RoleAgent)
}

func onlyRoles(message string, roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		if _, ok := allowed[role]; !ok {
			return fiber.NewError(fiber.StatusForbidden, message)
		}
		return c.Next()
	}
}
