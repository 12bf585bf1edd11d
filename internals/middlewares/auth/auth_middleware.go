// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"dengueapp_backend/internals/configs"
)

// AuthMiddleware valida o Bearer token e guarda user_id/role nos Locals.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			return fiber.NewError(fiber.StatusInternalServerError, "JWT Secret ausente")
		}

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("método de assinatura inesperado")
			}
			return []byte(secretKey), nil
		})
		if err != nil || !token.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token inválido ou expirado")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Claims inválidas")
		}

		userID, _ := claims["sub"].(string)
		if userID == "" {
			// compat com tokens antigos que usavam "user_id"
			userID, _ = claims["user_id"].(string)
		}
		if userID == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - user_id ausente no token")
		}

		role, _ := claims["role"].(string)

		c.Locals("user_id", userID)
		c.Locals("role", role)

		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") && parts[1] != "" {
			return parts[1], nil
		}
		return "", errors.New("header Authorization malformado")
	}

	// fallback: cookie (app mobile usa header, web usa cookie)
	if tok := c.Cookies("access_token"); tok != "" {
		return tok, nil
	}
	return "", errors.New("token de acesso ausente")
}
