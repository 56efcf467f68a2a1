package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Chaves usadas em c.Locals pelo middleware de auth
const (
	LocUserID    = "user_id"
	LocLojistaID = "lojista_id"
	LocRole      = "role"
)

// GetUserIDFromToken lê o user_id hidratado pelo middleware JWT.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw := c.Locals(LocUserID)
	if raw == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Não autenticado")
	}
	switch v := raw.(type) {
	case uuid.UUID:
		return v, nil
	case string:
		id, err := uuid.Parse(v)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "user_id inválido no token")
		}
		return id, nil
	default:
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "user_id inválido no token")
	}
}

// GetLojistaIDFromToken lê o escopo de lojista do token (admins de lojista).
func GetLojistaIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw := c.Locals(LocLojistaID)
	s, ok := raw.(string)
	if !ok || s == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "Token sem escopo de lojista")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "lojista_id inválido no token")
	}
	return id, nil
}

func GetRoleFromToken(c *fiber.Ctx) string {
	if s, ok := c.Locals(LocRole).(string); ok {
		return s
	}
	return ""
}
