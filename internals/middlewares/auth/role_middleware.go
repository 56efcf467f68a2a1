package auth

import (
	"github.com/gofiber/fiber/v2"

	helper "github.com/jleandrodev/nextpage-sub000/internals/helpers"
	"github.com/jleandrodev/nextpage-sub000/internals/constants"
)

// RequireRoles bloqueia a rota para quem não tiver um dos papéis exigidos.
func RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := helper.GetRoleFromToken(c)
		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, "Sem permissão para este recurso")
	}
}

// IsAdmin: admin global ou admin de lojista
func IsAdmin() fiber.Handler {
	return RequireRoles(constants.RoleAdmin, constants.RoleLojista)
}

// IsCliente: usuário final (quem resgata pontos)
func IsCliente() fiber.Handler {
	return RequireRoles(constants.RoleCliente)
}
