package middlewares

import (
	"github.com/gofiber/fiber/v2"
)

// SetupMiddlewares registra a pilha padrão (ordem importa: recover primeiro).
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
