package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "github.com/jleandrodev/nextpage-sub000/internals/features/users/auth/controller"
	"github.com/jleandrodev/nextpage-sub000/internals/middlewares"
)

// AuthPublicRoutes — login/refresh (rate limit agressivo no login)
func AuthPublicRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := router.Group("/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.LoginCliente)
	auth.Post("/login-admin", middlewares.LoginRateLimiter(), ctrl.LoginAdmin)
	auth.Post("/refresh", ctrl.Refresh)
}

// AuthUserRoutes — operações autenticadas
func AuthUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)
	router.Post("/auth/trocar-senha", ctrl.TrocarSenha)
}
