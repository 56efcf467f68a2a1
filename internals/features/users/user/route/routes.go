package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "github.com/jleandrodev/nextpage-sub000/internals/features/users/user/controller"
)

// UserSelfRoutes — perfil do cliente autenticado
func UserSelfRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)
	router.Get("/me", ctrl.Me)
	router.Put("/me", ctrl.UpdateMe)
}

// UserAdminRoutes — gestão de clientes pelo lojista
func UserAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	clientes := router.Group("/clientes")
	clientes.Get("/", ctrl.ListByLojista)
	clientes.Get("/:cpf", ctrl.GetByCPF)
	clientes.Patch("/:cpf/status", ctrl.ToggleStatus)
}
