package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	lojistaController "github.com/jleandrodev/nextpage-sub000/internals/features/lojistas/lojista/controller"
)

// LojistaOwnerRoutes — gestão de tenants (só admin global)
func LojistaOwnerRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := lojistaController.NewLojistaController(db)

	lojistas := router.Group("/lojistas")
	lojistas.Post("/", ctrl.Create)
	lojistas.Get("/", ctrl.List)
	lojistas.Get("/:id", ctrl.GetByID)
	lojistas.Put("/:id", ctrl.Update)
	lojistas.Post("/:id/logo", ctrl.UploadLogo)
	lojistas.Delete("/:id", ctrl.Deactivate)
}
