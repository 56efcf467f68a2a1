package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	impController "github.com/jleandrodev/nextpage-sub000/internals/features/points/importacao/controller"
	"github.com/jleandrodev/nextpage-sub000/internals/middlewares"
)

// ImportAdminRoutes — upload e consulta de lotes (grupo admin, já autenticado)
func ImportAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := impController.NewImportController(db)

	imports := router.Group("/importacoes")
	imports.Post("/", middlewares.ImportRateLimiter(), ctrl.Upload)
	imports.Get("/", ctrl.List)
	imports.Get("/:id", ctrl.GetByID)
}
