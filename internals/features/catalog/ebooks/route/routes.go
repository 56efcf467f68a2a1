package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ebookController "github.com/jleandrodev/nextpage-sub000/internals/features/catalog/ebooks/controller"
)

// EbookUserRoutes — catálogo visível para o cliente autenticado
func EbookUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := ebookController.NewEbookController(db)
	router.Get("/ebooks", ctrl.Catalogo)
}

// EbookAdminRoutes — gestão do catálogo pelo lojista
func EbookAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := ebookController.NewEbookController(db)

	ebooks := router.Group("/ebooks")
	ebooks.Post("/", ctrl.Create)
	ebooks.Get("/", ctrl.ListAdmin)
	ebooks.Put("/:id", ctrl.Update)
	ebooks.Post("/:id/capa", ctrl.UploadCapa)
	ebooks.Post("/:id/arquivo", ctrl.UploadArquivo)
	ebooks.Delete("/:id", ctrl.Deactivate)
}
