package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	resgateController "github.com/jleandrodev/nextpage-sub000/internals/features/points/resgate/controller"
)

// ResgateUserRoutes — grupo cliente (JWT já aplicado pelo grupo)
func ResgateUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := resgateController.NewResgateController(db)

	router.Post("/ebooks/:id/resgatar", ctrl.Resgatar)
	router.Post("/ebooks/:id/download", ctrl.Download)
	router.Get("/resgates", ctrl.MeusResgates)
}
