package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	histController "github.com/jleandrodev/nextpage-sub000/internals/features/points/history/controller"
)

func HistoryUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := histController.NewPointsHistoryController(db)
	router.Get("/extrato", ctrl.Extrato)
}

func HistoryAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := histController.NewPointsHistoryController(db)
	router.Get("/importacoes/:id/historico", ctrl.PorImportacao)
}
