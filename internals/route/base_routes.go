package route

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "github.com/jleandrodev/nextpage-sub000/internals/helpers"
)

var startTime = time.Now()

// BaseRoutes — endpoints de infra (sem auth)
func BaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "ok"
		if sqlDB, err := db.DB(); err != nil {
			dbStatus = "error"
		} else if err := sqlDB.Ping(); err != nil {
			dbStatus = "error"
		}

		status := fiber.StatusOK
		if dbStatus != "ok" {
			status = fiber.StatusServiceUnavailable
		}

		return c.Status(status).JSON(fiber.Map{
			"status":   dbStatus,
			"uptime":   time.Since(startTime).Round(time.Second).String(),
			"database": dbStatus,
		})
	})

	app.Get("/", func(c *fiber.Ctx) error {
		return helper.JsonOK(c, "NextPage API", fiber.Map{"versao": "1.0"})
	})
}
