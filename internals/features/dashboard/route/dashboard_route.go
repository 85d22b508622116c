package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/brunosimionato/API-edusystem/internals/features/dashboard/controller"
)

func DashboardRoutes(router fiber.Router, db *gorm.DB) {
	ctl := controller.NewDashboardController(db)
	router.Get("/dashboard", ctl.Resumo)
}
