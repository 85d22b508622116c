package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/brunosimionato/API-edusystem/internals/features/academics/turmas/controller"
)

func TurmaRoutes(router fiber.Router, db *gorm.DB, validate *validator.Validate) {
	ctl := controller.NewTurmaController(db, validate)

	turmas := router.Group("/turmas")
	turmas.Get("/", ctl.List)
	turmas.Get("/:id", ctl.GetByID)
	turmas.Post("/", ctl.Create)
	turmas.Put("/:id", ctl.Update)
	turmas.Delete("/:id", ctl.Delete)
}
