package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/brunosimionato/API-edusystem/internals/features/school/professores/controller"
)

func ProfessorRoutes(router fiber.Router, db *gorm.DB, validate *validator.Validate) {
	ctl := controller.NewProfessorController(db, validate)

	professores := router.Group("/professores")
	professores.Get("/", ctl.List)
	professores.Get("/:id", ctl.GetByID)
	professores.Post("/", ctl.Create)
	professores.Put("/:id", ctl.Update)
	professores.Delete("/:id", ctl.Delete)
}
