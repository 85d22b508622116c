package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/brunosimionato/API-edusystem/internals/features/academics/disciplinas/controller"
)

func DisciplinaRoutes(router fiber.Router, db *gorm.DB, validate *validator.Validate) {
	ctl := controller.NewDisciplinaController(db, validate)

	disciplinas := router.Group("/disciplinas")
	disciplinas.Get("/", ctl.List)
	disciplinas.Get("/:id", ctl.GetByID)
	disciplinas.Post("/", ctl.Create)
	disciplinas.Put("/:id", ctl.Update)
	disciplinas.Delete("/:id", ctl.Delete)
}
