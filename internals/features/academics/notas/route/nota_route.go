package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/brunosimionato/API-edusystem/internals/features/academics/notas/controller"
)

func NotaRoutes(router fiber.Router, db *gorm.DB, validate *validator.Validate) {
	ctl := controller.NewNotaController(db, validate)

	notas := router.Group("/notas")
	notas.Get("/", ctl.List)
	notas.Get("/:id", ctl.GetByID)
	notas.Post("/", ctl.Create)
	notas.Put("/:id", ctl.Update)
	notas.Delete("/:id", ctl.Delete)
}
