package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/brunosimionato/API-edusystem/internals/features/school/secretarias/controller"
)

func SecretariaRoutes(router fiber.Router, db *gorm.DB, validate *validator.Validate) {
	ctl := controller.NewSecretariaController(db, validate)

	secretarias := router.Group("/secretarias")
	secretarias.Get("/", ctl.List)
	secretarias.Get("/usuario/:usuarioId", ctl.GetByUsuarioID)
	secretarias.Get("/:id", ctl.GetByID)
	secretarias.Post("/", ctl.Create)
	secretarias.Delete("/:id", ctl.Delete)
}
