package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/brunosimionato/API-edusystem/internals/features/users/usuarios/controller"
)

// UsuarioPublicRoutes registra o bootstrap do primeiro usuário (sem token).
func UsuarioPublicRoutes(router fiber.Router, db *gorm.DB, validate *validator.Validate) {
	ctl := controller.NewUsuarioController(db, validate)
	router.Post("/usuarios/public", ctl.CreatePublic)
}

func UsuarioRoutes(router fiber.Router, db *gorm.DB, validate *validator.Validate) {
	ctl := controller.NewUsuarioController(db, validate)

	usuarios := router.Group("/usuarios")
	usuarios.Get("/", ctl.List)
	usuarios.Get("/:id", ctl.GetByID)
	usuarios.Post("/", ctl.Create)
	usuarios.Put("/:id/ativar", ctl.Reactivate)
	usuarios.Put("/:id", ctl.Update)
	usuarios.Delete("/:id", ctl.Delete)
}
