package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/brunosimionato/API-edusystem/internals/features/school/alunos/controller"
)

func AlunoRoutes(router fiber.Router, db *gorm.DB, validate *validator.Validate) {
	ctl := controller.NewAlunoController(db, validate)

	alunos := router.Group("/alunos")
	alunos.Get("/", ctl.List)
	alunos.Get("/:id", ctl.GetByID)
	alunos.Post("/", ctl.Create)
	alunos.Put("/:id", ctl.Update)
	alunos.Delete("/:id", ctl.Delete)
}
