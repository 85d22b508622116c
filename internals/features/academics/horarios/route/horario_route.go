package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/brunosimionato/API-edusystem/internals/features/academics/horarios/controller"
)

func HorarioRoutes(router fiber.Router, db *gorm.DB, validate *validator.Validate) {
	ctl := controller.NewHorarioController(db, validate)

	horarios := router.Group("/horarios")
	// rotas específicas antes de /:id
	horarios.Get("/turma/:turmaId", ctl.GetByTurma)
	horarios.Get("/professor/:professorId", ctl.GetByProfessor)
	horarios.Get("/grade/:turmaId", ctl.GetGrade)
	horarios.Get("/", ctl.List)
	horarios.Get("/:id", ctl.GetByID)
	horarios.Post("/", ctl.Create)
	horarios.Put("/:id", ctl.Update)
	horarios.Delete("/:id", ctl.Delete)
}
