package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/brunosimionato/API-edusystem/internals/features/academics/faltas/controller"
)

func FaltaRoutes(router fiber.Router, db *gorm.DB, validate *validator.Validate) {
	ctl := controller.NewFaltaController(db, validate)

	faltas := router.Group("/faltas")
	// rotas específicas antes de /:id
	faltas.Get("/estatisticas", ctl.Estatisticas)
	faltas.Get("/aluno/:alunoId", ctl.GetByAluno)
	faltas.Get("/turma/:turmaId", ctl.GetByTurma)
	faltas.Get("/", ctl.List)
	faltas.Get("/:id", ctl.GetByID)
	faltas.Post("/lote", ctl.CreateLote)
	faltas.Post("/", ctl.Create)
	faltas.Put("/:id", ctl.Update)
	faltas.Delete("/:id", ctl.Delete)
}
