package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/brunosimionato/API-edusystem/internals/features/academics/historicos/controller"
)

func HistoricoRoutes(router fiber.Router, db *gorm.DB, validate *validator.Validate) {
	ctl := controller.NewHistoricoController(db, validate)

	historicos := router.Group("/historicos-escolares")
	// rotas específicas antes de /:id
	historicos.Get("/aluno/:alunoId", ctl.GetByAluno)
	historicos.Get("/disciplina/:disciplinaId", ctl.GetByDisciplina)
	historicos.Get("/", ctl.List)
	historicos.Get("/:id", ctl.GetByID)
	historicos.Post("/", ctl.Create)
	historicos.Put("/:id", ctl.Update)
	historicos.Delete("/:id", ctl.Delete)
}
