package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	disciplinaModel "github.com/brunosimionato/API-edusystem/internals/features/academics/disciplinas/model"
	turmaModel "github.com/brunosimionato/API-edusystem/internals/features/academics/turmas/model"
	alunoModel "github.com/brunosimionato/API-edusystem/internals/features/school/alunos/model"
	professorModel "github.com/brunosimionato/API-edusystem/internals/features/school/professores/model"
	helper "github.com/brunosimionato/API-edusystem/internals/helpers"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

type resumo struct {
	Alunos      int64 `json:"alunos"`
	Professores int64 `json:"professores"`
	Turmas      int64 `json:"turmas"`
	Disciplinas int64 `json:"disciplinas"`
}

// GET /dashboard devolve os totais da página inicial. Professores conta só
// os de usuário ativo.
func (ctl *DashboardController) Resumo(c *fiber.Ctx) error {
	var r resumo
	db := ctl.DB.WithContext(c.Context())

	if err := db.Model(&alunoModel.AlunoModel{}).Count(&r.Alunos).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao montar resumo")
	}
	if err := db.Model(&professorModel.ProfessorModel{}).
		Joins("JOIN usuarios ON usuarios.id_usuarios = professores.id_usuario").
		Where("usuarios.ativo = ?", true).
		Count(&r.Professores).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao montar resumo")
	}
	if err := db.Model(&turmaModel.TurmaModel{}).Count(&r.Turmas).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao montar resumo")
	}
	if err := db.Model(&disciplinaModel.DisciplinaModel{}).Count(&r.Disciplinas).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao montar resumo")
	}

	return helper.Success(c, "OK", r)
}
