package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/brunosimionato/API-edusystem/internals/features/academics/turmas/dto"
	"github.com/brunosimionato/API-edusystem/internals/features/academics/turmas/model"
	alunoModel "github.com/brunosimionato/API-edusystem/internals/features/school/alunos/model"
	helper "github.com/brunosimionato/API-edusystem/internals/helpers"
)

type TurmaController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTurmaController(db *gorm.DB, validate *validator.Validate) *TurmaController {
	return &TurmaController{DB: db, Validate: validate}
}

// GET /turmas (com ?with=alunos embute as matrículas)
func (ctl *TurmaController) List(c *fiber.Ctx) error {
	var turmas []model.TurmaModel
	if err := ctl.DB.WithContext(c.Context()).Order("id_turma ASC").Find(&turmas).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao listar turmas")
	}

	if c.Query("with") != "alunos" {
		return helper.Success(c, "OK", turmas)
	}

	out := make([]dto.TurmaComAlunosResponse, 0, len(turmas))
	for _, turma := range turmas {
		var alunos []alunoModel.AlunoModel
		err := ctl.DB.WithContext(c.Context()).
			Joins("JOIN alunos_turmas ON alunos_turmas.id_aluno = alunos.id_aluno").
			Where("alunos_turmas.id_turma = ?", turma.ID).
			Find(&alunos).Error
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Erro ao listar alunos da turma")
		}
		out = append(out, dto.TurmaComAlunosResponse{TurmaModel: turma, Alunos: alunos})
	}
	return helper.Success(c, "OK", out)
}

// GET /turmas/:id
func (ctl *TurmaController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Id inválido")
	}

	var turma model.TurmaModel
	if err := ctl.DB.WithContext(c.Context()).First(&turma, "id_turma = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Turma não encontrada")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Erro interno")
	}
	return helper.Success(c, "OK", turma)
}

// POST /turmas
func (ctl *TurmaController) Create(c *fiber.Ctx) error {
	var req dto.CreateTurmaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	turma := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(turma).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao criar turma")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Turma criada com sucesso", turma)
}

// PUT /turmas/:id
func (ctl *TurmaController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Id inválido")
	}

	var req dto.UpdateTurmaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var turma model.TurmaModel
	if err := ctl.DB.WithContext(c.Context()).First(&turma, "id_turma = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Turma não encontrada")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Erro interno")
	}

	req.ApplyToModel(&turma)
	if err := ctl.DB.WithContext(c.Context()).Save(&turma).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao atualizar turma")
	}
	return helper.Success(c, "Turma atualizada com sucesso", turma)
}

// DELETE /turmas/:id
func (ctl *TurmaController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Id inválido")
	}

	res := ctl.DB.WithContext(c.Context()).Delete(&model.TurmaModel{}, "id_turma = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao excluir turma")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Turma não encontrada")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
