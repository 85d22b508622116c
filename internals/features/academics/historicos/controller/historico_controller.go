package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/brunosimionato/API-edusystem/internals/features/academics/historicos/dto"
	"github.com/brunosimionato/API-edusystem/internals/features/academics/historicos/model"
	helper "github.com/brunosimionato/API-edusystem/internals/helpers"
)

type HistoricoController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewHistoricoController(db *gorm.DB, validate *validator.Validate) *HistoricoController {
	return &HistoricoController{DB: db, Validate: validate}
}

// GET /historicos-escolares
func (ctl *HistoricoController) List(c *fiber.Ctx) error {
	var historicos []model.HistoricoEscolarModel
	if err := ctl.DB.WithContext(c.Context()).Order("id_historico ASC").Find(&historicos).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao listar históricos")
	}
	return helper.Success(c, "OK", historicos)
}

// GET /historicos-escolares/aluno/:alunoId
func (ctl *HistoricoController) GetByAluno(c *fiber.Ctx) error {
	alunoID, err := helper.ParseIDParam(c, "alunoId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Id inválido")
	}

	var historicos []model.HistoricoEscolarModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("id_aluno = ?", alunoID).
		Order("ano_conclusao ASC").
		Find(&historicos).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao listar históricos do aluno")
	}
	return helper.Success(c, "OK", historicos)
}

// GET /historicos-escolares/disciplina/:disciplinaId
func (ctl *HistoricoController) GetByDisciplina(c *fiber.Ctx) error {
	disciplinaID, err := helper.ParseIDParam(c, "disciplinaId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Id inválido")
	}

	var historicos []model.HistoricoEscolarModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("id_disciplina = ?", disciplinaID).
		Order("id_historico ASC").
		Find(&historicos).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao listar históricos da disciplina")
	}
	return helper.Success(c, "OK", historicos)
}

// GET /historicos-escolares/:id
func (ctl *HistoricoController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Id inválido")
	}

	var historico model.HistoricoEscolarModel
	if err := ctl.DB.WithContext(c.Context()).First(&historico, "id_historico = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Histórico não encontrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Erro interno")
	}
	return helper.Success(c, "OK", historico)
}

// POST /historicos-escolares
func (ctl *HistoricoController) Create(c *fiber.Ctx) error {
	var req dto.CreateHistoricoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	historico := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(historico).Error; err != nil {
		if helper.IsForeignKeyViolation(err) {
			return helper.Error(c, fiber.StatusBadRequest, "Aluno ou disciplina inexistente")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao criar histórico")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Histórico criado com sucesso", historico)
}

// PUT /historicos-escolares/:id
func (ctl *HistoricoController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Id inválido")
	}

	var req dto.UpdateHistoricoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var historico model.HistoricoEscolarModel
	if err := ctl.DB.WithContext(c.Context()).First(&historico, "id_historico = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Histórico não encontrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Erro interno")
	}

	req.ApplyToModel(&historico)
	if err := ctl.DB.WithContext(c.Context()).Save(&historico).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao atualizar histórico")
	}
	return helper.Success(c, "Histórico atualizado com sucesso", historico)
}

// DELETE /historicos-escolares/:id
func (ctl *HistoricoController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Id inválido")
	}

	res := ctl.DB.WithContext(c.Context()).Delete(&model.HistoricoEscolarModel{}, "id_historico = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao excluir histórico")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Histórico não encontrado")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
