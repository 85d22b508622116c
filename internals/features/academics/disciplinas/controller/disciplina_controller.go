package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/brunosimionato/API-edusystem/internals/features/academics/disciplinas/dto"
	"github.com/brunosimionato/API-edusystem/internals/features/academics/disciplinas/model"
	helper "github.com/brunosimionato/API-edusystem/internals/helpers"
)

type DisciplinaController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewDisciplinaController(db *gorm.DB, validate *validator.Validate) *DisciplinaController {
	return &DisciplinaController{DB: db, Validate: validate}
}

// GET /disciplinas
func (ctl *DisciplinaController) List(c *fiber.Ctx) error {
	var disciplinas []model.DisciplinaModel
	if err := ctl.DB.WithContext(c.Context()).Order("id_disciplina ASC").Find(&disciplinas).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao listar disciplinas")
	}
	return helper.Success(c, "OK", disciplinas)
}

// GET /disciplinas/:id
func (ctl *DisciplinaController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Id inválido")
	}

	var disciplina model.DisciplinaModel
	if err := ctl.DB.WithContext(c.Context()).First(&disciplina, "id_disciplina = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Disciplina não encontrada")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Erro interno")
	}
	return helper.Success(c, "OK", disciplina)
}

// POST /disciplinas
func (ctl *DisciplinaController) Create(c *fiber.Ctx) error {
	var req dto.CreateDisciplinaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	disciplina := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(disciplina).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao criar disciplina")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Disciplina criada com sucesso", disciplina)
}

// PUT /disciplinas/:id
func (ctl *DisciplinaController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Id inválido")
	}

	var req dto.UpdateDisciplinaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var disciplina model.DisciplinaModel
	if err := ctl.DB.WithContext(c.Context()).First(&disciplina, "id_disciplina = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Disciplina não encontrada")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Erro interno")
	}

	req.ApplyToModel(&disciplina)
	if err := ctl.DB.WithContext(c.Context()).Save(&disciplina).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao atualizar disciplina")
	}
	return helper.Success(c, "Disciplina atualizada com sucesso", disciplina)
}

// DELETE /disciplinas/:id
func (ctl *DisciplinaController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Id inválido")
	}

	res := ctl.DB.WithContext(c.Context()).Delete(&model.DisciplinaModel{}, "id_disciplina = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao excluir disciplina")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Disciplina não encontrada")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
