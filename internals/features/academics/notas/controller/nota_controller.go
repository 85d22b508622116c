package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/brunosimionato/API-edusystem/internals/features/academics/notas/dto"
	"github.com/brunosimionato/API-edusystem/internals/features/academics/notas/model"
	helper "github.com/brunosimionato/API-edusystem/internals/helpers"
)

type NotaController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewNotaController(db *gorm.DB, validate *validator.Validate) *NotaController {
	return &NotaController{DB: db, Validate: validate}
}

// GET /notas com filtros opcionais idAluno, idTurma, anoLetivo e trimestre.
func (ctl *NotaController) List(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.Context()).Model(&model.NotaModel{})

	if idAluno := helper.QueryUint(c, "idAluno"); idAluno > 0 {
		q = q.Where("id_aluno = ?", idAluno)
	}
	if idTurma := helper.QueryUint(c, "idTurma"); idTurma > 0 {
		q = q.Where("id_turma = ?", idTurma)
	}
	if anoLetivo := helper.QueryInt(c, "anoLetivo"); anoLetivo > 0 {
		q = q.Where("ano_letivo = ?", anoLetivo)
	}
	if trimestre := helper.QueryInt(c, "trimestre"); trimestre > 0 {
		q = q.Where("trimestre = ?", trimestre)
	}

	var notas []model.NotaModel
	if err := q.Order("id_nota ASC").Find(&notas).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao listar notas")
	}
	return helper.Success(c, "OK", notas)
}

// GET /notas/:id
func (ctl *NotaController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Id inválido")
	}

	var nota model.NotaModel
	if err := ctl.DB.WithContext(c.Context()).First(&nota, "id_nota = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Nota não encontrada")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Erro interno")
	}
	return helper.Success(c, "OK", nota)
}

// POST /notas
func (ctl *NotaController) Create(c *fiber.Ctx) error {
	var req dto.CreateNotaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	nota := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(nota).Error; err != nil {
		if helper.IsForeignKeyViolation(err) {
			return helper.Error(c, fiber.StatusBadRequest, "Aluno, disciplina ou turma inexistente")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao criar nota")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Nota criada com sucesso", nota)
}

// PUT /notas/:id
func (ctl *NotaController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Id inválido")
	}

	var req dto.UpdateNotaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var nota model.NotaModel
	if err := ctl.DB.WithContext(c.Context()).First(&nota, "id_nota = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Nota não encontrada")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Erro interno")
	}

	req.ApplyToModel(&nota)
	if err := ctl.DB.WithContext(c.Context()).Save(&nota).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao atualizar nota")
	}
	return helper.Success(c, "Nota atualizada com sucesso", nota)
}

// DELETE /notas/:id
func (ctl *NotaController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Id inválido")
	}

	res := ctl.DB.WithContext(c.Context()).Delete(&model.NotaModel{}, "id_nota = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao excluir nota")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Nota não encontrada")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
