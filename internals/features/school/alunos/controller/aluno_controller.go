package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/brunosimionato/API-edusystem/internals/features/school/alunos/dto"
	"github.com/brunosimionato/API-edusystem/internals/features/school/alunos/service"
	helper "github.com/brunosimionato/API-edusystem/internals/helpers"
)

type AlunoController struct {
	Service  *service.AlunoService
	Validate *validator.Validate
}

func NewAlunoController(db *gorm.DB, validate *validator.Validate) *AlunoController {
	return &AlunoController{
		Service:  service.NewAlunoService(db),
		Validate: validate,
	}
}

// GET /alunos
func (ctl *AlunoController) List(c *fiber.Ctx) error {
	alunos, err := ctl.Service.List(c.Context())
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao listar alunos")
	}
	return helper.Success(c, "OK", alunos)
}

// GET /alunos/:id
func (ctl *AlunoController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Id inválido")
	}
	aluno, err := ctl.Service.GetByID(c.Context(), id)
	if err != nil {
		return ctl.mapError(c, err)
	}
	return helper.Success(c, "OK", aluno)
}

// POST /alunos
func (ctl *AlunoController) Create(c *fiber.Ctx) error {
	var req dto.CreateAlunoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	aluno, err := ctl.Service.Create(c.Context(), &req)
	if err != nil {
		if errors.Is(err, helper.ErrDataInvalida) {
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		}
		return ctl.mapError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Aluno criado com sucesso", aluno)
}

// PUT /alunos/:id
func (ctl *AlunoController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Id inválido")
	}

	var req dto.UpdateAlunoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	aluno, err := ctl.Service.Update(c.Context(), id, &req)
	if err != nil {
		if errors.Is(err, helper.ErrDataInvalida) {
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		}
		return ctl.mapError(c, err)
	}
	return helper.Success(c, "Aluno atualizado com sucesso", aluno)
}

// DELETE /alunos/:id
func (ctl *AlunoController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Id inválido")
	}
	if err := ctl.Service.Delete(c.Context(), id); err != nil {
		return ctl.mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (ctl *AlunoController) mapError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNaoEncontrado):
		return helper.Error(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrCPFEmUso):
		return helper.Error(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, service.ErrTurmaInvalida):
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	default:
		return helper.Error(c, fiber.StatusInternalServerError, "Erro interno")
	}
}
