package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/brunosimionato/API-edusystem/internals/features/school/professores/dto"
	"github.com/brunosimionato/API-edusystem/internals/features/school/professores/service"
	helper "github.com/brunosimionato/API-edusystem/internals/helpers"
)

type ProfessorController struct {
	Service  *service.ProfessorService
	Validate *validator.Validate
}

func NewProfessorController(db *gorm.DB, validate *validator.Validate) *ProfessorController {
	return &ProfessorController{
		Service:  service.NewProfessorService(db),
		Validate: validate,
	}
}

// GET /professores
func (ctl *ProfessorController) List(c *fiber.Ctx) error {
	professores, err := ctl.Service.List(c.Context())
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao listar professores")
	}
	return helper.Success(c, "OK", professores)
}

// GET /professores/:id
func (ctl *ProfessorController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Id inválido")
	}
	professor, err := ctl.Service.GetByID(c.Context(), id)
	if err != nil {
		return ctl.mapError(c, err)
	}
	return helper.Success(c, "OK", professor)
}

// POST /professores
func (ctl *ProfessorController) Create(c *fiber.Ctx) error {
	var req dto.CreateProfessorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if req.Professor == nil {
		return helper.Error(c, fiber.StatusBadRequest, "Dados do professor são obrigatórios")
	}
	req.Normalize()
	if req.Usuario != nil {
		if err := ctl.Validate.Struct(req.Usuario); err != nil {
			return helper.ValidationError(c, err)
		}
	}

	professor, err := ctl.Service.Create(c.Context(), &req)
	if err != nil {
		return ctl.mapError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Professor criado com sucesso", professor)
}

// PUT /professores/:id
func (ctl *ProfessorController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Id inválido")
	}

	var req dto.UpdateProfessorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()

	professor, err := ctl.Service.Update(c.Context(), id, &req)
	if err != nil {
		return ctl.mapError(c, err)
	}
	return helper.Success(c, "Professor atualizado com sucesso", professor)
}

// DELETE /professores/:id
func (ctl *ProfessorController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Id inválido")
	}
	if err := ctl.Service.Delete(c.Context(), id); err != nil {
		return ctl.mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (ctl *ProfessorController) mapError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNaoEncontrado):
		return helper.Error(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrUsuarioObrigatorio):
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrEmailEmUso):
		return helper.Error(c, fiber.StatusConflict, err.Error())
	default:
		return helper.Error(c, fiber.StatusInternalServerError, "Erro interno")
	}
}
