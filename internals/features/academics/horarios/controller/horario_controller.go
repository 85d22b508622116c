package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/brunosimionato/API-edusystem/internals/features/academics/horarios/dto"
	"github.com/brunosimionato/API-edusystem/internals/features/academics/horarios/service"
	helper "github.com/brunosimionato/API-edusystem/internals/helpers"
)

type HorarioController struct {
	Service  *service.HorarioService
	Validate *validator.Validate
}

func NewHorarioController(db *gorm.DB, validate *validator.Validate) *HorarioController {
	return &HorarioController{
		Service:  service.NewHorarioService(db),
		Validate: validate,
	}
}

// GET /horarios
func (ctl *HorarioController) List(c *fiber.Ctx) error {
	horarios, err := ctl.Service.List(c.Context())
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao listar horários")
	}
	return helper.Success(c, "OK", horarios)
}

// GET /horarios/turma/:turmaId
func (ctl *HorarioController) GetByTurma(c *fiber.Ctx) error {
	turmaID, err := helper.ParseIDParam(c, "turmaId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Id inválido")
	}
	horarios, err := ctl.Service.GetByTurmaID(c.Context(), turmaID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao listar horários da turma")
	}
	return helper.Success(c, "OK", horarios)
}

// GET /horarios/professor/:professorId
func (ctl *HorarioController) GetByProfessor(c *fiber.Ctx) error {
	professorID, err := helper.ParseIDParam(c, "professorId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Id inválido")
	}
	horarios, err := ctl.Service.GetByProfessorID(c.Context(), professorID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao listar horários do professor")
	}
	return helper.Success(c, "OK", horarios)
}

// GET /horarios/grade/:turmaId
func (ctl *HorarioController) GetGrade(c *fiber.Ctx) error {
	turmaID, err := helper.ParseIDParam(c, "turmaId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Id inválido")
	}
	grade, err := ctl.Service.GetGrade(c.Context(), turmaID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao montar grade de horários")
	}
	return helper.Success(c, "OK", grade)
}

// GET /horarios/:id
func (ctl *HorarioController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Id inválido")
	}
	horario, err := ctl.Service.GetByID(c.Context(), id)
	if err != nil {
		return ctl.mapError(c, err)
	}
	return helper.Success(c, "OK", horario)
}

// POST /horarios
func (ctl *HorarioController) Create(c *fiber.Ctx) error {
	var req dto.CreateHorarioRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	horario, err := ctl.Service.Create(c.Context(), &req)
	if err != nil {
		return ctl.mapError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Horário criado com sucesso", horario)
}

// PUT /horarios/:id
func (ctl *HorarioController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Id inválido")
	}

	var req dto.UpdateHorarioRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	horario, err := ctl.Service.Update(c.Context(), id, &req)
	if err != nil {
		return ctl.mapError(c, err)
	}
	return helper.Success(c, "Horário atualizado com sucesso", horario)
}

// DELETE /horarios/:id
func (ctl *HorarioController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Id inválido")
	}
	if err := ctl.Service.Delete(c.Context(), id); err != nil {
		return ctl.mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (ctl *HorarioController) mapError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNaoEncontrado):
		return helper.Error(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrConflito):
		return helper.Error(c, fiber.StatusConflict, err.Error())
	default:
		return helper.Error(c, fiber.StatusInternalServerError, "Erro interno")
	}
}
