package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/brunosimionato/API-edusystem/internals/features/academics/faltas/dto"
	"github.com/brunosimionato/API-edusystem/internals/features/academics/faltas/service"
	helper "github.com/brunosimionato/API-edusystem/internals/helpers"
)

type FaltaController struct {
	Service  *service.FaltaService
	Validate *validator.Validate
}

func NewFaltaController(db *gorm.DB, validate *validator.Validate) *FaltaController {
	return &FaltaController{
		Service:  service.NewFaltaService(db),
		Validate: validate,
	}
}

func filterFromQuery(c *fiber.Ctx) service.ListFaltasFilter {
	return service.ListFaltasFilter{
		IDAluno:    helper.QueryUint(c, "idAluno"),
		IDTurma:    helper.QueryUint(c, "idTurma"),
		DataInicio: c.Query("dataInicio"),
		DataFim:    c.Query("dataFim"),
		Page:       helper.QueryInt(c, "page"),
		Limit:      helper.QueryInt(c, "limit"),
	}
}

// GET /faltas
func (ctl *FaltaController) List(c *fiber.Ctx) error {
	faltas, err := ctl.Service.List(c.Context(), filterFromQuery(c))
	if err != nil {
		return ctl.mapError(c, err)
	}
	return helper.Success(c, "OK", faltas)
}

// GET /faltas/estatisticas
func (ctl *FaltaController) Estatisticas(c *fiber.Ctx) error {
	stats, err := ctl.Service.Estatisticas(c.Context(), filterFromQuery(c))
	if err != nil {
		return ctl.mapError(c, err)
	}
	return helper.Success(c, "OK", stats)
}

// GET /faltas/aluno/:alunoId
func (ctl *FaltaController) GetByAluno(c *fiber.Ctx) error {
	alunoID, err := helper.ParseIDParam(c, "alunoId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Id inválido")
	}
	faltas, err := ctl.Service.GetByAlunoID(c.Context(), alunoID, c.Query("dataInicio"), c.Query("dataFim"))
	if err != nil {
		return ctl.mapError(c, err)
	}
	return helper.Success(c, "OK", faltas)
}

// GET /faltas/turma/:turmaId
func (ctl *FaltaController) GetByTurma(c *fiber.Ctx) error {
	turmaID, err := helper.ParseIDParam(c, "turmaId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Id inválido")
	}
	faltas, err := ctl.Service.GetByTurmaID(c.Context(), turmaID, c.Query("data"))
	if err != nil {
		return ctl.mapError(c, err)
	}
	return helper.Success(c, "OK", faltas)
}

// GET /faltas/:id
func (ctl *FaltaController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Id inválido")
	}
	falta, err := ctl.Service.GetByID(c.Context(), id)
	if err != nil {
		return ctl.mapError(c, err)
	}
	return helper.Success(c, "OK", falta)
}

// POST /faltas
func (ctl *FaltaController) Create(c *fiber.Ctx) error {
	var req dto.CreateFaltaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	falta, err := ctl.Service.Create(c.Context(), &req)
	if err != nil {
		return ctl.mapError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Falta registrada com sucesso", falta)
}

// POST /faltas/lote
func (ctl *FaltaController) CreateLote(c *fiber.Ctx) error {
	var req dto.CreateFaltasLoteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	faltas, err := ctl.Service.CreateLote(c.Context(), &req)
	if err != nil {
		return ctl.mapError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Faltas registradas com sucesso", faltas)
}

// PUT /faltas/:id
func (ctl *FaltaController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Id inválido")
	}

	var req dto.UpdateFaltaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	falta, err := ctl.Service.Update(c.Context(), id, &req)
	if err != nil {
		return ctl.mapError(c, err)
	}
	return helper.Success(c, "Falta atualizada com sucesso", falta)
}

// DELETE /faltas/:id
func (ctl *FaltaController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Id inválido")
	}
	if err := ctl.Service.Delete(c.Context(), id); err != nil {
		return ctl.mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (ctl *FaltaController) mapError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNaoEncontrada):
		return helper.Error(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, helper.ErrDataInvalida):
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	default:
		return helper.Error(c, fiber.StatusInternalServerError, "Erro interno")
	}
}
