package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/brunosimionato/API-edusystem/internals/features/school/secretarias/dto"
	"github.com/brunosimionato/API-edusystem/internals/features/school/secretarias/service"
	helper "github.com/brunosimionato/API-edusystem/internals/helpers"
)

type SecretariaController struct {
	Service  *service.SecretariaService
	Validate *validator.Validate
}

func NewSecretariaController(db *gorm.DB, validate *validator.Validate) *SecretariaController {
	return &SecretariaController{
		Service:  service.NewSecretariaService(db),
		Validate: validate,
	}
}

// GET /secretarias
func (ctl *SecretariaController) List(c *fiber.Ctx) error {
	secretarias, err := ctl.Service.List(c.Context())
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao listar secretarias")
	}
	return helper.Success(c, "OK", secretarias)
}

// GET /secretarias/:id
func (ctl *SecretariaController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Id inválido")
	}
	secretaria, err := ctl.Service.GetByID(c.Context(), id)
	if err != nil {
		return ctl.mapError(c, err)
	}
	return helper.Success(c, "OK", secretaria)
}

// GET /secretarias/usuario/:usuarioId
func (ctl *SecretariaController) GetByUsuarioID(c *fiber.Ctx) error {
	usuarioID, err := helper.ParseIDParam(c, "usuarioId")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Id inválido")
	}
	secretaria, err := ctl.Service.GetByUsuarioID(c.Context(), usuarioID)
	if err != nil {
		return ctl.mapError(c, err)
	}
	return helper.Success(c, "OK", secretaria)
}

// POST /secretarias
func (ctl *SecretariaController) Create(c *fiber.Ctx) error {
	var req dto.CreateSecretariaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if req.Usuario != nil {
		if err := ctl.Validate.Struct(req.Usuario); err != nil {
			return helper.ValidationError(c, err)
		}
	}

	secretaria, err := ctl.Service.Create(c.Context(), &req)
	if err != nil {
		return ctl.mapError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Secretaria criada com sucesso", secretaria)
}

// DELETE /secretarias/:id
func (ctl *SecretariaController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Id inválido")
	}
	if err := ctl.Service.Delete(c.Context(), id); err != nil {
		return ctl.mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (ctl *SecretariaController) mapError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNaoEncontrada):
		return helper.Error(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrUsuarioObrigatorio):
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrEmailEmUso):
		return helper.Error(c, fiber.StatusConflict, err.Error())
	default:
		return helper.Error(c, fiber.StatusInternalServerError, "Erro interno")
	}
}
