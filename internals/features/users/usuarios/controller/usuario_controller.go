package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/brunosimionato/API-edusystem/internals/features/users/usuarios/dto"
	"github.com/brunosimionato/API-edusystem/internals/features/users/usuarios/service"
	helper "github.com/brunosimionato/API-edusystem/internals/helpers"
)

type UsuarioController struct {
	Service  *service.UsuarioService
	Validate *validator.Validate
}

func NewUsuarioController(db *gorm.DB, validate *validator.Validate) *UsuarioController {
	return &UsuarioController{
		Service:  service.NewUsuarioService(db),
		Validate: validate,
	}
}

// GET /usuarios
func (ctl *UsuarioController) List(c *fiber.Ctx) error {
	usuarios, err := ctl.Service.List(c.Context())
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao listar usuários")
	}
	return helper.Success(c, "OK", usuarios)
}

// GET /usuarios/:id
func (ctl *UsuarioController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Id inválido")
	}
	usuario, err := ctl.Service.GetByID(c.Context(), id)
	if err != nil {
		return ctl.mapError(c, err)
	}
	return helper.Success(c, "OK", usuario)
}

// POST /usuarios
func (ctl *UsuarioController) Create(c *fiber.Ctx) error {
	var req dto.CreateUsuarioRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	usuario, err := ctl.Service.Create(c.Context(), &req)
	if err != nil {
		return ctl.mapError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Usuário criado com sucesso", usuario)
}

// POST /usuarios/public cria o primeiro usuário do sistema. Depois disso a
// rota fica bloqueada.
func (ctl *UsuarioController) CreatePublic(c *fiber.Ctx) error {
	total, err := ctl.Service.Count(c.Context())
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao verificar usuários")
	}
	if total > 0 {
		return helper.Error(c, fiber.StatusForbidden, "Criação pública desativada: já existem usuários cadastrados")
	}
	return ctl.Create(c)
}

// PUT /usuarios/:id
func (ctl *UsuarioController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Id inválido")
	}

	var req dto.UpdateUsuarioRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	usuario, err := ctl.Service.Update(c.Context(), id, &req)
	if err != nil {
		return ctl.mapError(c, err)
	}
	return helper.Success(c, "Usuário atualizado com sucesso", usuario)
}

// DELETE /usuarios/:id inativa o usuário (soft delete).
func (ctl *UsuarioController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Id inválido")
	}
	if err := ctl.Service.Deactivate(c.Context(), id); err != nil {
		return ctl.mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// PUT /usuarios/:id/ativar
func (ctl *UsuarioController) Reactivate(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Id inválido")
	}
	usuario, err := ctl.Service.Reactivate(c.Context(), id)
	if err != nil {
		return ctl.mapError(c, err)
	}
	return helper.Success(c, "Usuário reativado com sucesso", usuario)
}

func (ctl *UsuarioController) mapError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNaoEncontrado):
		return helper.Error(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrEmailEmUso):
		return helper.Error(c, fiber.StatusConflict, err.Error())
	default:
		return helper.Error(c, fiber.StatusInternalServerError, "Erro interno")
	}
}
