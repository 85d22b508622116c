package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/brunosimionato/API-edusystem/internals/features/users/auth/dto"
	"github.com/brunosimionato/API-edusystem/internals/features/users/auth/service"
	helper "github.com/brunosimionato/API-edusystem/internals/helpers"
)

type AuthController struct {
	Service  *service.AuthService
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB, validate *validator.Validate) *AuthController {
	return &AuthController{
		Service:  service.NewAuthService(db),
		Validate: validate,
	}
}

// POST /auth/login
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	token, err := ctl.Service.Login(c.Context(), &req)
	if err != nil {
		if isAuthError(err) {
			return helper.Error(c, fiber.StatusUnauthorized, err.Error())
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao realizar login")
	}

	return c.Status(fiber.StatusOK).JSON(dto.LoginResponse{Token: token})
}

func isAuthError(err error) bool {
	return errors.Is(err, service.ErrUsuarioNaoEncontrado) ||
		errors.Is(err, service.ErrCredenciaisInvalidas) ||
		errors.Is(err, service.ErrRoleInvalida) ||
		errors.Is(err, service.ErrUsuarioInativo) ||
		errors.Is(err, service.ErrEntidadeNaoEncontrada)
}
