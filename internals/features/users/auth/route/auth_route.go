package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/brunosimionato/API-edusystem/internals/features/users/auth/controller"
)

func AuthRoutes(router fiber.Router, db *gorm.DB, validate *validator.Validate) {
	ctl := controller.NewAuthController(db, validate)
	router.Post("/auth/login", ctl.Login)
}
