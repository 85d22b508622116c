package helper

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

var ErrIDInvalido = errors.New("id inválido")

// ParseIDParam lê um parâmetro de rota numérico (id serial).
func ParseIDParam(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, ErrIDInvalido
	}
	return uint(id), nil
}

// QueryUint lê um filtro numérico opcional da query string. Zero quando ausente.
func QueryUint(c *fiber.Ctx, name string) uint {
	raw := c.Query(name)
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0
	}
	return uint(v)
}

// QueryInt idem para inteiros com sinal.
func QueryInt(c *fiber.Ctx, name string) int {
	raw := c.Query(name)
	if raw == "" {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return v
}
