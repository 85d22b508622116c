package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/brunosimionato/API-edusystem/internals/configs"
	helper "github.com/brunosimionato/API-edusystem/internals/helpers"
)

// AuthMiddleware exige um Bearer token válido e grava as claims no contexto.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return helper.Error(c, fiber.StatusUnauthorized, err.Error())
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			return helper.Error(c, fiber.StatusInternalServerError, "JWT_SECRET ausente")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("método de assinatura inesperado")
			}
			return []byte(secretKey), nil
		}); err != nil {
			return helper.Error(c, fiber.StatusUnauthorized, "Token inválido")
		}

		if err := validateExpiry(claims); err != nil {
			return helper.Error(c, fiber.StatusUnauthorized, "Token expirado")
		}

		storeClaimsToLocals(c, claims)
		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("Token não fornecido")
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", errors.New("Formato de Authorization inválido")
	}
	token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	if token == "" {
		return "", errors.New("Token não fornecido")
	}
	return token, nil
}

func validateExpiry(claims jwt.MapClaims) error {
	exp, ok := claims["exp"].(float64)
	if !ok {
		return errors.New("claim exp ausente")
	}
	if time.Now().After(time.Unix(int64(exp), 0)) {
		return errors.New("token expirado")
	}
	return nil
}

func storeClaimsToLocals(c *fiber.Ctx, claims jwt.MapClaims) {
	if usuario, ok := claims["usuario"].(map[string]interface{}); ok {
		if id, ok := usuario["id"].(float64); ok {
			c.Locals("usuario_id", uint(id))
		}
	}
	if role, ok := claims["role"].(string); ok {
		c.Locals("role", role)
	}
	c.Locals("claims", claims)
}
