package controller_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/brunosimionato/API-edusystem/internals/configs"
	secretariaModel "github.com/brunosimionato/API-edusystem/internals/features/school/secretarias/model"
	usuarioDto "github.com/brunosimionato/API-edusystem/internals/features/users/usuarios/dto"
	usuarioModel "github.com/brunosimionato/API-edusystem/internals/features/users/usuarios/model"
	usuarioRoute "github.com/brunosimionato/API-edusystem/internals/features/users/usuarios/route"
	usuarioService "github.com/brunosimionato/API-edusystem/internals/features/users/usuarios/service"
	auth "github.com/brunosimionato/API-edusystem/internals/middlewares/auth"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	configs.JWTSecret = "segredo-de-teste"

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("abrindo sqlite em memória: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}
	if err := db.AutoMigrate(&usuarioModel.UsuarioModel{}, &secretariaModel.SecretariaModel{}); err != nil {
		t.Fatalf("migrando tabelas: %v", err)
	}

	app := fiber.New()
	validate := validator.New()
	usuarioRoute.UsuarioPublicRoutes(app, db, validate)
	protected := app.Group("", auth.AuthMiddleware())
	usuarioRoute.UsuarioRoutes(protected, db, validate)
	return app, db
}

func tokenDeTeste(t *testing.T) string {
	t.Helper()
	claims := jwt.MapClaims{
		"usuario": map[string]interface{}{"id": 1},
		"role":    "secretaria",
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
	if err != nil {
		t.Fatalf("assinando token de teste: %v", err)
	}
	return token
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var payload bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&payload).Encode(body); err != nil {
			t.Fatalf("serializando corpo: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &payload)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("executando requisição: %v", err)
	}
	return resp
}

func TestUsuarioRoutes_Bootstrap(t *testing.T) {
	app, _ := setupApp(t)

	corpo := fiber.Map{
		"nome":         "Primeira Secretaria",
		"email":        "primeira@escola.com",
		"senha":        "senha123",
		"tipo_usuario": "secretaria",
	}

	t.Run("primeiro usuário entra sem token", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodPost, "/usuarios/public", "", corpo)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("segunda tentativa é bloqueada", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodPost, "/usuarios/public", "", corpo)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)

		var envelope map[string]interface{}
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
		assert.Equal(t, "Criação pública desativada: já existem usuários cadastrados", envelope["message"])
	})
}

func TestUsuarioRoutes_Autenticacao(t *testing.T) {
	app, _ := setupApp(t)

	t.Run("sem token", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodGet, "/usuarios/", "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("token de outra chave", func(t *testing.T) {
		claims := jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()}
		forjado, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("outra-chave"))
		assert.NoError(t, err)

		resp := doRequest(t, app, http.MethodGet, "/usuarios/", forjado, nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("token expirado", func(t *testing.T) {
		claims := jwt.MapClaims{"exp": time.Now().Add(-time.Hour).Unix()}
		vencido, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
		assert.NoError(t, err)

		resp := doRequest(t, app, http.MethodGet, "/usuarios/", vencido, nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("com token válido", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodGet, "/usuarios/", tokenDeTeste(t), nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestUsuarioRoutes_Delete(t *testing.T) {
	app, db := setupApp(t)
	token := tokenDeTeste(t)

	usuario, err := usuarioService.NewUsuarioService(db).Create(context.Background(), &usuarioDto.CreateUsuarioRequest{
		Nome:        "Para Inativar",
		Email:       "inativar@escola.com",
		Senha:       "senha123",
		TipoUsuario: "professor",
	})
	assert.NoError(t, err)

	t.Run("delete inativa e devolve 204", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodDelete, "/usuarios/1", token, nil)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)

		var salvo usuarioModel.UsuarioModel
		assert.NoError(t, db.First(&salvo, "id_usuarios = ?", usuario.ID).Error)
		assert.False(t, salvo.Ativo)
	})

	t.Run("delete de id inexistente devolve 404", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodDelete, "/usuarios/999", token, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("reativar devolve o usuário ativo", func(t *testing.T) {
		resp := doRequest(t, app, http.MethodPut, "/usuarios/1/ativar", token, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var salvo usuarioModel.UsuarioModel
		assert.NoError(t, db.First(&salvo, "id_usuarios = ?", usuario.ID).Error)
		assert.True(t, salvo.Ativo)
	})
}
