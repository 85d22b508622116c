package service

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	secretariaModel "github.com/brunosimionato/API-edusystem/internals/features/school/secretarias/model"
	"github.com/brunosimionato/API-edusystem/internals/features/users/usuarios/dto"
	"github.com/brunosimionato/API-edusystem/internals/features/users/usuarios/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("abrindo sqlite em memória: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}
	if err := db.AutoMigrate(&model.UsuarioModel{}, &secretariaModel.SecretariaModel{}); err != nil {
		t.Fatalf("migrando tabelas: %v", err)
	}
	return db
}

func novoUsuarioRequest(email, tipo string) *dto.CreateUsuarioRequest {
	return &dto.CreateUsuarioRequest{
		Nome:        "Maria Souza",
		Email:       email,
		Senha:       "senha123",
		TipoUsuario: tipo,
	}
}

func TestUsuarioService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("grava hash e nunca a senha em claro", func(t *testing.T) {
		svc := NewUsuarioService(setupTestDB(t))

		usuario, err := svc.Create(ctx, novoUsuarioRequest("maria@escola.com", "professor"))
		assert.NoError(t, err)
		assert.NotEqual(t, "senha123", usuario.HashSenha)
		assert.True(t, VerificarSenha(usuario.HashSenha, "senha123"))
	})

	t.Run("email duplicado devolve conflito", func(t *testing.T) {
		svc := NewUsuarioService(setupTestDB(t))

		_, err := svc.Create(ctx, novoUsuarioRequest("maria@escola.com", "professor"))
		assert.NoError(t, err)

		_, err = svc.Create(ctx, novoUsuarioRequest("maria@escola.com", "aluno"))
		assert.ErrorIs(t, err, ErrEmailEmUso)
	})

	t.Run("tipo secretaria cria a entidade junto", func(t *testing.T) {
		db := setupTestDB(t)
		svc := NewUsuarioService(db)

		usuario, err := svc.Create(ctx, novoUsuarioRequest("sec@escola.com", "secretaria"))
		assert.NoError(t, err)

		var sec secretariaModel.SecretariaModel
		err = db.First(&sec, "id_usuario = ?", usuario.ID).Error
		assert.NoError(t, err)
	})
}

func TestUsuarioService_Update(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := NewUsuarioService(db)

	usuario, err := svc.Create(ctx, novoUsuarioRequest("joao@escola.com", "professor"))
	assert.NoError(t, err)
	hashOriginal := usuario.HashSenha

	t.Run("sem senha mantém o hash", func(t *testing.T) {
		nome := "João Atualizado"
		atualizado, err := svc.Update(ctx, usuario.ID, &dto.UpdateUsuarioRequest{Nome: &nome})
		assert.NoError(t, err)
		assert.Equal(t, "João Atualizado", atualizado.Nome)
		assert.Equal(t, hashOriginal, atualizado.HashSenha)
	})

	t.Run("com senha troca o hash", func(t *testing.T) {
		senha := "novasenha"
		atualizado, err := svc.Update(ctx, usuario.ID, &dto.UpdateUsuarioRequest{Senha: &senha})
		assert.NoError(t, err)
		assert.NotEqual(t, hashOriginal, atualizado.HashSenha)
		assert.True(t, VerificarSenha(atualizado.HashSenha, "novasenha"))
	})

	t.Run("id inexistente", func(t *testing.T) {
		nome := "Ninguém"
		_, err := svc.Update(ctx, 9999, &dto.UpdateUsuarioRequest{Nome: &nome})
		assert.ErrorIs(t, err, ErrNaoEncontrado)
	})
}

func TestUsuarioService_DeactivateReactivate(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := NewUsuarioService(db)

	usuario, err := svc.Create(ctx, novoUsuarioRequest("ana@escola.com", "professor"))
	assert.NoError(t, err)

	assert.NoError(t, svc.Deactivate(ctx, usuario.ID))

	// a linha continua no banco, só inativa
	inativo, err := svc.GetByID(ctx, usuario.ID)
	assert.NoError(t, err)
	assert.False(t, inativo.Ativo)

	reativado, err := svc.Reactivate(ctx, usuario.ID)
	assert.NoError(t, err)
	assert.True(t, reativado.Ativo)

	assert.ErrorIs(t, svc.Deactivate(ctx, 9999), ErrNaoEncontrado)
	_, err = svc.Reactivate(ctx, 9999)
	assert.ErrorIs(t, err, ErrNaoEncontrado)
}
