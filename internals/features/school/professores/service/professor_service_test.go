package service

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/brunosimionato/API-edusystem/internals/constants"
	disciplinaModel "github.com/brunosimionato/API-edusystem/internals/features/academics/disciplinas/model"
	"github.com/brunosimionato/API-edusystem/internals/features/school/professores/dto"
	"github.com/brunosimionato/API-edusystem/internals/features/school/professores/model"
	usuarioDTO "github.com/brunosimionato/API-edusystem/internals/features/users/usuarios/dto"
	usuarioModel "github.com/brunosimionato/API-edusystem/internals/features/users/usuarios/model"
	usuarioService "github.com/brunosimionato/API-edusystem/internals/features/users/usuarios/service"
)

func setupProfessorDB(t *testing.T) *gorm.DB {
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
	err = db.AutoMigrate(
		&usuarioModel.UsuarioModel{},
		&disciplinaModel.DisciplinaModel{},
		&model.ProfessorModel{},
	)
	if err != nil {
		t.Fatalf("migrando tabelas: %v", err)
	}
	return db
}

func novoProfessorRequest(nome, email string) *dto.CreateProfessorRequest {
	formacao := "Licenciatura em Matemática"
	return &dto.CreateProfessorRequest{
		Usuario: &usuarioDTO.CreateUsuarioRequest{
			Nome:        nome,
			Email:       email,
			Senha:       "senha-forte",
			TipoUsuario: constants.RoleProfessor,
		},
		Professor: &dto.ProfessorPayload{
			FormacaoAcademica: &formacao,
		},
	}
}

func TestProfessorService_List(t *testing.T) {
	ctx := context.Background()
	db := setupProfessorDB(t)
	svc := NewProfessorService(db)

	ativo, err := svc.Create(ctx, novoProfessorRequest("Ana Souza", "ana@escola.br"))
	assert.NoError(t, err)
	inativo, err := svc.Create(ctx, novoProfessorRequest("Beto Reis", "beto@escola.br"))
	assert.NoError(t, err)

	usuarios := usuarioService.NewUsuarioService(db)
	assert.NoError(t, usuarios.Deactivate(ctx, inativo.IDUsuario))

	professores, err := svc.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, professores, 1)
	assert.Equal(t, ativo.ID, professores[0].ID)
	assert.NotNil(t, professores[0].Usuario)
	assert.Equal(t, "ana@escola.br", professores[0].Usuario.Email)
}

func TestProfessorService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("usuário embutido na mesma transação", func(t *testing.T) {
		db := setupProfessorDB(t)
		svc := NewProfessorService(db)

		professor, err := svc.Create(ctx, novoProfessorRequest("Ana Souza", "ana@escola.br"))
		assert.NoError(t, err)
		assert.NotZero(t, professor.IDUsuario)
		assert.NotNil(t, professor.Usuario)
		assert.Equal(t, constants.RoleProfessor, professor.Usuario.TipoUsuario)
	})

	t.Run("falha no professor desfaz o usuário", func(t *testing.T) {
		db := setupProfessorDB(t)
		svc := NewProfessorService(db)

		// sem a tabela de professores o segundo insert falha no meio da transação
		assert.NoError(t, db.Migrator().DropTable(&model.ProfessorModel{}))

		_, err := svc.Create(ctx, novoProfessorRequest("Ana Souza", "ana@escola.br"))
		assert.Error(t, err)

		var usuarios int64
		assert.NoError(t, db.Model(&usuarioModel.UsuarioModel{}).Count(&usuarios).Error)
		assert.Zero(t, usuarios)
	})

	t.Run("sem usuário e sem idUsuario", func(t *testing.T) {
		svc := NewProfessorService(setupProfessorDB(t))

		req := &dto.CreateProfessorRequest{Professor: &dto.ProfessorPayload{}}
		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, ErrUsuarioObrigatorio)
	})

	t.Run("email duplicado devolve conflito", func(t *testing.T) {
		svc := NewProfessorService(setupProfessorDB(t))

		_, err := svc.Create(ctx, novoProfessorRequest("Ana Souza", "ana@escola.br"))
		assert.NoError(t, err)

		_, err = svc.Create(ctx, novoProfessorRequest("Outra Ana", "ana@escola.br"))
		assert.ErrorIs(t, err, ErrEmailEmUso)
	})
}

func TestProfessorService_Delete(t *testing.T) {
	ctx := context.Background()
	db := setupProfessorDB(t)
	svc := NewProfessorService(db)

	professor, err := svc.Create(ctx, novoProfessorRequest("Ana Souza", "ana@escola.br"))
	assert.NoError(t, err)

	assert.NoError(t, svc.Delete(ctx, professor.ID))

	var professores, usuarios int64
	assert.NoError(t, db.Model(&model.ProfessorModel{}).Count(&professores).Error)
	assert.NoError(t, db.Model(&usuarioModel.UsuarioModel{}).Count(&usuarios).Error)
	assert.Zero(t, professores)
	assert.Zero(t, usuarios)

	assert.ErrorIs(t, svc.Delete(ctx, professor.ID), ErrNaoEncontrado)
}
