package service

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/brunosimionato/API-edusystem/internals/features/academics/horarios/dto"
	"github.com/brunosimionato/API-edusystem/internals/features/academics/horarios/model"
)

func setupHorarioDB(t *testing.T) *gorm.DB {
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
	if err := db.AutoMigrate(&model.HorarioModel{}); err != nil {
		t.Fatalf("migrando tabelas: %v", err)
	}
	return db
}

func novoHorarioRequest(turma, professor uint, dia, periodo int) *dto.CreateHorarioRequest {
	return &dto.CreateHorarioRequest{
		IDTurma:      turma,
		IDProfessor:  professor,
		IDDisciplina: 1,
		DiaSemana:    dia,
		Periodo:      periodo,
	}
}

func TestHorarioService_CreateConflito(t *testing.T) {
	ctx := context.Background()
	db := setupHorarioDB(t)
	svc := NewHorarioService(db)

	_, err := svc.Create(ctx, novoHorarioRequest(1, 10, 2, 3))
	assert.NoError(t, err)

	t.Run("mesmo professor, dia e período em outra turma", func(t *testing.T) {
		_, err := svc.Create(ctx, novoHorarioRequest(2, 10, 2, 3))
		assert.ErrorIs(t, err, ErrConflito)

		// nada foi gravado
		var total int64
		assert.NoError(t, db.Model(&model.HorarioModel{}).Count(&total).Error)
		assert.Equal(t, int64(1), total)
	})

	t.Run("outro período não conflita", func(t *testing.T) {
		_, err := svc.Create(ctx, novoHorarioRequest(2, 10, 2, 4))
		assert.NoError(t, err)
	})

	t.Run("outro professor no mesmo slot não conflita", func(t *testing.T) {
		_, err := svc.Create(ctx, novoHorarioRequest(2, 11, 2, 3))
		assert.NoError(t, err)
	})
}

func TestHorarioService_UpdateConflito(t *testing.T) {
	ctx := context.Background()
	db := setupHorarioDB(t)
	svc := NewHorarioService(db)

	original, err := svc.Create(ctx, novoHorarioRequest(1, 10, 1, 1))
	assert.NoError(t, err)
	outro, err := svc.Create(ctx, novoHorarioRequest(1, 10, 1, 2))
	assert.NoError(t, err)

	t.Run("mover para slot ocupado falha", func(t *testing.T) {
		periodo := 1
		_, err := svc.Update(ctx, outro.ID, &dto.UpdateHorarioRequest{Periodo: &periodo})
		assert.ErrorIs(t, err, ErrConflito)

		// o slot original continua intacto
		atual, err := svc.GetByID(ctx, outro.ID)
		assert.NoError(t, err)
		assert.Equal(t, 2, atual.Periodo)
	})

	t.Run("salvar sem mudar o slot não conflita consigo mesmo", func(t *testing.T) {
		sala := "B12"
		atualizado, err := svc.Update(ctx, original.ID, &dto.UpdateHorarioRequest{Sala: &sala})
		assert.NoError(t, err)
		assert.Equal(t, "B12", *atualizado.Sala)
	})
}

func TestHorarioService_Grade(t *testing.T) {
	ctx := context.Background()
	db := setupHorarioDB(t)
	svc := NewHorarioService(db)

	_, err := svc.Create(ctx, novoHorarioRequest(1, 10, 1, 1))
	assert.NoError(t, err)
	_, err = svc.Create(ctx, novoHorarioRequest(1, 11, 3, 2))
	assert.NoError(t, err)
	_, err = svc.Create(ctx, novoHorarioRequest(2, 12, 1, 1)) // outra turma, fora da grade
	assert.NoError(t, err)

	grade, err := svc.GetGrade(ctx, 1)
	assert.NoError(t, err)

	// todos os dias úteis presentes, mesmo vazios
	assert.Len(t, grade, 5)
	assert.Empty(t, grade[5])

	assert.Equal(t, uint(10), grade[1][1].IDProfessor)
	assert.Equal(t, uint(11), grade[3][2].IDProfessor)
}
