package service

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/brunosimionato/API-edusystem/internals/features/academics/faltas/dto"
	"github.com/brunosimionato/API-edusystem/internals/features/academics/faltas/model"
	helper "github.com/brunosimionato/API-edusystem/internals/helpers"
)

func setupFaltaDB(t *testing.T) *gorm.DB {
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
	if err := db.AutoMigrate(&model.FaltaModel{}); err != nil {
		t.Fatalf("migrando tabelas: %v", err)
	}
	return db
}

func faltaRequest(aluno, turma uint, data string, justificada bool) dto.CreateFaltaRequest {
	return dto.CreateFaltaRequest{
		IDAluno:     aluno,
		IDTurma:     turma,
		Data:        data,
		Justificada: justificada,
	}
}

func TestFaltaService_CreateLote(t *testing.T) {
	ctx := context.Background()
	db := setupFaltaDB(t)
	svc := NewFaltaService(db)

	t.Run("grava a chamada inteira", func(t *testing.T) {
		lote := &dto.CreateFaltasLoteRequest{Faltas: []dto.CreateFaltaRequest{
			faltaRequest(1, 1, "2026-08-10", false),
			faltaRequest(2, 1, "2026-08-10", true),
			faltaRequest(3, 1, "2026-08-10", false),
		}}

		faltas, err := svc.CreateLote(ctx, lote)
		assert.NoError(t, err)
		assert.Len(t, faltas, 3)

		var total int64
		assert.NoError(t, db.Model(&model.FaltaModel{}).Count(&total).Error)
		assert.Equal(t, int64(3), total)
	})

	t.Run("data inválida não grava nada", func(t *testing.T) {
		lote := &dto.CreateFaltasLoteRequest{Faltas: []dto.CreateFaltaRequest{
			faltaRequest(4, 1, "2026-08-11", false),
			faltaRequest(5, 1, "11/08/2026", false),
		}}

		_, err := svc.CreateLote(ctx, lote)
		assert.ErrorIs(t, err, helper.ErrDataInvalida)

		var total int64
		assert.NoError(t, db.Model(&model.FaltaModel{}).Count(&total).Error)
		assert.Equal(t, int64(3), total)
	})
}

func TestFaltaService_ListFiltros(t *testing.T) {
	ctx := context.Background()
	db := setupFaltaDB(t)
	svc := NewFaltaService(db)

	seed := []dto.CreateFaltaRequest{
		faltaRequest(1, 1, "2026-03-02", false),
		faltaRequest(1, 1, "2026-03-09", true),
		faltaRequest(2, 1, "2026-03-09", false),
		faltaRequest(3, 2, "2026-04-01", false),
	}
	for i := range seed {
		_, err := svc.Create(ctx, &seed[i])
		assert.NoError(t, err)
	}

	t.Run("por aluno", func(t *testing.T) {
		faltas, err := svc.GetByAlunoID(ctx, 1, "", "")
		assert.NoError(t, err)
		assert.Len(t, faltas, 2)
	})

	t.Run("por turma e data", func(t *testing.T) {
		faltas, err := svc.GetByTurmaID(ctx, 1, "2026-03-09")
		assert.NoError(t, err)
		assert.Len(t, faltas, 2)
	})

	t.Run("por intervalo de datas", func(t *testing.T) {
		faltas, err := svc.List(ctx, ListFaltasFilter{DataInicio: "2026-03-05", DataFim: "2026-03-31"})
		assert.NoError(t, err)
		assert.Len(t, faltas, 2)
	})

	t.Run("paginação", func(t *testing.T) {
		pagina, err := svc.List(ctx, ListFaltasFilter{Page: 2, Limit: 3})
		assert.NoError(t, err)
		assert.Len(t, pagina, 1)
	})

	t.Run("estatísticas do recorte", func(t *testing.T) {
		stats, err := svc.Estatisticas(ctx, ListFaltasFilter{IDTurma: 1})
		assert.NoError(t, err)
		assert.Equal(t, int64(3), stats.TotalFaltas)
		assert.Equal(t, int64(1), stats.TotalJustificadas)
		assert.Equal(t, int64(2), stats.TotalAlunos)
		assert.Equal(t, int64(1), stats.TotalTurmas)
	})
}
