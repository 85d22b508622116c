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
	historicoModel "github.com/brunosimionato/API-edusystem/internals/features/academics/historicos/model"
	turmaModel "github.com/brunosimionato/API-edusystem/internals/features/academics/turmas/model"
	"github.com/brunosimionato/API-edusystem/internals/features/school/alunos/dto"
	"github.com/brunosimionato/API-edusystem/internals/features/school/alunos/model"
)

func setupAlunoDB(t *testing.T) *gorm.DB {
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
		&model.AlunoModel{},
		&model.AlunoTurmaModel{},
		&disciplinaModel.DisciplinaModel{},
		&turmaModel.TurmaModel{},
		&historicoModel.HistoricoEscolarModel{},
	)
	if err != nil {
		t.Fatalf("migrando tabelas: %v", err)
	}
	return db
}

func novoAlunoRequest(cpf string) *dto.CreateAlunoRequest {
	return &dto.CreateAlunoRequest{
		Nome:       "Pedro Lima",
		CPF:        cpf,
		CNS:        "700000000000001",
		Nascimento: "2012-03-15",
		Genero:     "masculino",
		Telefone:   "11988887777",
		Logradouro: "Rua das Flores",
		Numero:     "100",
		Bairro:     "Centro",
		CEP:        "01000-000",
		Cidade:     "São Paulo",
		Estado:     "SP",
		Responsavel1: dto.ResponsavelRequest{
			Nome:       "Carla Lima",
			CPF:        "111.222.333-44",
			Telefone:   "11977776666",
			Parentesco: "mae",
		},
	}
}

func TestAlunoService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("round-trip com turma", func(t *testing.T) {
		db := setupAlunoDB(t)
		svc := NewAlunoService(db)

		turma := turmaModel.TurmaModel{Nome: "3º Ano A", AnoEscolar: 2026, QuantidadeMaxima: 30, Turno: "manha", Serie: "3ano"}
		assert.NoError(t, db.Create(&turma).Error)

		req := novoAlunoRequest("123.456.789-00")
		req.Turma = &turma.ID

		aluno, err := svc.Create(ctx, req)
		assert.NoError(t, err)
		assert.Equal(t, "Pedro Lima", aluno.Nome)
		assert.Equal(t, "2012-03-15", aluno.Nascimento)
		assert.NotNil(t, aluno.Turma)
		assert.Equal(t, turma.ID, aluno.Turma.ID)
	})

	t.Run("vincula a conta de usuário informada", func(t *testing.T) {
		db := setupAlunoDB(t)
		svc := NewAlunoService(db)

		idUsuario := uint(42)
		req := novoAlunoRequest("987.654.321-00")
		req.IDUsuarioSnake = &idUsuario // aceito também em snake_case
		req.Normalize()

		aluno, err := svc.Create(ctx, req)
		assert.NoError(t, err)

		var salvo model.AlunoModel
		assert.NoError(t, db.First(&salvo, aluno.ID).Error)
		assert.NotNil(t, salvo.IDUsuario)
		assert.Equal(t, idUsuario, *salvo.IDUsuario)

		outro := uint(77)
		_, err = svc.Update(ctx, aluno.ID, &dto.UpdateAlunoRequest{IDUsuario: &outro})
		assert.NoError(t, err)

		assert.NoError(t, db.First(&salvo, aluno.ID).Error)
		assert.Equal(t, outro, *salvo.IDUsuario)
	})

	t.Run("cpf duplicado devolve conflito", func(t *testing.T) {
		svc := NewAlunoService(setupAlunoDB(t))

		_, err := svc.Create(ctx, novoAlunoRequest("123.456.789-00"))
		assert.NoError(t, err)

		outro := novoAlunoRequest("123.456.789-00")
		outro.Nome = "Outro Aluno"
		_, err = svc.Create(ctx, outro)
		assert.ErrorIs(t, err, ErrCPFEmUso)
	})

	t.Run("turma inexistente", func(t *testing.T) {
		svc := NewAlunoService(setupAlunoDB(t))

		turmaID := uint(999)
		req := novoAlunoRequest("123.456.789-00")
		req.Turma = &turmaID

		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, ErrTurmaInvalida)
	})
}

func TestAlunoService_HistoricoFanOut(t *testing.T) {
	ctx := context.Background()

	t.Run("série inicial vira um registro de Ensino Globalizado", func(t *testing.T) {
		db := setupAlunoDB(t)
		svc := NewAlunoService(db)

		req := novoAlunoRequest("111.111.111-11")
		req.HistoricoEscolar = []dto.HistoricoLinhaRequest{{
			EscolaAnterior: "EMEF Monteiro Lobato",
			SerieAnterior:  "3ano",
			AnoConclusao:   2023,
			Notas: map[string]interface{}{
				"ensinoGlobalizado": 8.5,
				"matematica":        9.0, // ignorada nos anos iniciais
			},
		}}

		aluno, err := svc.Create(ctx, req)
		assert.NoError(t, err)

		var registros []historicoModel.HistoricoEscolarModel
		assert.NoError(t, db.Where("id_aluno = ?", aluno.ID).Find(&registros).Error)
		assert.Len(t, registros, 1)
		assert.NotNil(t, registros[0].IDDisciplina)
		assert.Equal(t, constants.DisciplinaEnsinoGlobalizado, *registros[0].IDDisciplina)
		assert.Equal(t, 8.5, registros[0].Nota)
		assert.Equal(t, "EMEF Monteiro Lobato", registros[0].NomeEscola)
	})

	t.Run("série final vira um registro por matéria", func(t *testing.T) {
		db := setupAlunoDB(t)
		svc := NewAlunoService(db)

		req := novoAlunoRequest("222.222.222-22")
		req.HistoricoEscolar = []dto.HistoricoLinhaRequest{{
			NomeEscola:    "EE Machado de Assis",
			SerieAnterior: "7ano",
			AnoConclusao:  2024,
			Notas: map[string]interface{}{
				"matematica":        "7.5",
				"portugues":         8.0,
				"ciencias":          6,
				"historia":          nil,
				"geografia":         "",
				"ensinoGlobalizado": 9.0, // chave pulada nos anos finais
			},
		}}

		aluno, err := svc.Create(ctx, req)
		assert.NoError(t, err)

		var registros []historicoModel.HistoricoEscolarModel
		assert.NoError(t, db.Where("id_aluno = ?", aluno.ID).Find(&registros).Error)
		assert.Len(t, registros, 3)

		notas := map[uint]float64{}
		for _, r := range registros {
			assert.NotNil(t, r.IDDisciplina)
			notas[*r.IDDisciplina] = r.Nota
		}
		assert.Equal(t, 7.5, notas[constants.DisciplinaMatematica])
		assert.Equal(t, 8.0, notas[constants.DisciplinaPortugues])
		assert.Equal(t, 6.0, notas[constants.DisciplinaCiencias])
	})

	t.Run("matéria desconhecida mantém o registro sem disciplina", func(t *testing.T) {
		db := setupAlunoDB(t)
		svc := NewAlunoService(db)

		req := novoAlunoRequest("333.333.333-33")
		req.HistoricoEscolar = []dto.HistoricoLinhaRequest{{
			EscolaAnterior: "EE Machado de Assis",
			SerieAnterior:  "8ano",
			AnoConclusao:   2024,
			Notas:          map[string]interface{}{"robotica": 10.0},
		}}

		aluno, err := svc.Create(ctx, req)
		assert.NoError(t, err)

		var registros []historicoModel.HistoricoEscolarModel
		assert.NoError(t, db.Where("id_aluno = ?", aluno.ID).Find(&registros).Error)
		assert.Len(t, registros, 1)
		assert.Nil(t, registros[0].IDDisciplina)
	})

	t.Run("falha no histórico desfaz o aluno", func(t *testing.T) {
		db := setupAlunoDB(t)
		svc := NewAlunoService(db)

		// sem a tabela de histórico o insert da linha falha no meio da transação
		assert.NoError(t, db.Migrator().DropTable(&historicoModel.HistoricoEscolarModel{}))

		req := novoAlunoRequest("444.444.444-44")
		req.HistoricoEscolar = []dto.HistoricoLinhaRequest{{
			EscolaAnterior: "EMEF Monteiro Lobato",
			SerieAnterior:  "2ano",
			AnoConclusao:   2022,
			Notas:          map[string]interface{}{"ensinoGlobalizado": 7.0},
		}}

		_, err := svc.Create(ctx, req)
		assert.Error(t, err)

		var total int64
		assert.NoError(t, db.Model(&model.AlunoModel{}).Count(&total).Error)
		assert.Zero(t, total)
	})
}

func TestAlunoService_Delete(t *testing.T) {
	ctx := context.Background()
	db := setupAlunoDB(t)
	svc := NewAlunoService(db)

	turma := turmaModel.TurmaModel{Nome: "5º Ano B", AnoEscolar: 2026, QuantidadeMaxima: 25, Turno: "tarde", Serie: "5ano"}
	assert.NoError(t, db.Create(&turma).Error)

	req := novoAlunoRequest("555.555.555-55")
	req.Turma = &turma.ID
	req.HistoricoEscolar = []dto.HistoricoLinhaRequest{{
		EscolaAnterior: "EMEF Monteiro Lobato",
		SerieAnterior:  "4ano",
		AnoConclusao:   2024,
		Notas:          map[string]interface{}{"ensinoGlobalizado": 8.0},
	}}

	aluno, err := svc.Create(ctx, req)
	assert.NoError(t, err)

	assert.NoError(t, svc.Delete(ctx, aluno.ID))

	var matriculas, historicos int64
	assert.NoError(t, db.Model(&model.AlunoTurmaModel{}).Where("id_aluno = ?", aluno.ID).Count(&matriculas).Error)
	assert.NoError(t, db.Model(&historicoModel.HistoricoEscolarModel{}).Where("id_aluno = ?", aluno.ID).Count(&historicos).Error)
	assert.Zero(t, matriculas)
	assert.Zero(t, historicos)

	assert.ErrorIs(t, svc.Delete(ctx, aluno.ID), ErrNaoEncontrado)
}
