package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/brunosimionato/API-edusystem/internals/constants"
	historicoModel "github.com/brunosimionato/API-edusystem/internals/features/academics/historicos/model"
	turmaModel "github.com/brunosimionato/API-edusystem/internals/features/academics/turmas/model"
	"github.com/brunosimionato/API-edusystem/internals/features/school/alunos/dto"
	"github.com/brunosimionato/API-edusystem/internals/features/school/alunos/model"
	helper "github.com/brunosimionato/API-edusystem/internals/helpers"
)

var (
	ErrNaoEncontrado = errors.New("Aluno não encontrado")
	ErrCPFEmUso      = errors.New("CPF já cadastrado")
	ErrTurmaInvalida = errors.New("Turma não encontrada")
)

type AlunoService struct {
	DB *gorm.DB
}

func NewAlunoService(db *gorm.DB) *AlunoService {
	return &AlunoService{DB: db}
}

func (s *AlunoService) List(ctx context.Context) ([]dto.AlunoResponse, error) {
	var alunos []model.AlunoModel
	if err := s.DB.WithContext(ctx).Order("id_aluno ASC").Find(&alunos).Error; err != nil {
		return nil, err
	}

	out := make([]dto.AlunoResponse, 0, len(alunos))
	for i := range alunos {
		turma, err := s.turmaDoAluno(ctx, alunos[i].ID)
		if err != nil {
			return nil, err
		}
		out = append(out, dto.FromModel(&alunos[i], turma))
	}
	return out, nil
}

func (s *AlunoService) GetByID(ctx context.Context, id uint) (*dto.AlunoResponse, error) {
	var aluno model.AlunoModel
	if err := s.DB.WithContext(ctx).First(&aluno, "id_aluno = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNaoEncontrado
		}
		return nil, err
	}
	turma, err := s.turmaDoAluno(ctx, aluno.ID)
	if err != nil {
		return nil, err
	}
	resp := dto.FromModel(&aluno, turma)
	return &resp, nil
}

// Create grava aluno, matrícula e histórico escolar em uma única transação.
// Qualquer falha no meio desfaz tudo.
func (s *AlunoService) Create(ctx context.Context, req *dto.CreateAlunoRequest) (*dto.AlunoResponse, error) {
	aluno, err := req.ToModel()
	if err != nil {
		return nil, err
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(aluno).Error; err != nil {
			return err
		}

		if req.Turma != nil {
			var turma turmaModel.TurmaModel
			if err := tx.First(&turma, "id_turma = ?", *req.Turma).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrTurmaInvalida
				}
				return err
			}
			matricula := model.AlunoTurmaModel{IDAluno: aluno.ID, IDTurma: turma.ID}
			if err := tx.Create(&matricula).Error; err != nil {
				return err
			}
		}

		for i := range req.HistoricoEscolar {
			if err := s.criarHistorico(tx, aluno.ID, &req.HistoricoEscolar[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if helper.IsUniqueViolation(err) {
			return nil, ErrCPFEmUso
		}
		return nil, err
	}

	return s.GetByID(ctx, aluno.ID)
}

// criarHistorico aplica a regra do boletim: nos anos iniciais (1ano a 5ano) a
// linha vira um único registro na disciplina Ensino Globalizado; nos anos
// finais (6ano a 9ano) vira um registro por matéria presente no boletim,
// pulando a chave ensinoGlobalizado e notas nulas ou vazias.
func (s *AlunoService) criarHistorico(tx *gorm.DB, alunoID uint, linha *dto.HistoricoLinhaRequest) error {
	switch {
	case constants.IsSerieInicial(linha.SerieAnterior):
		nota := 0.0
		if v, ok := coerceNota(linha.Notas["ensinoGlobalizado"]); ok {
			nota = v
		}
		id := constants.DisciplinaEnsinoGlobalizado
		registro := historicoModel.HistoricoEscolarModel{
			IDAluno:        alunoID,
			IDDisciplina:   &id,
			NomeEscola:     linha.Escola(),
			SerieConcluida: linha.SerieAnterior,
			Nota:           nota,
			AnoConclusao:   linha.AnoConclusao,
		}
		return tx.Create(&registro).Error

	case constants.IsSerieFinal(linha.SerieAnterior):
		for materia, valor := range linha.Notas {
			if materia == "ensinoGlobalizado" {
				continue
			}
			nota, ok := coerceNota(valor)
			if !ok {
				continue
			}
			var idDisciplina *uint
			if id, ok := constants.DisciplinaIDs[materia]; ok {
				idDisciplina = &id
			}
			registro := historicoModel.HistoricoEscolarModel{
				IDAluno:        alunoID,
				IDDisciplina:   idDisciplina,
				NomeEscola:     linha.Escola(),
				SerieConcluida: linha.SerieAnterior,
				Nota:           nota,
				AnoConclusao:   linha.AnoConclusao,
			}
			if err := tx.Create(&registro).Error; err != nil {
				return err
			}
		}
		return nil
	}
	// série fora das faixas conhecidas não gera registro
	return nil
}

func (s *AlunoService) Update(ctx context.Context, id uint, req *dto.UpdateAlunoRequest) (*dto.AlunoResponse, error) {
	var aluno model.AlunoModel
	if err := s.DB.WithContext(ctx).First(&aluno, "id_aluno = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNaoEncontrado
		}
		return nil, err
	}

	if err := req.ApplyToModel(&aluno); err != nil {
		return nil, err
	}
	if err := s.DB.WithContext(ctx).Save(&aluno).Error; err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// Delete remove o aluno junto com matrícula e histórico.
func (s *AlunoService) Delete(ctx context.Context, id uint) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var aluno model.AlunoModel
		if err := tx.First(&aluno, "id_aluno = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNaoEncontrado
			}
			return err
		}
		if err := tx.Where("id_aluno = ?", id).Delete(&model.AlunoTurmaModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("id_aluno = ?", id).Delete(&historicoModel.HistoricoEscolarModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&aluno).Error
	})
}

func (s *AlunoService) turmaDoAluno(ctx context.Context, alunoID uint) (*turmaModel.TurmaModel, error) {
	var matricula model.AlunoTurmaModel
	err := s.DB.WithContext(ctx).First(&matricula, "id_aluno = ?", alunoID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var turma turmaModel.TurmaModel
	if err := s.DB.WithContext(ctx).First(&turma, "id_turma = ?", matricula.IDTurma).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &turma, nil
}

// coerceNota aceita número ou string numérica; nulos e vazios são descartados.
func coerceNota(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case string:
		trimmed := strings.TrimSpace(n)
		if trimmed == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
