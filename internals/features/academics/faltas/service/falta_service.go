package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/brunosimionato/API-edusystem/internals/features/academics/faltas/dto"
	"github.com/brunosimionato/API-edusystem/internals/features/academics/faltas/model"
	helper "github.com/brunosimionato/API-edusystem/internals/helpers"
)

var ErrNaoEncontrada = errors.New("Falta não encontrada")

type ListFaltasFilter struct {
	IDAluno    uint
	IDTurma    uint
	DataInicio string
	DataFim    string
	Page       int
	Limit      int
}

type FaltaService struct {
	DB *gorm.DB
}

func NewFaltaService(db *gorm.DB) *FaltaService {
	return &FaltaService{DB: db}
}

func (s *FaltaService) List(ctx context.Context, filter ListFaltasFilter) ([]model.FaltaModel, error) {
	q, err := s.filtered(ctx, filter)
	if err != nil {
		return nil, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 10
	}

	var faltas []model.FaltaModel
	err = q.Order("data DESC, created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&faltas).Error
	return faltas, err
}

func (s *FaltaService) GetByID(ctx context.Context, id uint) (*model.FaltaModel, error) {
	var falta model.FaltaModel
	if err := s.DB.WithContext(ctx).First(&falta, "id_faltas = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNaoEncontrada
		}
		return nil, err
	}
	return &falta, nil
}

func (s *FaltaService) GetByAlunoID(ctx context.Context, alunoID uint, dataInicio, dataFim string) ([]model.FaltaModel, error) {
	return s.List(ctx, ListFaltasFilter{
		IDAluno:    alunoID,
		DataInicio: dataInicio,
		DataFim:    dataFim,
		Limit:      1000,
	})
}

func (s *FaltaService) GetByTurmaID(ctx context.Context, turmaID uint, data string) ([]model.FaltaModel, error) {
	q := s.DB.WithContext(ctx).Where("id_turma = ?", turmaID)
	if data != "" {
		d, err := helper.ParseDate(data)
		if err != nil {
			return nil, err
		}
		q = q.Where("data = ?", time.Time(d))
	}

	var faltas []model.FaltaModel
	err := q.Order("data DESC, created_at DESC").Find(&faltas).Error
	return faltas, err
}

func (s *FaltaService) Create(ctx context.Context, req *dto.CreateFaltaRequest) (*model.FaltaModel, error) {
	falta, err := req.ToModel()
	if err != nil {
		return nil, err
	}
	if err := s.DB.WithContext(ctx).Create(falta).Error; err != nil {
		return nil, err
	}
	return falta, nil
}

// CreateLote grava a chamada inteira em uma transação só.
func (s *FaltaService) CreateLote(ctx context.Context, req *dto.CreateFaltasLoteRequest) ([]model.FaltaModel, error) {
	faltas := make([]model.FaltaModel, 0, len(req.Faltas))
	for i := range req.Faltas {
		falta, err := req.Faltas[i].ToModel()
		if err != nil {
			return nil, err
		}
		faltas = append(faltas, *falta)
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&faltas).Error
	})
	if err != nil {
		return nil, err
	}
	return faltas, nil
}

func (s *FaltaService) Update(ctx context.Context, id uint, req *dto.UpdateFaltaRequest) (*model.FaltaModel, error) {
	falta, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := req.ApplyToModel(falta); err != nil {
		return nil, err
	}
	if err := s.DB.WithContext(ctx).Save(falta).Error; err != nil {
		return nil, err
	}
	return falta, nil
}

func (s *FaltaService) Delete(ctx context.Context, id uint) error {
	res := s.DB.WithContext(ctx).Delete(&model.FaltaModel{}, "id_faltas = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNaoEncontrada
	}
	return nil
}

// Estatisticas agrega totais de faltas no recorte do filtro.
func (s *FaltaService) Estatisticas(ctx context.Context, filter ListFaltasFilter) (*dto.EstatisticasFaltas, error) {
	stats := &dto.EstatisticasFaltas{}

	q, err := s.filtered(ctx, filter)
	if err != nil {
		return nil, err
	}
	if err := q.Count(&stats.TotalFaltas).Error; err != nil {
		return nil, err
	}

	q, err = s.filtered(ctx, filter)
	if err != nil {
		return nil, err
	}
	if err := q.Where("justificada = ?", true).Count(&stats.TotalJustificadas).Error; err != nil {
		return nil, err
	}

	q, err = s.filtered(ctx, filter)
	if err != nil {
		return nil, err
	}
	if err := q.Distinct("id_aluno").Count(&stats.TotalAlunos).Error; err != nil {
		return nil, err
	}

	q, err = s.filtered(ctx, filter)
	if err != nil {
		return nil, err
	}
	if err := q.Distinct("id_turma").Count(&stats.TotalTurmas).Error; err != nil {
		return nil, err
	}

	return stats, nil
}

func (s *FaltaService) filtered(ctx context.Context, filter ListFaltasFilter) (*gorm.DB, error) {
	q := s.DB.WithContext(ctx).Model(&model.FaltaModel{})
	if filter.IDAluno > 0 {
		q = q.Where("id_aluno = ?", filter.IDAluno)
	}
	if filter.IDTurma > 0 {
		q = q.Where("id_turma = ?", filter.IDTurma)
	}
	if filter.DataInicio != "" {
		d, err := helper.ParseDate(filter.DataInicio)
		if err != nil {
			return nil, err
		}
		q = q.Where("data >= ?", time.Time(d))
	}
	if filter.DataFim != "" {
		d, err := helper.ParseDate(filter.DataFim)
		if err != nil {
			return nil, err
		}
		q = q.Where("data <= ?", time.Time(d))
	}
	return q, nil
}
