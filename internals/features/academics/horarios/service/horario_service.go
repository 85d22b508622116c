package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/brunosimionato/API-edusystem/internals/features/academics/horarios/dto"
	"github.com/brunosimionato/API-edusystem/internals/features/academics/horarios/model"
)

var (
	ErrNaoEncontrado = errors.New("Horário não encontrado")
	ErrConflito      = errors.New("Conflito de horário detectado. Já existe um horário para este professor no mesmo dia e período.")
)

type HorarioService struct {
	DB *gorm.DB
}

func NewHorarioService(db *gorm.DB) *HorarioService {
	return &HorarioService{DB: db}
}

func (s *HorarioService) List(ctx context.Context) ([]model.HorarioModel, error) {
	var horarios []model.HorarioModel
	err := s.DB.WithContext(ctx).Order("id_horarios ASC").Find(&horarios).Error
	return horarios, err
}

func (s *HorarioService) GetByID(ctx context.Context, id uint) (*model.HorarioModel, error) {
	var horario model.HorarioModel
	if err := s.DB.WithContext(ctx).First(&horario, "id_horarios = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNaoEncontrado
		}
		return nil, err
	}
	return &horario, nil
}

func (s *HorarioService) GetByTurmaID(ctx context.Context, turmaID uint) ([]model.HorarioModel, error) {
	var horarios []model.HorarioModel
	err := s.DB.WithContext(ctx).
		Where("id_turma = ?", turmaID).
		Order("dia_semana ASC, periodo ASC").
		Find(&horarios).Error
	return horarios, err
}

func (s *HorarioService) GetByProfessorID(ctx context.Context, professorID uint) ([]model.HorarioModel, error) {
	var horarios []model.HorarioModel
	err := s.DB.WithContext(ctx).
		Where("id_professor = ?", professorID).
		Order("dia_semana ASC, periodo ASC").
		Find(&horarios).Error
	return horarios, err
}

// GetGrade monta a grade semanal da turma indexada por dia e período.
func (s *HorarioService) GetGrade(ctx context.Context, turmaID uint) (dto.GradeHorarios, error) {
	horarios, err := s.GetByTurmaID(ctx, turmaID)
	if err != nil {
		return nil, err
	}

	grade := dto.GradeHorarios{}
	for dia := 1; dia <= 5; dia++ {
		grade[dia] = map[int]model.HorarioModel{}
	}
	for _, horario := range horarios {
		if _, ok := grade[horario.DiaSemana]; !ok {
			grade[horario.DiaSemana] = map[int]model.HorarioModel{}
		}
		grade[horario.DiaSemana][horario.Periodo] = horario
	}
	return grade, nil
}

// HasConflito verifica se o professor já ocupa o dia e período informados,
// ignorando o próprio slot quando excludeID > 0.
func (s *HorarioService) HasConflito(ctx context.Context, professorID uint, diaSemana, periodo int, excludeID uint) (bool, error) {
	q := s.DB.WithContext(ctx).Model(&model.HorarioModel{}).
		Where("id_professor = ? AND dia_semana = ? AND periodo = ?", professorID, diaSemana, periodo)
	if excludeID > 0 {
		q = q.Where("id_horarios != ?", excludeID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return false, err
	}
	return total > 0, nil
}

// Create só grava depois de checar o conflito; nada é escrito quando há choque.
func (s *HorarioService) Create(ctx context.Context, req *dto.CreateHorarioRequest) (*model.HorarioModel, error) {
	conflito, err := s.HasConflito(ctx, req.IDProfessor, req.DiaSemana, req.Periodo, 0)
	if err != nil {
		return nil, err
	}
	if conflito {
		return nil, ErrConflito
	}

	horario := req.ToModel()
	if err := s.DB.WithContext(ctx).Create(horario).Error; err != nil {
		return nil, err
	}
	return horario, nil
}

func (s *HorarioService) Update(ctx context.Context, id uint, req *dto.UpdateHorarioRequest) (*model.HorarioModel, error) {
	horario, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.ApplyToModel(horario)

	conflito, err := s.HasConflito(ctx, horario.IDProfessor, horario.DiaSemana, horario.Periodo, id)
	if err != nil {
		return nil, err
	}
	if conflito {
		return nil, ErrConflito
	}

	if err := s.DB.WithContext(ctx).Save(horario).Error; err != nil {
		return nil, err
	}
	return horario, nil
}

func (s *HorarioService) Delete(ctx context.Context, id uint) error {
	res := s.DB.WithContext(ctx).Delete(&model.HorarioModel{}, "id_horarios = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNaoEncontrado
	}
	return nil
}
