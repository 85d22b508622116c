package dto

import (
	"strings"

	"github.com/brunosimionato/API-edusystem/internals/features/academics/horarios/model"
)

type CreateHorarioRequest struct {
	IDTurma      uint    `json:"idTurma" validate:"required"`
	IDProfessor  uint    `json:"idProfessor" validate:"required"`
	IDDisciplina uint    `json:"idDisciplina" validate:"required"`
	DiaSemana    int     `json:"diaSemana" validate:"required,min=1,max=5"`
	Periodo      int     `json:"periodo" validate:"required,min=1,max=5"`
	Sala         *string `json:"sala"`

	// sinônimos snake_case
	IDTurmaSnake      uint `json:"id_turma" validate:"-"`
	IDProfessorSnake  uint `json:"id_professor" validate:"-"`
	IDDisciplinaSnake uint `json:"id_disciplina" validate:"-"`
	DiaSemanaSnake    int  `json:"dia_semana" validate:"-"`
}

func (r *CreateHorarioRequest) Normalize() {
	if r.IDTurma == 0 {
		r.IDTurma = r.IDTurmaSnake
	}
	if r.IDProfessor == 0 {
		r.IDProfessor = r.IDProfessorSnake
	}
	if r.IDDisciplina == 0 {
		r.IDDisciplina = r.IDDisciplinaSnake
	}
	if r.DiaSemana == 0 {
		r.DiaSemana = r.DiaSemanaSnake
	}
	if r.Sala != nil && strings.TrimSpace(*r.Sala) == "" {
		r.Sala = nil
	}
}

func (r *CreateHorarioRequest) ToModel() *model.HorarioModel {
	return &model.HorarioModel{
		IDTurma:      r.IDTurma,
		IDProfessor:  r.IDProfessor,
		IDDisciplina: r.IDDisciplina,
		DiaSemana:    r.DiaSemana,
		Periodo:      r.Periodo,
		Sala:         r.Sala,
	}
}

type UpdateHorarioRequest struct {
	IDTurma      *uint   `json:"idTurma"`
	IDProfessor  *uint   `json:"idProfessor"`
	IDDisciplina *uint   `json:"idDisciplina"`
	DiaSemana    *int    `json:"diaSemana" validate:"omitempty,min=1,max=5"`
	Periodo      *int    `json:"periodo" validate:"omitempty,min=1,max=5"`
	Sala         *string `json:"sala"`
}

func (r *UpdateHorarioRequest) ApplyToModel(m *model.HorarioModel) {
	if r.IDTurma != nil {
		m.IDTurma = *r.IDTurma
	}
	if r.IDProfessor != nil {
		m.IDProfessor = *r.IDProfessor
	}
	if r.IDDisciplina != nil {
		m.IDDisciplina = *r.IDDisciplina
	}
	if r.DiaSemana != nil {
		m.DiaSemana = *r.DiaSemana
	}
	if r.Periodo != nil {
		m.Periodo = *r.Periodo
	}
	if r.Sala != nil {
		m.Sala = r.Sala
	}
}

// GradeHorarios indexa os slots por dia e período (dias 1 a 5).
type GradeHorarios map[int]map[int]model.HorarioModel
