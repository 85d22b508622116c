package model

import (
	disciplinaModel "github.com/brunosimionato/API-edusystem/internals/features/academics/disciplinas/model"
	turmaModel "github.com/brunosimionato/API-edusystem/internals/features/academics/turmas/model"
	professorModel "github.com/brunosimionato/API-edusystem/internals/features/school/professores/model"
)

// HorarioModel é um slot da grade: dias 1 (segunda) a 5 (sexta), períodos 1 a 5.
type HorarioModel struct {
	ID           uint    `json:"id" gorm:"column:id_horarios;primaryKey"`
	IDTurma      uint    `json:"idTurma" gorm:"column:id_turma;not null;index"`
	IDProfessor  uint    `json:"idProfessor" gorm:"column:id_professor;not null;index"`
	IDDisciplina uint    `json:"idDisciplina" gorm:"column:id_disciplina;not null"`
	DiaSemana    int     `json:"diaSemana" gorm:"column:dia_semana;not null"`
	Periodo      int     `json:"periodo" gorm:"column:periodo;not null"`
	Sala         *string `json:"sala" gorm:"column:sala"`

	Turma      *turmaModel.TurmaModel           `json:"turma,omitempty" gorm:"foreignKey:IDTurma;references:ID"`
	Professor  *professorModel.ProfessorModel   `json:"professor,omitempty" gorm:"foreignKey:IDProfessor;references:ID"`
	Disciplina *disciplinaModel.DisciplinaModel `json:"disciplina,omitempty" gorm:"foreignKey:IDDisciplina;references:ID"`
}

func (HorarioModel) TableName() string {
	return "horarios"
}
