package model

import (
	"time"

	disciplinaModel "github.com/brunosimionato/API-edusystem/internals/features/academics/disciplinas/model"
	turmaModel "github.com/brunosimionato/API-edusystem/internals/features/academics/turmas/model"
	alunoModel "github.com/brunosimionato/API-edusystem/internals/features/school/alunos/model"
)

// NotaModel guarda a avaliação do aluno: nota de 0 a 100, trimestre 1 a 3,
// tipo bimestral, recuperacao ou final.
type NotaModel struct {
	ID           uint      `json:"id" gorm:"column:id_nota;primaryKey"`
	IDAluno      uint      `json:"idAluno" gorm:"column:id_aluno;not null;index"`
	IDDisciplina uint      `json:"idDisciplina" gorm:"column:id_disciplina;not null;index"`
	IDTurma      uint      `json:"idTurma" gorm:"column:id_turma;not null;index"`
	Trimestre    int       `json:"trimestre" gorm:"column:trimestre;not null"`
	Nota         float64   `json:"nota" gorm:"column:nota;not null"`
	AnoLetivo    int       `json:"anoLetivo" gorm:"column:ano_letivo;not null"`
	Tipo         string    `json:"tipo" gorm:"column:tipo;not null;default:bimestral"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`

	Aluno      *alunoModel.AlunoModel           `json:"aluno,omitempty" gorm:"foreignKey:IDAluno;references:ID"`
	Disciplina *disciplinaModel.DisciplinaModel `json:"disciplina,omitempty" gorm:"foreignKey:IDDisciplina;references:ID"`
	Turma      *turmaModel.TurmaModel           `json:"turma,omitempty" gorm:"foreignKey:IDTurma;references:ID"`
}

func (NotaModel) TableName() string {
	return "notas"
}
