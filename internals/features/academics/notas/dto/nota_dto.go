package dto

import (
	"strings"

	"github.com/brunosimionato/API-edusystem/internals/features/academics/notas/model"
)

type CreateNotaRequest struct {
	IDAluno      uint     `json:"idAluno" validate:"required"`
	IDDisciplina uint     `json:"idDisciplina" validate:"required"`
	IDTurma      uint     `json:"idTurma" validate:"required"`
	Trimestre    int      `json:"trimestre" validate:"required,min=1,max=3"`
	Nota         *float64 `json:"nota" validate:"required,min=0,max=100"`
	AnoLetivo    int      `json:"anoLetivo" validate:"required,min=2000,max=2100"`
	Tipo         string   `json:"tipo" validate:"omitempty,oneof=bimestral recuperacao final"`

	// sinônimos snake_case
	IDAlunoSnake      uint `json:"id_aluno" validate:"-"`
	IDDisciplinaSnake uint `json:"id_disciplina" validate:"-"`
	IDTurmaSnake      uint `json:"id_turma" validate:"-"`
	AnoLetivoSnake    int  `json:"ano_letivo" validate:"-"`
}

func (r *CreateNotaRequest) Normalize() {
	if r.IDAluno == 0 {
		r.IDAluno = r.IDAlunoSnake
	}
	if r.IDDisciplina == 0 {
		r.IDDisciplina = r.IDDisciplinaSnake
	}
	if r.IDTurma == 0 {
		r.IDTurma = r.IDTurmaSnake
	}
	if r.AnoLetivo == 0 {
		r.AnoLetivo = r.AnoLetivoSnake
	}
	r.Tipo = strings.ToLower(strings.TrimSpace(r.Tipo))
	if r.Tipo == "" {
		r.Tipo = "bimestral"
	}
}

func (r *CreateNotaRequest) ToModel() *model.NotaModel {
	return &model.NotaModel{
		IDAluno:      r.IDAluno,
		IDDisciplina: r.IDDisciplina,
		IDTurma:      r.IDTurma,
		Trimestre:    r.Trimestre,
		Nota:         *r.Nota,
		AnoLetivo:    r.AnoLetivo,
		Tipo:         r.Tipo,
	}
}

type UpdateNotaRequest struct {
	Trimestre *int     `json:"trimestre" validate:"omitempty,min=1,max=3"`
	Nota      *float64 `json:"nota" validate:"omitempty,min=0,max=100"`
	AnoLetivo *int     `json:"anoLetivo" validate:"omitempty,min=2000,max=2100"`
	Tipo      *string  `json:"tipo" validate:"omitempty,oneof=bimestral recuperacao final"`
}

func (r *UpdateNotaRequest) ApplyToModel(m *model.NotaModel) {
	if r.Trimestre != nil {
		m.Trimestre = *r.Trimestre
	}
	if r.Nota != nil {
		m.Nota = *r.Nota
	}
	if r.AnoLetivo != nil {
		m.AnoLetivo = *r.AnoLetivo
	}
	if r.Tipo != nil {
		m.Tipo = strings.ToLower(*r.Tipo)
	}
}
