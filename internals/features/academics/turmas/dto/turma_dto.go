package dto

import (
	"strings"

	"github.com/brunosimionato/API-edusystem/internals/features/academics/turmas/model"
	alunoModel "github.com/brunosimionato/API-edusystem/internals/features/school/alunos/model"
)

type CreateTurmaRequest struct {
	Nome             string `json:"nome" validate:"required,min=1,max=60"`
	AnoEscolar       int    `json:"anoEscolar" validate:"required,min=2000,max=2100"`
	QuantidadeMaxima int    `json:"quantidadeMaxima" validate:"required,min=1,max=60"`
	Turno            string `json:"turno" validate:"required,oneof=manha tarde noite integral"`
	Serie            string `json:"serie" validate:"required"`

	// sinônimos snake_case
	AnoEscolarSnake       int `json:"ano_escolar" validate:"-"`
	QuantidadeMaximaSnake int `json:"quantidade_maxima" validate:"-"`
}

func (r *CreateTurmaRequest) Normalize() {
	if r.AnoEscolar == 0 && r.AnoEscolarSnake != 0 {
		r.AnoEscolar = r.AnoEscolarSnake
	}
	if r.QuantidadeMaxima == 0 && r.QuantidadeMaximaSnake != 0 {
		r.QuantidadeMaxima = r.QuantidadeMaximaSnake
	}
	r.Nome = strings.TrimSpace(r.Nome)
	r.Turno = strings.ToLower(strings.TrimSpace(r.Turno))
	r.Serie = strings.TrimSpace(r.Serie)
}

func (r *CreateTurmaRequest) ToModel() *model.TurmaModel {
	return &model.TurmaModel{
		Nome:             r.Nome,
		AnoEscolar:       r.AnoEscolar,
		QuantidadeMaxima: r.QuantidadeMaxima,
		Turno:            r.Turno,
		Serie:            r.Serie,
	}
}

type UpdateTurmaRequest struct {
	Nome             *string `json:"nome" validate:"omitempty,min=1,max=60"`
	AnoEscolar       *int    `json:"anoEscolar" validate:"omitempty,min=2000,max=2100"`
	QuantidadeMaxima *int    `json:"quantidadeMaxima" validate:"omitempty,min=1,max=60"`
	Turno            *string `json:"turno" validate:"omitempty,oneof=manha tarde noite integral"`
	Serie            *string `json:"serie"`
}

func (r *UpdateTurmaRequest) ApplyToModel(m *model.TurmaModel) {
	if r.Nome != nil {
		m.Nome = strings.TrimSpace(*r.Nome)
	}
	if r.AnoEscolar != nil {
		m.AnoEscolar = *r.AnoEscolar
	}
	if r.QuantidadeMaxima != nil {
		m.QuantidadeMaxima = *r.QuantidadeMaxima
	}
	if r.Turno != nil {
		m.Turno = strings.ToLower(strings.TrimSpace(*r.Turno))
	}
	if r.Serie != nil {
		m.Serie = strings.TrimSpace(*r.Serie)
	}
}

// TurmaComAlunosResponse é a listagem com as matrículas embutidas
// (GET /turmas?with=alunos).
type TurmaComAlunosResponse struct {
	model.TurmaModel
	Alunos []alunoModel.AlunoModel `json:"alunos"`
}
