package dto

import (
	"strings"

	"github.com/brunosimionato/API-edusystem/internals/features/academics/historicos/model"
)

type CreateHistoricoRequest struct {
	IDAluno        uint     `json:"idAluno" validate:"required"`
	IDDisciplina   *uint    `json:"idDisciplina"`
	NomeEscola     string   `json:"nomeEscola" validate:"required"`
	SerieConcluida string   `json:"serieConcluida" validate:"required"`
	Nota           *float64 `json:"nota" validate:"required,min=0,max=100"`
	AnoConclusao   int      `json:"anoConclusao" validate:"required,min=1900,max=2100"`

	// sinônimos aceitos de chamadores antigos
	IDAlunoSnake   uint   `json:"id_aluno" validate:"-"`
	EscolaAnterior string `json:"escolaAnterior" validate:"-"`
	SerieAnterior  string `json:"serieAnterior" validate:"-"`
}

func (r *CreateHistoricoRequest) Normalize() {
	if r.IDAluno == 0 {
		r.IDAluno = r.IDAlunoSnake
	}
	if r.NomeEscola == "" {
		r.NomeEscola = r.EscolaAnterior
	}
	if r.SerieConcluida == "" {
		r.SerieConcluida = r.SerieAnterior
	}
	r.NomeEscola = strings.TrimSpace(r.NomeEscola)
	r.SerieConcluida = strings.TrimSpace(r.SerieConcluida)
}

func (r *CreateHistoricoRequest) ToModel() *model.HistoricoEscolarModel {
	return &model.HistoricoEscolarModel{
		IDAluno:        r.IDAluno,
		IDDisciplina:   r.IDDisciplina,
		NomeEscola:     r.NomeEscola,
		SerieConcluida: r.SerieConcluida,
		Nota:           *r.Nota,
		AnoConclusao:   r.AnoConclusao,
	}
}

type UpdateHistoricoRequest struct {
	IDDisciplina   *uint    `json:"idDisciplina"`
	NomeEscola     *string  `json:"nomeEscola"`
	SerieConcluida *string  `json:"serieConcluida"`
	Nota           *float64 `json:"nota" validate:"omitempty,min=0,max=100"`
	AnoConclusao   *int     `json:"anoConclusao" validate:"omitempty,min=1900,max=2100"`
}

func (r *UpdateHistoricoRequest) ApplyToModel(m *model.HistoricoEscolarModel) {
	if r.IDDisciplina != nil {
		m.IDDisciplina = r.IDDisciplina
	}
	if r.NomeEscola != nil {
		m.NomeEscola = strings.TrimSpace(*r.NomeEscola)
	}
	if r.SerieConcluida != nil {
		m.SerieConcluida = strings.TrimSpace(*r.SerieConcluida)
	}
	if r.Nota != nil {
		m.Nota = *r.Nota
	}
	if r.AnoConclusao != nil {
		m.AnoConclusao = *r.AnoConclusao
	}
}
