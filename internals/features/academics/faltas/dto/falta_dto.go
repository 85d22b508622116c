package dto

import (
	"strings"

	"github.com/brunosimionato/API-edusystem/internals/features/academics/faltas/model"
	helper "github.com/brunosimionato/API-edusystem/internals/helpers"
)

type CreateFaltaRequest struct {
	IDAluno     uint    `json:"idAluno" validate:"required"`
	IDTurma     uint    `json:"idTurma" validate:"required"`
	Data        string  `json:"data" validate:"required"`
	Periodo     *int    `json:"periodo" validate:"omitempty,min=1,max=5"`
	Justificada bool    `json:"justificada"`
	Observacao  *string `json:"observacao"`

	// sinônimos snake_case
	IDAlunoSnake uint `json:"id_aluno" validate:"-"`
	IDTurmaSnake uint `json:"id_turma" validate:"-"`
}

func (r *CreateFaltaRequest) Normalize() {
	if r.IDAluno == 0 {
		r.IDAluno = r.IDAlunoSnake
	}
	if r.IDTurma == 0 {
		r.IDTurma = r.IDTurmaSnake
	}
	if r.Observacao != nil && strings.TrimSpace(*r.Observacao) == "" {
		r.Observacao = nil
	}
}

func (r *CreateFaltaRequest) ToModel() (*model.FaltaModel, error) {
	data, err := helper.ParseDate(r.Data)
	if err != nil {
		return nil, err
	}
	return &model.FaltaModel{
		IDAluno:     r.IDAluno,
		IDTurma:     r.IDTurma,
		Data:        data,
		Periodo:     r.Periodo,
		Justificada: r.Justificada,
		Observacao:  r.Observacao,
	}, nil
}

// CreateFaltasLoteRequest registra as faltas de uma chamada inteira de uma vez.
type CreateFaltasLoteRequest struct {
	Faltas []CreateFaltaRequest `json:"faltas" validate:"required,min=1,dive"`
}

func (r *CreateFaltasLoteRequest) Normalize() {
	for i := range r.Faltas {
		r.Faltas[i].Normalize()
	}
}

type UpdateFaltaRequest struct {
	Data        *string `json:"data"`
	Periodo     *int    `json:"periodo" validate:"omitempty,min=1,max=5"`
	Justificada *bool   `json:"justificada"`
	Observacao  *string `json:"observacao"`
}

func (r *UpdateFaltaRequest) ApplyToModel(m *model.FaltaModel) error {
	if r.Data != nil {
		data, err := helper.ParseDate(*r.Data)
		if err != nil {
			return err
		}
		m.Data = data
	}
	if r.Periodo != nil {
		m.Periodo = r.Periodo
	}
	if r.Justificada != nil {
		m.Justificada = *r.Justificada
	}
	if r.Observacao != nil {
		m.Observacao = r.Observacao
	}
	return nil
}

// EstatisticasFaltas resume o quadro de ausências do filtro aplicado.
type EstatisticasFaltas struct {
	TotalFaltas       int64 `json:"totalFaltas"`
	TotalJustificadas int64 `json:"totalJustificadas"`
	TotalAlunos       int64 `json:"totalAlunos"`
	TotalTurmas       int64 `json:"totalTurmas"`
}
