package dto

import (
	"strings"

	"github.com/brunosimionato/API-edusystem/internals/features/academics/disciplinas/model"
)

type CreateDisciplinaRequest struct {
	Nome string `json:"nome" validate:"required,min=2,max=80"`
}

func (r *CreateDisciplinaRequest) Normalize() {
	r.Nome = strings.TrimSpace(r.Nome)
}

func (r *CreateDisciplinaRequest) ToModel() *model.DisciplinaModel {
	return &model.DisciplinaModel{Nome: r.Nome}
}

type UpdateDisciplinaRequest struct {
	Nome *string `json:"nome" validate:"omitempty,min=2,max=80"`
}

func (r *UpdateDisciplinaRequest) ApplyToModel(m *model.DisciplinaModel) {
	if r.Nome != nil {
		m.Nome = strings.TrimSpace(*r.Nome)
	}
}
