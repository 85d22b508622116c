package dto

import (
	"github.com/brunosimionato/API-edusystem/internals/features/school/professores/model"
	usuarioDTO "github.com/brunosimionato/API-edusystem/internals/features/users/usuarios/dto"
)

// ProfessorPayload aceita as grafias camelCase e snake_case dos mesmos
// campos; Normalize resolve os sinônimos para o conjunto canônico.
type ProfessorPayload struct {
	IDUsuario                 *uint   `json:"idUsuario"`
	IDDisciplinaEspecialidade *uint   `json:"idDisciplinaEspecialidade"`
	FormacaoAcademica         *string `json:"formacaoAcademica"`

	IDUsuarioSnake                 *uint   `json:"id_usuario"`
	IDDisciplinaEspecialidadeSnake *uint   `json:"id_disciplina_especialidade"`
	FormacaoAcademicaSnake         *string `json:"formacao_academica"`
}

func (p *ProfessorPayload) Normalize() {
	if p.IDUsuario == nil {
		p.IDUsuario = p.IDUsuarioSnake
	}
	if p.IDDisciplinaEspecialidade == nil {
		p.IDDisciplinaEspecialidade = p.IDDisciplinaEspecialidadeSnake
	}
	if p.FormacaoAcademica == nil {
		p.FormacaoAcademica = p.FormacaoAcademicaSnake
	}
}

func (p *ProfessorPayload) ToModel() *model.ProfessorModel {
	m := &model.ProfessorModel{
		IDDisciplinaEspecialidade: p.IDDisciplinaEspecialidade,
		FormacaoAcademica:         p.FormacaoAcademica,
	}
	if p.IDUsuario != nil {
		m.IDUsuario = *p.IDUsuario
	}
	return m
}

// CreateProfessorRequest carrega o professor e, opcionalmente, o usuário que
// o respalda. Sem usuário no corpo, idUsuario precisa apontar para um
// usuário existente.
type CreateProfessorRequest struct {
	Usuario   *usuarioDTO.CreateUsuarioRequest `json:"usuario"`
	Professor *ProfessorPayload                `json:"professor"`
}

func (r *CreateProfessorRequest) Normalize() {
	if r.Usuario != nil {
		r.Usuario.Normalize()
	}
	if r.Professor != nil {
		r.Professor.Normalize()
	}
}

type UpdateProfessorRequest struct {
	IDDisciplinaEspecialidade *uint   `json:"idDisciplinaEspecialidade"`
	FormacaoAcademica         *string `json:"formacaoAcademica"`

	IDDisciplinaEspecialidadeSnake *uint   `json:"id_disciplina_especialidade"`
	FormacaoAcademicaSnake         *string `json:"formacao_academica"`
}

func (r *UpdateProfessorRequest) Normalize() {
	if r.IDDisciplinaEspecialidade == nil {
		r.IDDisciplinaEspecialidade = r.IDDisciplinaEspecialidadeSnake
	}
	if r.FormacaoAcademica == nil {
		r.FormacaoAcademica = r.FormacaoAcademicaSnake
	}
}

func (r *UpdateProfessorRequest) ApplyToModel(m *model.ProfessorModel) {
	if r.IDDisciplinaEspecialidade != nil {
		m.IDDisciplinaEspecialidade = r.IDDisciplinaEspecialidade
	}
	if r.FormacaoAcademica != nil {
		m.FormacaoAcademica = r.FormacaoAcademica
	}
}
