package dto

import (
	"strings"

	"github.com/brunosimionato/API-edusystem/internals/features/users/usuarios/model"
)

// =========================
// CREATE
// =========================
type CreateUsuarioRequest struct {
	Nome        string `json:"nome" validate:"required,min=2,max=120"`
	Email       string `json:"email" validate:"required,email"`
	Senha       string `json:"senha" validate:"required,min=6"`
	TipoUsuario string `json:"tipo_usuario" validate:"required,oneof=aluno professor secretaria"`

	// sinônimo camelCase aceito de chamadores antigos
	TipoUsuarioAlt string `json:"tipoUsuario" validate:"-"`
}

func (r *CreateUsuarioRequest) Normalize() {
	if r.TipoUsuario == "" && r.TipoUsuarioAlt != "" {
		r.TipoUsuario = r.TipoUsuarioAlt
	}
	r.Nome = strings.TrimSpace(r.Nome)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.TipoUsuario = strings.ToLower(strings.TrimSpace(r.TipoUsuario))
}

func (r *CreateUsuarioRequest) ToModel() *model.UsuarioModel {
	return &model.UsuarioModel{
		Nome:        r.Nome,
		Email:       r.Email,
		TipoUsuario: r.TipoUsuario,
		Ativo:       true,
	}
}

// =========================
// UPDATE (parcial)
// =========================
type UpdateUsuarioRequest struct {
	Nome  *string `json:"nome" validate:"omitempty,min=2,max=120"`
	Email *string `json:"email" validate:"omitempty,email"`
	Senha *string `json:"senha" validate:"omitempty,min=6"`
}

func (r *UpdateUsuarioRequest) Normalize() {
	if r.Nome != nil {
		n := strings.TrimSpace(*r.Nome)
		r.Nome = &n
	}
	if r.Email != nil {
		e := strings.ToLower(strings.TrimSpace(*r.Email))
		r.Email = &e
	}
}

// ApplyToModel mantém tipo_usuario; a troca de senha é resolvida no service.
func (r *UpdateUsuarioRequest) ApplyToModel(m *model.UsuarioModel) {
	if r.Nome != nil {
		m.Nome = *r.Nome
	}
	if r.Email != nil {
		m.Email = *r.Email
	}
}
