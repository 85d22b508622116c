package dto

import "strings"

type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required"`
	Role  string `json:"role" validate:"required,oneof=aluno professor secretaria"`

	// sinônimo aceito de chamadores antigos
	Password string `json:"password" validate:"-"`
}

func (r *LoginRequest) Normalize() {
	if r.Senha == "" && r.Password != "" {
		r.Senha = r.Password
	}
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Role = strings.ToLower(strings.TrimSpace(r.Role))
}

type LoginResponse struct {
	Token string `json:"token"`
}
