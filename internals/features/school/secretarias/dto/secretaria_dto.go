package dto

import (
	usuarioDTO "github.com/brunosimionato/API-edusystem/internals/features/users/usuarios/dto"
)

// CreateSecretariaRequest aceita um usuário embutido ou um idUsuario já
// existente (nas duas grafias).
type CreateSecretariaRequest struct {
	Usuario        *usuarioDTO.CreateUsuarioRequest `json:"usuario"`
	IDUsuario      *uint                            `json:"idUsuario"`
	IDUsuarioSnake *uint                            `json:"id_usuario"`
}

func (r *CreateSecretariaRequest) Normalize() {
	if r.IDUsuario == nil {
		r.IDUsuario = r.IDUsuarioSnake
	}
	if r.Usuario != nil {
		r.Usuario.Normalize()
	}
}
