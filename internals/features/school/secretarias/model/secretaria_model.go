package model

import (
	usuarioModel "github.com/brunosimionato/API-edusystem/internals/features/users/usuarios/model"
)

// SecretariaModel é um invólucro fino sobre o usuário com papel secretaria.
type SecretariaModel struct {
	ID        uint `json:"id" gorm:"column:id_secretaria;primaryKey"`
	IDUsuario uint `json:"idUsuario" gorm:"column:id_usuario;not null;uniqueIndex"`

	Usuario *usuarioModel.UsuarioModel `json:"usuario,omitempty" gorm:"foreignKey:IDUsuario;references:ID"`
}

func (SecretariaModel) TableName() string {
	return "secretarias"
}
