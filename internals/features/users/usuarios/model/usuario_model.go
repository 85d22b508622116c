package model

import "time"

// UsuarioModel representa a tabela usuarios. A coluna hash_senha nunca sai
// nas respostas JSON.
type UsuarioModel struct {
	ID          uint      `json:"id" gorm:"column:id_usuarios;primaryKey"`
	Nome        string    `json:"nome" gorm:"column:nome;not null"`
	Email       string    `json:"email" gorm:"column:email;uniqueIndex;not null"`
	HashSenha   string    `json:"-" gorm:"column:hash_senha;not null"`
	TipoUsuario string    `json:"tipo_usuario" gorm:"column:tipo_usuario;not null"`
	Ativo       bool      `json:"ativo" gorm:"column:ativo;not null;default:true"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (UsuarioModel) TableName() string {
	return "usuarios"
}
