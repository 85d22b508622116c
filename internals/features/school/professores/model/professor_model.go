package model

import (
	disciplinaModel "github.com/brunosimionato/API-edusystem/internals/features/academics/disciplinas/model"
	usuarioModel "github.com/brunosimionato/API-edusystem/internals/features/users/usuarios/model"
)

type ProfessorModel struct {
	ID                        uint    `json:"id" gorm:"column:id_professor;primaryKey"`
	IDUsuario                 uint    `json:"idUsuario" gorm:"column:id_usuario;not null;uniqueIndex"`
	IDDisciplinaEspecialidade *uint   `json:"idDisciplinaEspecialidade" gorm:"column:id_disciplina_especialidade"`
	FormacaoAcademica         *string `json:"formacaoAcademica" gorm:"column:formacao_academica"`

	Usuario                 *usuarioModel.UsuarioModel       `json:"usuario,omitempty" gorm:"foreignKey:IDUsuario;references:ID"`
	DisciplinaEspecialidade *disciplinaModel.DisciplinaModel `json:"disciplinaEspecialidade,omitempty" gorm:"foreignKey:IDDisciplinaEspecialidade;references:ID"`
}

func (ProfessorModel) TableName() string {
	return "professores"
}
