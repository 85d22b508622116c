package model

import (
	"time"

	"gorm.io/datatypes"
)

type AlunoModel struct {
	ID        uint  `json:"id" gorm:"column:id_aluno;primaryKey"`
	IDUsuario *uint `json:"idUsuario,omitempty" gorm:"column:id_usuario;index"`

	Nome       string         `json:"nome" gorm:"column:nome;not null"`
	CPF        string         `json:"cpf" gorm:"column:cpf;uniqueIndex;not null"`
	CNS        string         `json:"cns" gorm:"column:cns;not null"`
	Nascimento datatypes.Date `json:"nascimento" gorm:"column:nascimento;not null"`
	Genero     string         `json:"genero" gorm:"column:genero;not null"`
	Religiao   *string        `json:"religiao" gorm:"column:religiao"`
	Telefone   string         `json:"telefone" gorm:"column:telefone;not null"`

	Logradouro string `json:"logradouro" gorm:"column:logradouro;not null"`
	Numero     string `json:"numero" gorm:"column:numero;not null"`
	Bairro     string `json:"bairro" gorm:"column:bairro;not null"`
	CEP        string `json:"cep" gorm:"column:cep;not null"`
	Cidade     string `json:"cidade" gorm:"column:cidade;not null"`
	Estado     string `json:"estado" gorm:"column:estado;not null"`

	Responsavel1Nome       string `json:"responsavel1Nome" gorm:"column:responsavel1_nome;not null"`
	Responsavel1CPF        string `json:"responsavel1Cpf" gorm:"column:responsavel1_cpf;not null"`
	Responsavel1Telefone   string `json:"responsavel1Telefone" gorm:"column:responsavel1_telefone;not null"`
	Responsavel1Parentesco string `json:"responsavel1Parentesco" gorm:"column:responsavel1_parentesco;not null"`

	Responsavel2Nome       *string `json:"responsavel2Nome,omitempty" gorm:"column:responsavel2_nome"`
	Responsavel2CPF        *string `json:"responsavel2Cpf,omitempty" gorm:"column:responsavel2_cpf"`
	Responsavel2Telefone   *string `json:"responsavel2Telefone,omitempty" gorm:"column:responsavel2_telefone"`
	Responsavel2Parentesco *string `json:"responsavel2Parentesco,omitempty" gorm:"column:responsavel2_parentesco"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (AlunoModel) TableName() string {
	return "alunos"
}

// AlunoTurmaModel é a tabela de matrícula que liga aluno à turma.
type AlunoTurmaModel struct {
	IDAluno uint `json:"idAluno" gorm:"column:id_aluno;primaryKey"`
	IDTurma uint `json:"idTurma" gorm:"column:id_turma;primaryKey"`
}

func (AlunoTurmaModel) TableName() string {
	return "alunos_turmas"
}
