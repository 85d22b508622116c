package model

import (
	disciplinaModel "github.com/brunosimionato/API-edusystem/internals/features/academics/disciplinas/model"
	alunoModel "github.com/brunosimionato/API-edusystem/internals/features/school/alunos/model"
)

// HistoricoEscolarModel registra o desempenho do aluno em escolas anteriores.
// IDDisciplina é nulo quando a matéria não faz parte da grade atual.
type HistoricoEscolarModel struct {
	ID             uint    `json:"id" gorm:"column:id_historico;primaryKey"`
	IDAluno        uint    `json:"idAluno" gorm:"column:id_aluno;not null;index"`
	IDDisciplina   *uint   `json:"idDisciplina" gorm:"column:id_disciplina;index"`
	NomeEscola     string  `json:"nomeEscola" gorm:"column:nome_escola;not null"`
	SerieConcluida string  `json:"serieConcluida" gorm:"column:serie_concluida;not null"`
	Nota           float64 `json:"nota" gorm:"column:nota;not null"`
	AnoConclusao   int     `json:"anoConclusao" gorm:"column:ano_conclusao;not null"`

	Aluno      *alunoModel.AlunoModel           `json:"aluno,omitempty" gorm:"foreignKey:IDAluno;references:ID"`
	Disciplina *disciplinaModel.DisciplinaModel `json:"disciplina,omitempty" gorm:"foreignKey:IDDisciplina;references:ID"`
}

func (HistoricoEscolarModel) TableName() string {
	return "historicos_escolares"
}
