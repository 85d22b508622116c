package model

type DisciplinaModel struct {
	ID   uint   `json:"id" gorm:"column:id_disciplina;primaryKey"`
	Nome string `json:"nome" gorm:"column:nome;not null"`
}

func (DisciplinaModel) TableName() string {
	return "disciplinas"
}
