package model

import "time"

type TurmaModel struct {
	ID               uint      `json:"id" gorm:"column:id_turma;primaryKey"`
	Nome             string    `json:"nome" gorm:"column:nome;not null"`
	AnoEscolar       int       `json:"anoEscolar" gorm:"column:ano_escolar;not null"`
	QuantidadeMaxima int       `json:"quantidadeMaxima" gorm:"column:quantidade_maxima;not null"`
	Turno            string    `json:"turno" gorm:"column:turno;not null"`
	Serie            string    `json:"serie" gorm:"column:serie;not null"`
	CreatedAt        time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (TurmaModel) TableName() string {
	return "turmas"
}
