package model

import (
	"time"

	"gorm.io/datatypes"
)

// FaltaModel registra a ausência de um aluno em um dia letivo. Periodo é nulo
// quando a falta cobre o dia inteiro.
type FaltaModel struct {
	ID          uint           `json:"id" gorm:"column:id_faltas;primaryKey"`
	IDAluno     uint           `json:"idAluno" gorm:"column:id_aluno;not null;index"`
	IDTurma     uint           `json:"idTurma" gorm:"column:id_turma;not null;index"`
	Data        datatypes.Date `json:"data" gorm:"column:data;not null;index"`
	Periodo     *int           `json:"periodo" gorm:"column:periodo"`
	Justificada bool           `json:"justificada" gorm:"column:justificada;not null;default:false"`
	Observacao  *string        `json:"observacao" gorm:"column:observacao"`
	CreatedAt   time.Time      `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time      `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (FaltaModel) TableName() string {
	return "faltas"
}
