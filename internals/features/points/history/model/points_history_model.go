package model

import (
	"time"

	"github.com/google/uuid"
)

// PointsHistoryModel — registro imutável de cada crédito de pontos (append-only).
// É a trilha de auditoria que reconstrói como um saldo foi acumulado.
type PointsHistoryModel struct {
	PointsHistoryID        uuid.UUID  `gorm:"column:points_history_id;type:uuid;default:gen_random_uuid();primaryKey" json:"points_history_id"`
	PointsHistoryUserID    uuid.UUID  `gorm:"column:points_history_user_id;type:uuid;not null;index" json:"points_history_user_id"`
	PointsHistoryPontos    int        `gorm:"column:points_history_pontos;not null" json:"points_history_pontos"`
	PointsHistoryDescricao string     `gorm:"column:points_history_descricao;size:255;not null" json:"points_history_descricao"`
	PointsHistoryImportID  *uuid.UUID `gorm:"column:points_history_import_id;type:uuid;index" json:"points_history_import_id,omitempty"`
	CreatedAt              time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (PointsHistoryModel) TableName() string {
	return "points_history"
}
