package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Status do lote de importação
const (
	StatusProcessing = "PROCESSING"
	StatusCompleted  = "COMPLETED"
	StatusPartial    = "PARTIAL"
)

// PointsImportModel — um registro de auditoria por planilha enviada.
// Criado com status PROCESSING antes do processamento e atualizado uma única
// vez ao final com os totais e a lista serializada de erros por linha.
type PointsImportModel struct {
	PointsImportID          uuid.UUID      `gorm:"column:points_import_id;type:uuid;default:gen_random_uuid();primaryKey" json:"points_import_id"`
	PointsImportLojistaID   uuid.UUID      `gorm:"column:points_import_lojista_id;type:uuid;not null;index" json:"points_import_lojista_id"`
	PointsImportArquivo     string         `gorm:"column:points_import_arquivo;size:255;not null" json:"points_import_arquivo"`
	PointsImportStatus      string         `gorm:"column:points_import_status;type:varchar(20);not null;default:'PROCESSING'" json:"points_import_status"`
	PointsImportTotal       int            `gorm:"column:points_import_total;not null;default:0" json:"points_import_total"`
	PointsImportSucessos    int            `gorm:"column:points_import_sucessos;not null;default:0" json:"points_import_sucessos"`
	PointsImportErros       int            `gorm:"column:points_import_erros;not null;default:0" json:"points_import_erros"`
	PointsImportCreatedBy   uuid.UUID      `gorm:"column:points_import_created_by;type:uuid;not null" json:"points_import_created_by"`
	PointsImportErrorList   datatypes.JSON `gorm:"column:points_import_error_list" json:"points_import_error_list,omitempty"`
	PointsImportWarningList datatypes.JSON `gorm:"column:points_import_warning_list" json:"points_import_warning_list,omitempty"`
	CreatedAt               time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt               time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (PointsImportModel) TableName() string {
	return "points_imports"
}
