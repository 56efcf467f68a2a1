package model

import (
	"time"

	"github.com/google/uuid"
)

// ResgateModel — estado de resgate de um ebook por um usuário.
// Uma linha por par (user, ebook): o resgate é um desbloqueio único.
type ResgateModel struct {
	ResgateID        uuid.UUID  `gorm:"column:resgate_id;type:uuid;default:gen_random_uuid();primaryKey" json:"resgate_id"`
	ResgateUserID    uuid.UUID  `gorm:"column:resgate_user_id;type:uuid;not null;uniqueIndex:uq_resgates_user_ebook" json:"resgate_user_id"`
	ResgateEbookID   uuid.UUID  `gorm:"column:resgate_ebook_id;type:uuid;not null;uniqueIndex:uq_resgates_user_ebook" json:"resgate_ebook_id"`
	ResgateLojistaID *uuid.UUID `gorm:"column:resgate_lojista_id;type:uuid;index" json:"resgate_lojista_id,omitempty"`
	ResgatePontos    int        `gorm:"column:resgate_pontos;not null" json:"resgate_pontos"`
	CreatedAt        time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ResgateModel) TableName() string {
	return "resgates"
}
