package model

import (
	"time"

	"github.com/google/uuid"
)

// LojistaModel — tenant da plataforma white-label
type LojistaModel struct {
	LojistaID       uuid.UUID `gorm:"column:lojista_id;type:uuid;default:gen_random_uuid();primaryKey" json:"lojista_id"`
	LojistaNome     string    `gorm:"column:lojista_nome;size:120;not null" json:"lojista_nome"`
	LojistaSlug     string    `gorm:"column:lojista_slug;size:120;uniqueIndex;not null" json:"lojista_slug"`
	LojistaLogoURL  *string   `gorm:"column:lojista_logo_url" json:"lojista_logo_url,omitempty"`
	LojistaCorTema  *string   `gorm:"column:lojista_cor_tema;size:20" json:"lojista_cor_tema,omitempty"`
	LojistaIsActive bool      `gorm:"column:lojista_is_active;not null;default:true" json:"lojista_is_active"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (LojistaModel) TableName() string {
	return "lojistas"
}
