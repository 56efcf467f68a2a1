package model

import (
	"time"

	"github.com/google/uuid"
)

// EbookModel — item do catálogo resgatável por pontos.
// ebook_lojista_id NULL = ebook do catálogo global (visível para todos os tenants).
type EbookModel struct {
	EbookID         uuid.UUID  `gorm:"column:ebook_id;type:uuid;default:gen_random_uuid();primaryKey" json:"ebook_id"`
	EbookLojistaID  *uuid.UUID `gorm:"column:ebook_lojista_id;type:uuid;index" json:"ebook_lojista_id,omitempty"`
	EbookTitulo     string     `gorm:"column:ebook_titulo;size:200;not null" json:"ebook_titulo"`
	EbookAutor      *string    `gorm:"column:ebook_autor;size:120" json:"ebook_autor,omitempty"`
	EbookDescricao  *string    `gorm:"column:ebook_descricao" json:"ebook_descricao,omitempty"`
	EbookPontos     int        `gorm:"column:ebook_pontos;not null;check:ebook_pontos > 0" json:"ebook_pontos"`
	EbookCapaURL    *string    `gorm:"column:ebook_capa_url" json:"ebook_capa_url,omitempty"`
	EbookArquivoURL *string    `gorm:"column:ebook_arquivo_url" json:"-"`
	EbookIsActive   bool       `gorm:"column:ebook_is_active;not null;default:true" json:"ebook_is_active"`
	CreatedAt       time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (EbookModel) TableName() string {
	return "ebooks"
}
