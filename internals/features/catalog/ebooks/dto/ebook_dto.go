package dto

import (
	"strings"

	"github.com/google/uuid"

	ebookModel "github.com/jleandrodev/nextpage-sub000/internals/features/catalog/ebooks/model"
)

type CreateEbookRequest struct {
	EbookTitulo    string  `json:"ebook_titulo" validate:"required,min=2,max=200"`
	EbookAutor     *string `json:"ebook_autor,omitempty" validate:"omitempty,max=120"`
	EbookDescricao *string `json:"ebook_descricao,omitempty"`
	EbookPontos    int     `json:"ebook_pontos" validate:"required,gt=0"`
}

func (r *CreateEbookRequest) Normalize() {
	r.EbookTitulo = strings.TrimSpace(r.EbookTitulo)
	if r.EbookAutor != nil {
		v := strings.TrimSpace(*r.EbookAutor)
		r.EbookAutor = &v
	}
}

func (r *CreateEbookRequest) ToModel(lojistaID *uuid.UUID) *ebookModel.EbookModel {
	return &ebookModel.EbookModel{
		EbookLojistaID: lojistaID,
		EbookTitulo:    r.EbookTitulo,
		EbookAutor:     r.EbookAutor,
		EbookDescricao: r.EbookDescricao,
		EbookPontos:    r.EbookPontos,
		EbookIsActive:  true,
	}
}

type UpdateEbookRequest struct {
	EbookTitulo    *string `json:"ebook_titulo,omitempty" validate:"omitempty,min=2,max=200"`
	EbookAutor     *string `json:"ebook_autor,omitempty" validate:"omitempty,max=120"`
	EbookDescricao *string `json:"ebook_descricao,omitempty"`
	EbookPontos    *int    `json:"ebook_pontos,omitempty" validate:"omitempty,gt=0"`
	EbookIsActive  *bool   `json:"ebook_is_active,omitempty"`
}

func (r *UpdateEbookRequest) ApplyToModel(m *ebookModel.EbookModel) {
	if r.EbookTitulo != nil {
		m.EbookTitulo = strings.TrimSpace(*r.EbookTitulo)
	}
	if r.EbookAutor != nil {
		m.EbookAutor = r.EbookAutor
	}
	if r.EbookDescricao != nil {
		m.EbookDescricao = r.EbookDescricao
	}
	if r.EbookPontos != nil {
		m.EbookPontos = *r.EbookPontos
	}
	if r.EbookIsActive != nil {
		m.EbookIsActive = *r.EbookIsActive
	}
}
