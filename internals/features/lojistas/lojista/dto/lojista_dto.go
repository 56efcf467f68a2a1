package dto

import (
	"strings"

	lojistaModel "github.com/jleandrodev/nextpage-sub000/internals/features/lojistas/lojista/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type CreateLojistaRequest struct {
	LojistaNome    string  `json:"lojista_nome" validate:"required,min=2,max=120"`
	LojistaSlug    string  `json:"lojista_slug" validate:"required,min=2,max=120"`
	LojistaCorTema *string `json:"lojista_cor_tema,omitempty" validate:"omitempty,max=20"`
}

func (r *CreateLojistaRequest) Normalize() {
	r.LojistaNome = strings.TrimSpace(r.LojistaNome)
	r.LojistaSlug = strings.ToLower(strings.TrimSpace(r.LojistaSlug))
}

func (r *CreateLojistaRequest) ToModel() *lojistaModel.LojistaModel {
	return &lojistaModel.LojistaModel{
		LojistaNome:    r.LojistaNome,
		LojistaSlug:    r.LojistaSlug,
		LojistaCorTema: r.LojistaCorTema,
	}
}

// UpdateLojistaRequest — parcial (ponteiros distinguem omitido de nulo)
type UpdateLojistaRequest struct {
	LojistaNome     *string `json:"lojista_nome,omitempty" validate:"omitempty,min=2,max=120"`
	LojistaCorTema  *string `json:"lojista_cor_tema,omitempty" validate:"omitempty,max=20"`
	LojistaIsActive *bool   `json:"lojista_is_active,omitempty"`
}

func (r *UpdateLojistaRequest) ApplyToModel(m *lojistaModel.LojistaModel) {
	if r.LojistaNome != nil {
		m.LojistaNome = strings.TrimSpace(*r.LojistaNome)
	}
	if r.LojistaCorTema != nil {
		m.LojistaCorTema = r.LojistaCorTema
	}
	if r.LojistaIsActive != nil {
		m.LojistaIsActive = *r.LojistaIsActive
	}
}
