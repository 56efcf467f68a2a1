package dto

import (
	"strings"

	userModel "github.com/jleandrodev/nextpage-sub000/internals/features/users/user/model"
)

type UpdateProfileRequest struct {
	UserNome  *string `json:"user_nome,omitempty" validate:"omitempty,min=2,max=120"`
	UserEmail *string `json:"user_email,omitempty" validate:"omitempty,email,max=255"`
}

func (r *UpdateProfileRequest) ApplyToModel(m *userModel.UserModel) {
	if r.UserNome != nil {
		v := strings.TrimSpace(*r.UserNome)
		m.UserNome = &v
	}
	if r.UserEmail != nil {
		v := strings.ToLower(strings.TrimSpace(*r.UserEmail))
		m.UserEmail = &v
	}
}

// UserResponse é a projeção devolvida nas listagens do lojista.
type UserResponse struct {
	UserID             string  `json:"user_id"`
	UserCPF            string  `json:"user_cpf"`
	UserNome           *string `json:"user_nome,omitempty"`
	UserEmail          *string `json:"user_email,omitempty"`
	UserSaldoPontos    int     `json:"user_saldo_pontos"`
	UserIsActive       bool    `json:"user_is_active"`
	UserPrimeiroAcesso bool    `json:"user_primeiro_acesso"`
}

func ToUserResponse(m *userModel.UserModel) UserResponse {
	return UserResponse{
		UserID:             m.UserID.String(),
		UserCPF:            m.UserCPF,
		UserNome:           m.UserNome,
		UserEmail:          m.UserEmail,
		UserSaldoPontos:    m.UserSaldoPontos,
		UserIsActive:       m.UserIsActive,
		UserPrimeiroAcesso: m.UserPrimeiroAcesso,
	}
}

func ToUserResponseList(ms []userModel.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToUserResponse(&ms[i]))
	}
	return out
}
