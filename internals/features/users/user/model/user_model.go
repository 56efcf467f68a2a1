package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel — cliente final. O CPF (11 dígitos, só números) é a chave natural
// usada na reconciliação das planilhas; o saldo nunca fica negativo
// (constraint no banco + checagem na transação de resgate).
type UserModel struct {
	UserID             uuid.UUID  `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`
	UserCPF            string     `gorm:"column:user_cpf;size:11;uniqueIndex;not null" json:"user_cpf"`
	UserNome           *string    `gorm:"column:user_nome;size:120" json:"user_nome,omitempty"`
	UserEmail          *string    `gorm:"column:user_email;size:255" json:"user_email,omitempty"`
	UserSenha          string     `gorm:"column:user_senha;not null" json:"-"`
	UserSaldoPontos    int        `gorm:"column:user_saldo_pontos;not null;default:0;check:user_saldo_pontos >= 0" json:"user_saldo_pontos"`
	UserRole           string     `gorm:"column:user_role;type:varchar(20);not null;default:'cliente'" json:"-"`
	UserIsActive       bool       `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`
	UserPrimeiroAcesso bool       `gorm:"column:user_primeiro_acesso;not null;default:true" json:"user_primeiro_acesso"`
	UserLojistaID      *uuid.UUID `gorm:"column:user_lojista_id;type:uuid;index" json:"user_lojista_id,omitempty"`
	CreatedAt          time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}
