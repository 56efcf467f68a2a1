package dto

type LoginClienteRequest struct {
	CPF   string `json:"cpf" validate:"required"`
	Senha string `json:"senha" validate:"required,min=6"`
}

type LoginAdminRequest struct {
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required,min=6"`
}

type TrocarSenhaRequest struct {
	SenhaAtual string `json:"senha_atual" validate:"required"`
	SenhaNova  string `json:"senha_nova" validate:"required,min=8,max=72"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}
