package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/jleandrodev/nextpage-sub000/internals/constants"
	authDTO "github.com/jleandrodev/nextpage-sub000/internals/features/users/auth/dto"
	authService "github.com/jleandrodev/nextpage-sub000/internals/features/users/auth/service"
	userModel "github.com/jleandrodev/nextpage-sub000/internals/features/users/user/model"
	helper "github.com/jleandrodev/nextpage-sub000/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

var validateAuth = validator.New()

// 🟡 POST /api/public/auth/login
// Login do cliente por CPF + senha. No primeiro acesso a senha é a
// credencial temporária gerada na importação (últimos 6 dígitos do CPF).
func (ctrl *AuthController) LoginCliente(c *fiber.Ctx) error {
	var req authDTO.LoginClienteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de entrada inválido")
	}
	if err := validateAuth.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	cpf := helper.NormalizeCPF(req.CPF)
	if !helper.IsValidCPF(cpf) {
		return helper.JsonError(c, fiber.StatusBadRequest, "CPF inválido")
	}

	var u userModel.UserModel
	if err := ctrl.DB.
		Where("user_cpf = ? AND user_role = ?", cpf, constants.RoleCliente).
		First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "CPF ou senha incorretos")
		}
		log.Println("[ERROR] login de cliente:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha no login")
	}

	return ctrl.finishLogin(c, &u, req.Senha)
}

// 🟡 POST /api/public/auth/login-admin
// Login de lojista/admin por email + senha.
func (ctrl *AuthController) LoginAdmin(c *fiber.Ctx) error {
	var req authDTO.LoginAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de entrada inválido")
	}
	if err := validateAuth.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var u userModel.UserModel
	if err := ctrl.DB.
		Where("user_email = ? AND user_role IN ?", email, []string{constants.RoleAdmin, constants.RoleLojista}).
		First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Email ou senha incorretos")
		}
		log.Println("[ERROR] login admin:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha no login")
	}

	return ctrl.finishLogin(c, &u, req.Senha)
}

// 🟡 POST /api/public/auth/refresh
func (ctrl *AuthController) Refresh(c *fiber.Ctx) error {
	var req authDTO.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de entrada inválido")
	}
	if err := validateAuth.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	userID, err := authService.ValidarRefresh(req.RefreshToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token inválido")
	}

	var u userModel.UserModel
	if err := ctrl.DB.First(&u, "user_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Usuário não encontrado")
	}
	if !u.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Conta desativada")
	}

	pair, err := authService.GerarTokens(&u)
	if err != nil {
		log.Println("[ERROR] emissão de tokens (refresh):", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao renovar sessão")
	}

	return helper.JsonOK(c, "Sessão renovada", pair)
}

// 🟡 POST /api/c/auth/trocar-senha
// Troca de senha; limpa a flag de primeiro acesso.
func (ctrl *AuthController) TrocarSenha(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req authDTO.TrocarSenhaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de entrada inválido")
	}
	if err := validateAuth.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var u userModel.UserModel
	if err := ctrl.DB.First(&u, "user_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Usuário não encontrado")
	}

	if bcrypt.CompareHashAndPassword([]byte(u.UserSenha), []byte(req.SenhaAtual)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Senha atual incorreta")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.SenhaNova), bcrypt.DefaultCost)
	if err != nil {
		log.Println("[ERROR] hash de senha:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao trocar senha")
	}

	if err := ctrl.DB.Model(&u).UpdateColumns(map[string]any{
		"user_senha":           string(hash),
		"user_primeiro_acesso": false,
	}).Error; err != nil {
		log.Println("[ERROR] troca de senha:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao trocar senha")
	}

	return helper.JsonUpdated(c, "Senha alterada", nil)
}

/* ================= Helpers ================= */

func (ctrl *AuthController) finishLogin(c *fiber.Ctx, u *userModel.UserModel, senha string) error {
	if !u.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Conta desativada")
	}
	if bcrypt.CompareHashAndPassword([]byte(u.UserSenha), []byte(senha)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Credenciais incorretas")
	}

	pair, err := authService.GerarTokens(u)
	if err != nil {
		log.Println("[ERROR] emissão de tokens:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha no login")
	}

	return helper.JsonOK(c, "Login realizado", fiber.Map{
		"tokens":               pair,
		"user_primeiro_acesso": u.UserPrimeiroAcesso,
		"user_role":            u.UserRole,
	})
}
