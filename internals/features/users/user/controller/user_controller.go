package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userDTO "github.com/jleandrodev/nextpage-sub000/internals/features/users/user/dto"
	userModel "github.com/jleandrodev/nextpage-sub000/internals/features/users/user/model"
	helper "github.com/jleandrodev/nextpage-sub000/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

var validateUser = validator.New()

// 🟢 GET /api/c/me
// Perfil do cliente autenticado, com saldo atual.
func (ctrl *UserController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m userModel.UserModel
	if err := ctrl.DB.First(&m, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Usuário não encontrado")
		}
		log.Println("[ERROR] busca de perfil:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar perfil")
	}

	return helper.JsonOK(c, "Perfil", userDTO.ToUserResponse(&m))
}

// 🟡 PUT /api/c/me
// Cliente atualiza nome/email do próprio perfil.
func (ctrl *UserController) UpdateMe(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req userDTO.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de entrada inválido")
	}
	if err := validateUser.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m userModel.UserModel
	if err := ctrl.DB.First(&m, "user_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Usuário não encontrado")
	}

	req.ApplyToModel(&m)
	if err := ctrl.DB.Save(&m).Error; err != nil {
		log.Println("[ERROR] atualização de perfil:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao atualizar perfil")
	}

	return helper.JsonUpdated(c, "Perfil atualizado", userDTO.ToUserResponse(&m))
}

// 🟢 GET /api/a/clientes
// Lista os clientes do lojista do token (paginado, busca por CPF opcional).
func (ctrl *UserController) ListByLojista(c *fiber.Ctx) error {
	lojistaID, err := helper.GetLojistaIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&userModel.UserModel{}).Where("user_lojista_id = ?", lojistaID)
	if cpf := helper.NormalizeCPF(c.Query("cpf")); cpf != "" {
		q = q.Where("user_cpf = ?", cpf)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Println("[ERROR] contagem de clientes:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar clientes")
	}

	var users []userModel.UserModel
	if err := q.Order("created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&users).Error; err != nil {
		log.Println("[ERROR] listagem de clientes:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar clientes")
	}

	return helper.JsonList(c, "Clientes", userDTO.ToUserResponseList(users),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// 🟢 GET /api/a/clientes/:cpf
// Busca cliente do lojista pelo CPF.
func (ctrl *UserController) GetByCPF(c *fiber.Ctx) error {
	lojistaID, err := helper.GetLojistaIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	cpf := helper.NormalizeCPF(c.Params("cpf"))
	if !helper.IsValidCPF(cpf) {
		return helper.JsonError(c, fiber.StatusBadRequest, "CPF inválido")
	}

	var m userModel.UserModel
	if err := ctrl.DB.
		Where("user_cpf = ? AND user_lojista_id = ?", cpf, lojistaID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Cliente não encontrado")
		}
		log.Println("[ERROR] busca de cliente por CPF:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar cliente")
	}

	return helper.JsonOK(c, "Cliente", userDTO.ToUserResponse(&m))
}

// 🟡 PATCH /api/a/clientes/:cpf/status
// Ativa/desativa o acesso do cliente ao portal.
func (ctrl *UserController) ToggleStatus(c *fiber.Ctx) error {
	lojistaID, err := helper.GetLojistaIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	cpf := helper.NormalizeCPF(c.Params("cpf"))
	if !helper.IsValidCPF(cpf) {
		return helper.JsonError(c, fiber.StatusBadRequest, "CPF inválido")
	}

	var body struct {
		Ativo *bool `json:"ativo" validate:"required"`
	}
	if err := c.BodyParser(&body); err != nil || body.Ativo == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Campo 'ativo' é obrigatório")
	}

	res := ctrl.DB.Model(&userModel.UserModel{}).
		Where("user_cpf = ? AND user_lojista_id = ?", cpf, lojistaID).
		UpdateColumn("user_is_active", *body.Ativo)
	if res.Error != nil {
		log.Println("[ERROR] alteração de status de cliente:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao alterar status")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Cliente não encontrado")
	}

	return helper.JsonUpdated(c, "Status alterado", fiber.Map{"user_cpf": cpf, "user_is_active": *body.Ativo})
}
