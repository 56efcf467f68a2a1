package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	lojistaDTO "github.com/jleandrodev/nextpage-sub000/internals/features/lojistas/lojista/dto"
	lojistaModel "github.com/jleandrodev/nextpage-sub000/internals/features/lojistas/lojista/model"
	helper "github.com/jleandrodev/nextpage-sub000/internals/helpers"
	"github.com/jleandrodev/nextpage-sub000/internals/helpers/oss"
)

type LojistaController struct {
	DB *gorm.DB
}

func NewLojistaController(db *gorm.DB) *LojistaController {
	return &LojistaController{DB: db}
}

var validateLojista = validator.New()

// 🟡 POST /api/o/lojistas
func (ctrl *LojistaController) Create(c *fiber.Ctx) error {
	var req lojistaDTO.CreateLojistaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de entrada inválido")
	}
	req.Normalize()
	if err := validateLojista.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	m.LojistaIsActive = true
	if err := ctrl.DB.Create(m).Error; err != nil {
		if isDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Slug de lojista já em uso")
		}
		log.Println("[ERROR] criação de lojista:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao criar lojista")
	}

	return helper.JsonCreated(c, "Lojista criado", m)
}

// 🟢 GET /api/o/lojistas
func (ctrl *LojistaController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&lojistaModel.LojistaModel{}).Count(&total).Error; err != nil {
		log.Println("[ERROR] contagem de lojistas:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar lojistas")
	}

	var lojistas []lojistaModel.LojistaModel
	if err := ctrl.DB.Order("lojista_nome ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&lojistas).Error; err != nil {
		log.Println("[ERROR] listagem de lojistas:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar lojistas")
	}

	return helper.JsonList(c, "Lojistas", lojistas, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// 🟢 GET /api/o/lojistas/:id
func (ctrl *LojistaController) GetByID(c *fiber.Ctx) error {
	m, err := ctrl.find(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Lojista", m)
}

// 🟡 PUT /api/o/lojistas/:id
func (ctrl *LojistaController) Update(c *fiber.Ctx) error {
	m, err := ctrl.find(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req lojistaDTO.UpdateLojistaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de entrada inválido")
	}
	if err := validateLojista.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.ApplyToModel(m)
	if err := ctrl.DB.Save(m).Error; err != nil {
		log.Println("[ERROR] atualização de lojista:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao atualizar lojista")
	}

	return helper.JsonUpdated(c, "Lojista atualizado", m)
}

// 🟡 POST /api/o/lojistas/:id/logo
// Upload do logo (convertido para webp antes de subir).
func (ctrl *LojistaController) UploadLogo(c *fiber.Ctx) error {
	m, err := ctrl.find(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	fh, err := c.FormFile("logo")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Arquivo de logo é obrigatório (campo 'logo')")
	}

	url, err := oss.UploadCoverWebP("lojistas", "logos", fh)
	if err != nil {
		log.Println("[ERROR] upload de logo:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha no upload do logo")
	}

	m.LojistaLogoURL = &url
	if err := ctrl.DB.Save(m).Error; err != nil {
		log.Println("[ERROR] gravação da URL do logo:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao salvar logo")
	}

	return helper.JsonUpdated(c, "Logo atualizado", fiber.Map{"lojista_logo_url": url})
}

// 🟡 DELETE /api/o/lojistas/:id
// Desativação — lojista nunca é removido fisicamente.
func (ctrl *LojistaController) Deactivate(c *fiber.Ctx) error {
	m, err := ctrl.find(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	m.LojistaIsActive = false
	if err := ctrl.DB.Save(m).Error; err != nil {
		log.Println("[ERROR] desativação de lojista:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao desativar lojista")
	}

	return helper.JsonDeleted(c, "Lojista desativado", nil)
}

/* ================= Helpers ================= */

func (ctrl *LojistaController) find(c *fiber.Ctx) (*lojistaModel.LojistaModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	var m lojistaModel.LojistaModel
	if err := ctrl.DB.First(&m, "lojista_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Lojista não encontrado")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Falha ao buscar lojista")
	}
	return &m, nil
}

// Deteção de unique violation Postgres (SQLSTATE 23505)
func isDuplicateKey(err error) bool {
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "23505") || strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint")
}
