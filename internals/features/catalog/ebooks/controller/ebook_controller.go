package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	ebookDTO "github.com/jleandrodev/nextpage-sub000/internals/features/catalog/ebooks/dto"
	ebookModel "github.com/jleandrodev/nextpage-sub000/internals/features/catalog/ebooks/model"
	helper "github.com/jleandrodev/nextpage-sub000/internals/helpers"
	"github.com/jleandrodev/nextpage-sub000/internals/helpers/oss"
)

type EbookController struct {
	DB *gorm.DB
}

func NewEbookController(db *gorm.DB) *EbookController {
	return &EbookController{DB: db}
}

var validateEbook = validator.New()

// 🟡 POST /api/a/ebooks
// Cria ebook no catálogo do lojista do token.
func (ctrl *EbookController) Create(c *fiber.Ctx) error {
	lojistaID, err := helper.GetLojistaIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req ebookDTO.CreateEbookRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de entrada inválido")
	}
	req.Normalize()
	if err := validateEbook.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel(&lojistaID)
	if err := ctrl.DB.Create(m).Error; err != nil {
		log.Println("[ERROR] criação de ebook:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao criar ebook")
	}

	return helper.JsonCreated(c, "Ebook criado", m)
}

// 🟢 GET /api/c/ebooks
// Catálogo visível para o cliente: ebooks globais + do lojista dele.
func (ctrl *EbookController) Catalogo(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&ebookModel.EbookModel{}).Where("ebook_is_active = TRUE")
	if raw, ok := c.Locals(helper.LocLojistaID).(string); ok && raw != "" {
		if lojistaID, err := uuid.Parse(raw); err == nil {
			q = q.Where("ebook_lojista_id IS NULL OR ebook_lojista_id = ?", lojistaID)
		}
	} else {
		q = q.Where("ebook_lojista_id IS NULL")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Println("[ERROR] contagem do catálogo:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar catálogo")
	}

	var ebooks []ebookModel.EbookModel
	if err := q.Order("ebook_titulo ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&ebooks).Error; err != nil {
		log.Println("[ERROR] listagem do catálogo:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar catálogo")
	}

	return helper.JsonList(c, "Catálogo", ebooks, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// 🟢 GET /api/a/ebooks
// Catálogo do lojista, inclusive inativos.
func (ctrl *EbookController) ListAdmin(c *fiber.Ctx) error {
	lojistaID, err := helper.GetLojistaIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var ebooks []ebookModel.EbookModel
	if err := ctrl.DB.
		Where("ebook_lojista_id = ?", lojistaID).
		Order("created_at DESC").
		Find(&ebooks).Error; err != nil {
		log.Println("[ERROR] listagem admin de ebooks:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar ebooks")
	}

	return helper.JsonOK(c, "Ebooks", ebooks)
}

// 🟡 PUT /api/a/ebooks/:id
func (ctrl *EbookController) Update(c *fiber.Ctx) error {
	m, err := ctrl.findOwned(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req ebookDTO.UpdateEbookRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Formato de entrada inválido")
	}
	if err := validateEbook.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.ApplyToModel(m)
	if err := ctrl.DB.Save(m).Error; err != nil {
		log.Println("[ERROR] atualização de ebook:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao atualizar ebook")
	}

	return helper.JsonUpdated(c, "Ebook atualizado", m)
}

// 🟡 POST /api/a/ebooks/:id/capa
// Upload da capa (webp) para o storage.
func (ctrl *EbookController) UploadCapa(c *fiber.Ctx) error {
	m, err := ctrl.findOwned(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	fh, err := c.FormFile("capa")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Imagem da capa é obrigatória (campo 'capa')")
	}

	url, err := oss.UploadCoverWebP("ebooks", "capas", fh)
	if err != nil {
		log.Println("[ERROR] upload de capa:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha no upload da capa")
	}

	m.EbookCapaURL = &url
	if err := ctrl.DB.Save(m).Error; err != nil {
		log.Println("[ERROR] gravação da URL da capa:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao salvar capa")
	}

	return helper.JsonUpdated(c, "Capa atualizada", fiber.Map{"ebook_capa_url": url})
}

// 🟡 POST /api/a/ebooks/:id/arquivo
// Upload do arquivo do ebook (PDF/EPUB) para o bucket privado.
func (ctrl *EbookController) UploadArquivo(c *fiber.Ctx) error {
	m, err := ctrl.findOwned(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	fh, err := c.FormFile("arquivo")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Arquivo do ebook é obrigatório (campo 'arquivo')")
	}

	url, err := oss.UploadMultipart("ebooks-arquivos", "arquivos", fh)
	if err != nil {
		log.Println("[ERROR] upload de arquivo de ebook:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha no upload do arquivo")
	}

	m.EbookArquivoURL = &url
	if err := ctrl.DB.Save(m).Error; err != nil {
		log.Println("[ERROR] gravação da URL do arquivo:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao salvar arquivo")
	}

	return helper.JsonUpdated(c, "Arquivo atualizado", nil)
}

// 🟡 DELETE /api/a/ebooks/:id — desativação
func (ctrl *EbookController) Deactivate(c *fiber.Ctx) error {
	m, err := ctrl.findOwned(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	m.EbookIsActive = false
	if err := ctrl.DB.Save(m).Error; err != nil {
		log.Println("[ERROR] desativação de ebook:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao desativar ebook")
	}

	return helper.JsonDeleted(c, "Ebook desativado", nil)
}

/* ================= Helpers ================= */

// findOwned carrega o ebook garantindo que pertence ao lojista do token.
func (ctrl *EbookController) findOwned(c *fiber.Ctx) (*ebookModel.EbookModel, error) {
	lojistaID, err := helper.GetLojistaIDFromToken(c)
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	var m ebookModel.EbookModel
	if err := ctrl.DB.
		Where("ebook_id = ? AND ebook_lojista_id = ?", id, lojistaID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Ebook não encontrado")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Falha ao buscar ebook")
	}
	return &m, nil
}
