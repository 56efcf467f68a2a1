package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	ebookModel "github.com/jleandrodev/nextpage-sub000/internals/features/catalog/ebooks/model"
	resgateModel "github.com/jleandrodev/nextpage-sub000/internals/features/points/resgate/model"
	"github.com/jleandrodev/nextpage-sub000/internals/features/points/resgate/repository"
	"github.com/jleandrodev/nextpage-sub000/internals/features/points/resgate/service"
	helper "github.com/jleandrodev/nextpage-sub000/internals/helpers"
)

type ResgateController struct {
	DB      *gorm.DB
	Service *service.ResgateService
}

func NewResgateController(db *gorm.DB) *ResgateController {
	return &ResgateController{
		DB:      db,
		Service: service.NewResgateService(repository.NewResgateRepository(db)),
	}
}

// 🟡 POST /api/c/ebooks/:id/resgatar
// Desbloqueio único: debita os pontos e registra o resgate.
func (ctrl *ResgateController) Resgatar(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	ebook, err := ctrl.findEbook(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	resgate, err := ctrl.Service.Resgatar(userID, ebook.EbookID, ebook.EbookLojistaID, ebook.EbookPontos)
	if err != nil {
		return ctrl.domainError(c, err)
	}

	return helper.JsonCreated(c, "Ebook resgatado", resgate)
}

// 🟡 POST /api/c/ebooks/:id/download
// Acesso pago repetível: debita a cada chamada e devolve a URL do arquivo
// com o novo saldo.
func (ctrl *ResgateController) Download(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	ebook, err := ctrl.findEbook(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	novoSaldo, err := ctrl.Service.Download(userID, ebook.EbookID, ebook.EbookLojistaID, ebook.EbookPontos)
	if err != nil {
		return ctrl.domainError(c, err)
	}

	var arquivoURL string
	if ebook.EbookArquivoURL != nil {
		arquivoURL = *ebook.EbookArquivoURL
	}

	return helper.JsonOK(c, "Download liberado", fiber.Map{
		"arquivo_url": arquivoURL,
		"novo_saldo":  novoSaldo,
	})
}

// 🟢 GET /api/c/resgates
// Ebooks já desbloqueados pelo usuário.
func (ctrl *ResgateController) MeusResgates(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var resgates []resgateModel.ResgateModel
	if err := ctrl.DB.
		Where("resgate_user_id = ?", userID).
		Order("created_at DESC").
		Find(&resgates).Error; err != nil {
		log.Println("[ERROR] listagem de resgates:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar resgates")
	}

	return helper.JsonOK(c, "Resgates", resgates)
}

/* ================= Helpers ================= */

func (ctrl *ResgateController) findEbook(c *fiber.Ctx) (*ebookModel.EbookModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID de ebook inválido")
	}

	var ebook ebookModel.EbookModel
	if err := ctrl.DB.
		Where("ebook_id = ? AND ebook_is_active = TRUE", id).
		First(&ebook).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Ebook não encontrado")
		}
		log.Println("[ERROR] busca de ebook:", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Falha ao buscar ebook")
	}
	return &ebook, nil
}

// domainError separa erro de domínio (4xx, mensagem clara) de infraestrutura (500).
func (ctrl *ResgateController) domainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrSaldoInsuficiente):
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Saldo de pontos insuficiente")
	case errors.Is(err, service.ErrJaResgatado):
		return helper.JsonError(c, fiber.StatusConflict, "Você já resgatou este ebook")
	case errors.Is(err, service.ErrUsuarioNaoEncontrado):
		return helper.JsonError(c, fiber.StatusNotFound, "Usuário não encontrado")
	default:
		log.Println("[ERROR] transação de resgate:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao processar o resgate")
	}
}
