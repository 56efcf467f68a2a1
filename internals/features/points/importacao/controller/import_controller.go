package controller

import (
	"errors"
	"io"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	impModel "github.com/jleandrodev/nextpage-sub000/internals/features/points/importacao/model"
	"github.com/jleandrodev/nextpage-sub000/internals/features/points/importacao/repository"
	"github.com/jleandrodev/nextpage-sub000/internals/features/points/importacao/service"
	helper "github.com/jleandrodev/nextpage-sub000/internals/helpers"
	"github.com/jleandrodev/nextpage-sub000/internals/helpers/tabular"
)

type ImportController struct {
	DB      *gorm.DB
	Service *service.ImportService
}

func NewImportController(db *gorm.DB) *ImportController {
	return &ImportController{
		DB:      db,
		Service: service.NewImportService(repository.NewImportRepository(db)),
	}
}

// 🟡 POST /api/a/importacoes
// Upload da planilha de pontos (multipart, campo "file").
func (ctrl *ImportController) Upload(c *fiber.Ctx) error {
	lojistaID, err := helper.GetLojistaIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	adminID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Arquivo da planilha é obrigatório (campo 'file')")
	}

	src, err := fh.Open()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Não foi possível abrir o arquivo enviado")
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Não foi possível ler o arquivo enviado")
	}

	result, err := ctrl.Service.ImportSpreadsheet(data, fh.Filename, lojistaID, adminID)
	if err != nil {
		if isStructuralImportError(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		log.Println("[ERROR] importação de planilha:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao processar a planilha")
	}

	return helper.JsonCreated(c, "Planilha processada", result)
}

// 🟢 GET /api/a/importacoes
// Lista paginada dos lotes de importação do lojista.
func (ctrl *ImportController) List(c *fiber.Ctx) error {
	lojistaID, err := helper.GetLojistaIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&impModel.PointsImportModel{}).
		Where("points_import_lojista_id = ?", lojistaID).
		Count(&total).Error; err != nil {
		log.Println("[ERROR] contagem de importações:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar importações")
	}

	var batches []impModel.PointsImportModel
	if err := ctrl.DB.
		Where("points_import_lojista_id = ?", lojistaID).
		Order("created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&batches).Error; err != nil {
		log.Println("[ERROR] listagem de importações:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar importações")
	}

	return helper.JsonList(c, "Importações", batches, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// 🟢 GET /api/a/importacoes/:id
// Detalhe de um lote, incluindo o relatório de erros por linha.
func (ctrl *ImportController) GetByID(c *fiber.Ctx) error {
	lojistaID, err := helper.GetLojistaIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var batch impModel.PointsImportModel
	if err := ctrl.DB.
		Where("points_import_id = ? AND points_import_lojista_id = ?", id, lojistaID).
		First(&batch).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Importação não encontrada")
		}
		log.Println("[ERROR] busca de importação:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar importação")
	}

	return helper.JsonOK(c, "Importação", batch)
}

func isStructuralImportError(err error) bool {
	return errors.Is(err, service.ErrColunasObrigatorias) ||
		errors.Is(err, service.ErrPlanilhaSemDados) ||
		errors.Is(err, tabular.ErrArquivoVazio) ||
		errors.Is(err, tabular.ErrFormatoInvalido) ||
		errors.Is(err, tabular.ErrPlanilhaIlegivel)
}
