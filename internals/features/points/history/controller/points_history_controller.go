package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	histModel "github.com/jleandrodev/nextpage-sub000/internals/features/points/history/model"
	helper "github.com/jleandrodev/nextpage-sub000/internals/helpers"
)

type PointsHistoryController struct {
	DB *gorm.DB
}

func NewPointsHistoryController(db *gorm.DB) *PointsHistoryController {
	return &PointsHistoryController{DB: db}
}

// 🟢 GET /api/c/extrato
// Extrato de pontos do usuário autenticado, mais recente primeiro.
func (ctrl *PointsHistoryController) Extrato(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&histModel.PointsHistoryModel{}).
		Where("points_history_user_id = ?", userID).
		Count(&total).Error; err != nil {
		log.Println("[ERROR] contagem do extrato:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar extrato")
	}

	var entries []histModel.PointsHistoryModel
	if err := ctrl.DB.
		Where("points_history_user_id = ?", userID).
		Order("created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&entries).Error; err != nil {
		log.Println("[ERROR] listagem do extrato:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar extrato")
	}

	return helper.JsonList(c, "Extrato de pontos", entries, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// 🟢 GET /api/a/importacoes/:id/historico
// Créditos gerados por um lote específico (auditoria do admin).
func (ctrl *PointsHistoryController) PorImportacao(c *fiber.Ctx) error {
	importID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var entries []histModel.PointsHistoryModel
	if err := ctrl.DB.
		Where("points_history_import_id = ?", importID).
		Order("created_at ASC").
		Find(&entries).Error; err != nil {
		log.Println("[ERROR] histórico por importação:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar histórico")
	}

	return helper.JsonOK(c, "Histórico do lote", entries)
}
