package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/commute-heatmap/internal/pkg/utils"
	"github.com/commute-heatmap/internal/usecase"
)

// GridHandler - обработчик каталога сетки отправления
type GridHandler struct {
	gridUC *usecase.GridUseCase
	logger *zap.Logger
}

// NewGridHandler - создание нового GridHandler
func NewGridHandler(gridUC *usecase.GridUseCase, logger *zap.Logger) *GridHandler {
	return &GridHandler{
		gridUC: gridUC,
		logger: logger,
	}
}

// List godoc
// @Summary Сетка точек отправления
// @Description Возвращает фиксированную сетку точек отправления по Сан-Франциско в порядке обхода. Сетка неизменяема в течение жизни процесса.
// @Tags Grid
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.GridResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/grid [get]
func (h *GridHandler) List(c *fiber.Ctx) error {
	result, err := h.gridUC.List(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}
