package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/commute-heatmap/internal/domain"
	"github.com/commute-heatmap/internal/pkg/utils"
	"github.com/commute-heatmap/internal/usecase"
	"github.com/commute-heatmap/internal/usecase/dto"
)

// HeatmapHandler - обработчик тепловой карты
type HeatmapHandler struct {
	heatmapUC *usecase.HeatmapUseCase
	logger    *zap.Logger
}

// NewHeatmapHandler - создание нового HeatmapHandler
func NewHeatmapHandler(heatmapUC *usecase.HeatmapUseCase, logger *zap.Logger) *HeatmapHandler {
	return &HeatmapHandler{
		heatmapUC: heatmapUC,
		logger:    logger,
	}
}

// GetHeatmap godoc
// @Summary Тепловая карта времени в пути
// @Description Сворачивает уже загруженные выборки в маркеры с цветом и легендой. Чистый пересчёт без сетевых вызовов: смена параметров вида бесплатна. Пустая карта - нормальный ответ, пока данные не загружены.
// @Tags Heatmap
// @Produce json
// @Param period query string false "Временной период: rush, offpeak, combined" default(rush)
// @Param view query string false "Режим вида: individual, comparison" default(individual)
// @Param destination query string false "Фильтр: all или id точки назначения" default(all)
// @Param display query string false "Режим отображения: per-trip, weekly" default(per-trip)
// @Success 200 {object} utils.SuccessResponse{data=dto.HeatmapResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/heatmap [get]
func (h *HeatmapHandler) GetHeatmap(c *fiber.Ctx) error {
	var q dto.HeatmapQuery
	q.TimePeriod = c.Query("period", domain.PeriodRush)
	q.ViewMode = c.Query("view", domain.ViewIndividual)
	q.Destination = c.Query("destination", domain.DestinationFilterAll)
	q.DisplayMode = c.Query("display", domain.DisplayPerTrip)

	result, err := h.heatmapUC.Build(c.Context(), q)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}
