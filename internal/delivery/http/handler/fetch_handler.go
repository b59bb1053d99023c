package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/commute-heatmap/internal/pkg/utils"
	"github.com/commute-heatmap/internal/pkg/validator"
	"github.com/commute-heatmap/internal/usecase"
	"github.com/commute-heatmap/internal/usecase/dto"
)

// FetchHandler - обработчик загрузки матрицы времени в пути
type FetchHandler struct {
	fetchUC *usecase.FetchUseCase
	logger  *zap.Logger
}

// NewFetchHandler - создание нового FetchHandler
func NewFetchHandler(fetchUC *usecase.FetchUseCase, logger *zap.Logger) *FetchHandler {
	return &FetchHandler{
		fetchUC: fetchUC,
		logger:  logger,
	}
}

// Refresh godoc
// @Summary Загрузка времени в пути
// @Description Синхронно опрашивает матричный API для всех точек сетки и назначений и целиком заменяет выборку периода. Период "all" загружает rush до конца и только затем offpeak. Повторный запуск при уже идущей загрузке отклоняется с 409.
// @Tags Fetch
// @Accept json
// @Produce json
// @Param request body dto.FetchRequest true "Период загрузки: rush, offpeak или all"
// @Success 200 {object} utils.SuccessResponse{data=dto.FetchResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/fetch [post]
func (h *FetchHandler) Refresh(c *fiber.Ctx) error {
	var req dto.FetchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.fetchUC.Refresh(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Status godoc
// @Summary Состояние загрузчика
// @Description Возвращает флаг занятости и метаданные последних успешных загрузок по периодам
// @Tags Fetch
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.FetchStatusResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/fetch/status [get]
func (h *FetchHandler) Status(c *fiber.Ctx) error {
	result, err := h.fetchUC.Status(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
