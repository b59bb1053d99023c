package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/commute-heatmap/internal/pkg/utils"
	"github.com/commute-heatmap/internal/pkg/validator"
	"github.com/commute-heatmap/internal/usecase"
	"github.com/commute-heatmap/internal/usecase/dto"
)

// DestinationHandler - обработчик жизненного цикла точек назначения
type DestinationHandler struct {
	destUC *usecase.DestinationUseCase
	logger *zap.Logger
}

// NewDestinationHandler - создание нового DestinationHandler
func NewDestinationHandler(destUC *usecase.DestinationUseCase, logger *zap.Logger) *DestinationHandler {
	return &DestinationHandler{
		destUC: destUC,
		logger: logger,
	}
}

// List godoc
// @Summary Список точек назначения
// @Description Возвращает все точки назначения в порядке создания вместе с координатами и недельными числами поездок
// @Tags Destinations
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.DestinationListResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/destinations [get]
func (h *DestinationHandler) List(c *fiber.Ctx) error {
	result, err := h.destUC.List(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}

// Get godoc
// @Summary Точка назначения по id
// @Description Возвращает одну точку назначения
// @Tags Destinations
// @Produce json
// @Param id path string true "ID точки назначения"
// @Success 200 {object} utils.SuccessResponse{data=dto.DestinationResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/destinations/{id} [get]
func (h *DestinationHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")

	result, err := h.destUC.Get(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Create godoc
// @Summary Создание точки назначения
// @Description Геокодирует адрес и сохраняет точку назначения. При ошибке геокодирования список остаётся без изменений.
// @Tags Destinations
// @Accept json
// @Produce json
// @Param request body dto.CreateDestinationRequest true "Новая точка назначения"
// @Success 201 {object} utils.SuccessResponse{data=dto.DestinationResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /api/v1/destinations [post]
func (h *DestinationHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateDestinationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.destUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, result)
}

// Update godoc
// @Summary Частичное обновление точки назначения
// @Description Обновляет имя, адрес и числа поездок. Смена адреса запускает повторное геокодирование; при его ошибке правка отбрасывается целиком.
// @Tags Destinations
// @Accept json
// @Produce json
// @Param id path string true "ID точки назначения"
// @Param request body dto.UpdateDestinationRequest true "Изменяемые поля"
// @Success 200 {object} utils.SuccessResponse{data=dto.DestinationResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /api/v1/destinations/{id} [patch]
func (h *DestinationHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var req dto.UpdateDestinationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.destUC.Update(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Delete godoc
// @Summary Удаление точки назначения
// @Description Удаляет точку назначения. Уже загруженные выборки не вычищаются: движок агрегации пропускает осиротевшие наборы до следующей полной загрузки.
// @Tags Destinations
// @Param id path string true "ID точки назначения"
// @Success 204 "No Content"
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/destinations/{id} [delete]
func (h *DestinationHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := h.destUC.Delete(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
