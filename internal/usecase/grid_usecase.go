package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/commute-heatmap/internal/domain/repository"
	"github.com/commute-heatmap/internal/usecase/dto"
)

// GridUseCase - use case каталога точек сетки отправления
type GridUseCase struct {
	gridRepo repository.GridRepository
	logger   *zap.Logger
}

// NewGridUseCase - создание нового GridUseCase
func NewGridUseCase(gridRepo repository.GridRepository, logger *zap.Logger) *GridUseCase {
	return &GridUseCase{
		gridRepo: gridRepo,
		logger:   logger,
	}
}

// List - точки сетки в порядке обхода
func (uc *GridUseCase) List(ctx context.Context) (*dto.GridResponse, error) {
	points, err := uc.gridRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Error("Failed to load grid", zap.Error(err))
		return nil, err
	}

	return &dto.GridResponse{
		Points: points,
		Total:  len(points),
	}, nil
}
