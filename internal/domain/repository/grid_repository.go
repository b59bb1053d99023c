package repository

import (
	"context"

	"github.com/commute-heatmap/internal/domain"
)

// GridRepository определяет методы для работы с сеткой выборки
type GridRepository interface {
	// GetAll возвращает все точки сетки в фиксированном порядке
	GetAll(ctx context.Context) ([]domain.GridPoint, error)
}
