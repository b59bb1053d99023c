package repository

import (
	"context"

	"github.com/commute-heatmap/internal/domain"
)

// DestinationRepository определяет методы для работы с пунктами назначения
type DestinationRepository interface {
	// GetAll возвращает все назначения в порядке создания
	GetAll(ctx context.Context) ([]*domain.Destination, error)

	// GetByID возвращает назначение по ID
	GetByID(ctx context.Context, id string) (*domain.Destination, error)

	// Create сохраняет новое назначение
	Create(ctx context.Context, dest *domain.Destination) error

	// Update заменяет существующее назначение
	Update(ctx context.Context, dest *domain.Destination) error

	// Delete удаляет назначение по ID
	Delete(ctx context.Context, id string) error
}
