package repository

import (
	"context"

	"github.com/commute-heatmap/internal/domain"
)

// GeocodingRepository определяет методы для работы с API геокодирования
type GeocodingRepository interface {
	// Geocode возвращает координаты и нормализованный адрес
	Geocode(ctx context.Context, address string) (*domain.GeocodeResult, error)
}
