package repository

import (
	"context"
	"time"

	"github.com/commute-heatmap/internal/domain"
)

// GeocodeCacheRepository определяет методы для кэша геокодирования
type GeocodeCacheRepository interface {
	// Get возвращает закэшированный результат или nil при промахе
	Get(ctx context.Context, address string) (*domain.GeocodeResult, error)

	// Set сохраняет результат геокодирования с заданным TTL
	Set(ctx context.Context, address string, result *domain.GeocodeResult, ttl time.Duration) error

	// Delete инвалидирует записи по адресам, например при смене адреса назначения
	Delete(ctx context.Context, addresses ...string) error

	// Close освобождает ресурсы кэша
	Close() error
}
