package cache

import (
	"context"
	"time"

	"github.com/commute-heatmap/internal/domain"
	"github.com/commute-heatmap/internal/domain/repository"
)

// noopGeocodeCache отключает кэширование: каждый запрос идет к провайдеру
type noopGeocodeCache struct{}

// NewNoopGeocodeCache создает кэш-заглушку для конфигурации без бэкенда
func NewNoopGeocodeCache() repository.GeocodeCacheRepository {
	return noopGeocodeCache{}
}

func (noopGeocodeCache) Get(ctx context.Context, address string) (*domain.GeocodeResult, error) {
	return nil, nil
}

func (noopGeocodeCache) Set(ctx context.Context, address string, result *domain.GeocodeResult, ttl time.Duration) error {
	return nil
}

func (noopGeocodeCache) Delete(ctx context.Context, addresses ...string) error {
	return nil
}

func (noopGeocodeCache) Close() error {
	return nil
}
