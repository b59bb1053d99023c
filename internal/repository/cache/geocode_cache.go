package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/commute-heatmap/internal/domain"
	"github.com/commute-heatmap/internal/domain/repository"
)

// geocodeKeyPrefix - пространство ключей кэша геокодирования
const geocodeKeyPrefix = "geocode:"

type geocodeCacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewGeocodeCacheRepository создает Redis-кэш результатов геокодирования
func NewGeocodeCacheRepository(r *Redis) repository.GeocodeCacheRepository {
	return &geocodeCacheRepository{
		client: r.Client(),
		logger: r.logger,
	}
}

// geocodeKey нормализует адрес, чтобы регистр и пробелы не плодили дубликаты
func geocodeKey(address string) string {
	return geocodeKeyPrefix + strings.ToLower(strings.TrimSpace(address))
}

// Get возвращает закэшированный результат или nil при промахе
func (r *geocodeCacheRepository) Get(ctx context.Context, address string) (*domain.GeocodeResult, error) {
	val, err := r.client.Get(ctx, geocodeKey(address)).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get geocode from cache", zap.String("address", address), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	var result domain.GeocodeResult
	if err := json.Unmarshal(val, &result); err != nil {
		r.logger.Error("Failed to unmarshal cached geocode", zap.String("address", address), zap.Error(err))
		return nil, fmt.Errorf("unmarshal geocode: %w", err)
	}

	r.logger.Debug("Geocode cache hit", zap.String("address", address))
	return &result, nil
}

// Set сохраняет результат геокодирования с заданным TTL
func (r *geocodeCacheRepository) Set(ctx context.Context, address string, result *domain.GeocodeResult, ttl time.Duration) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal geocode: %w", err)
	}

	if err := r.client.Set(ctx, geocodeKey(address), data, ttl).Err(); err != nil {
		r.logger.Error("Failed to set geocode cache", zap.String("address", address), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Geocode cached", zap.String("address", address), zap.Duration("ttl", ttl))
	return nil
}

// Delete инвалидирует записи по адресам
func (r *geocodeCacheRepository) Delete(ctx context.Context, addresses ...string) error {
	if len(addresses) == 0 {
		return nil
	}

	keys := make([]string, 0, len(addresses))
	for _, addr := range addresses {
		keys = append(keys, geocodeKey(addr))
	}

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		r.logger.Error("Failed to delete geocode cache entries", zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Geocode cache entries deleted", zap.Int("count", len(keys)))
	return nil
}

// Close освобождает соединение Redis
func (r *geocodeCacheRepository) Close() error {
	return r.client.Close()
}
