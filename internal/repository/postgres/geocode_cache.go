package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/commute-heatmap/internal/domain"
	"github.com/commute-heatmap/internal/domain/repository"
	"github.com/commute-heatmap/internal/pkg/errors"
)

// geocodeCacheSchema - таблица кэша создается при старте, миграций
// для кэш-таблицы не требуется
const geocodeCacheSchema = `
	CREATE TABLE IF NOT EXISTS geocode_cache (
		address           TEXT PRIMARY KEY,
		lat               DOUBLE PRECISION NOT NULL,
		lng               DOUBLE PRECISION NOT NULL,
		formatted_address TEXT NOT NULL,
		expires_at        TIMESTAMPTZ NOT NULL
	)
`

type geocodeCacheRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
	closer func() error
}

// NewGeocodeCacheRepository создает Postgres-кэш результатов геокодирования.
// Просроченные записи чистятся при старте, дальше фильтруются на чтении.
func NewGeocodeCacheRepository(db *DB) (repository.GeocodeCacheRepository, error) {
	if _, err := db.Exec(geocodeCacheSchema); err != nil {
		return nil, fmt.Errorf("failed to ensure geocode_cache table: %w", err)
	}

	if _, err := db.Exec(`DELETE FROM geocode_cache WHERE expires_at <= NOW()`); err != nil {
		db.logger.Warn("Failed to prune expired geocode entries", zap.Error(err))
	}

	return &geocodeCacheRepository{
		db:     db.DB,
		logger: db.logger,
		closer: db.Close,
	}, nil
}

// normalizeAddress приводит адрес к ключевой форме
func normalizeAddress(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}

// Get возвращает непросроченный закэшированный результат или nil при промахе
func (r *geocodeCacheRepository) Get(ctx context.Context, address string) (*domain.GeocodeResult, error) {
	query := `
		SELECT lat, lng, formatted_address
		FROM geocode_cache
		WHERE address = $1 AND expires_at > NOW()
	`

	var result domain.GeocodeResult
	err := r.db.QueryRowContext(ctx, query, normalizeAddress(address)).Scan(
		&result.Lat, &result.Lng, &result.FormattedAddress,
	)
	if err == sql.ErrNoRows {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get geocode from cache", zap.String("address", address), zap.Error(err))
		return nil, errors.ErrCacheError
	}

	r.logger.Debug("Geocode cache hit", zap.String("address", address))
	return &result, nil
}

// Set сохраняет результат геокодирования, перезаписывая прежнюю запись адреса
func (r *geocodeCacheRepository) Set(ctx context.Context, address string, result *domain.GeocodeResult, ttl time.Duration) error {
	query := `
		INSERT INTO geocode_cache (address, lat, lng, formatted_address, expires_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (address) DO UPDATE SET
			lat = EXCLUDED.lat,
			lng = EXCLUDED.lng,
			formatted_address = EXCLUDED.formatted_address,
			expires_at = EXCLUDED.expires_at
	`

	_, err := r.db.ExecContext(ctx, query,
		normalizeAddress(address),
		result.Lat,
		result.Lng,
		result.FormattedAddress,
		time.Now().Add(ttl),
	)
	if err != nil {
		r.logger.Error("Failed to set geocode cache", zap.String("address", address), zap.Error(err))
		return errors.ErrCacheError
	}

	r.logger.Debug("Geocode cached", zap.String("address", address), zap.Duration("ttl", ttl))
	return nil
}

// Delete инвалидирует записи по адресам одним запросом
func (r *geocodeCacheRepository) Delete(ctx context.Context, addresses ...string) error {
	if len(addresses) == 0 {
		return nil
	}

	normalized := make([]string, 0, len(addresses))
	for _, addr := range addresses {
		normalized = append(normalized, normalizeAddress(addr))
	}

	query := `DELETE FROM geocode_cache WHERE address = ANY($1)`
	if _, err := r.db.ExecContext(ctx, query, pq.Array(normalized)); err != nil {
		r.logger.Error("Failed to delete geocode cache entries", zap.Error(err))
		return errors.ErrCacheError
	}

	r.logger.Debug("Geocode cache entries deleted", zap.Int("count", len(normalized)))
	return nil
}

// Close закрывает соединение с базой
func (r *geocodeCacheRepository) Close() error {
	return r.closer()
}
