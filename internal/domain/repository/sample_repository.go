package repository

import (
	"context"

	"github.com/commute-heatmap/internal/domain"
)

// SampleStoreRepository определяет методы для хранилища сырых выборок.
// Выборка периода заменяется целиком: частичных обновлений нет.
type SampleStoreRepository interface {
	// ReplacePeriod атомарно заменяет выборку периода и её метаданные
	ReplacePeriod(ctx context.Context, period string, sets []domain.DestinationSampleSet, meta domain.FetchMeta) error

	// Snapshot возвращает согласованный срез обоих периодов
	Snapshot(ctx context.Context) (*domain.SampleSnapshot, error)

	// Meta возвращает метаданные последних загрузок по периодам
	Meta(ctx context.Context) (map[string]domain.FetchMeta, error)
}
