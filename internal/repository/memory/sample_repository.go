package memory

import (
	"context"
	"sync"

	"github.com/commute-heatmap/internal/domain"
	"github.com/commute-heatmap/internal/domain/repository"
	"github.com/commute-heatmap/internal/pkg/errors"
)

// sampleStoreRepository хранит сырые выборки в памяти процесса.
// Выборка периода заменяется только целиком, поэтому читатели
// всегда видят либо старый, либо новый срез, но не их смесь.
type sampleStoreRepository struct {
	mu   sync.RWMutex
	sets map[string][]domain.DestinationSampleSet
	meta map[string]domain.FetchMeta
}

// NewSampleStoreRepository создает пустое хранилище выборок
func NewSampleStoreRepository() repository.SampleStoreRepository {
	return &sampleStoreRepository{
		sets: make(map[string][]domain.DestinationSampleSet),
		meta: make(map[string]domain.FetchMeta),
	}
}

// ReplacePeriod атомарно заменяет выборку периода и её метаданные
func (r *sampleStoreRepository) ReplacePeriod(
	ctx context.Context,
	period string,
	sets []domain.DestinationSampleSet,
	meta domain.FetchMeta,
) error {
	if !domain.IsFetchablePeriod(period) {
		return errors.ErrInvalidTimePeriod
	}

	cp := make([]domain.DestinationSampleSet, len(sets))
	copy(cp, sets)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sets[period] = cp
	r.meta[period] = meta
	return nil
}

// Snapshot возвращает согласованный срез обоих периодов.
// Внешние срезы копируются, вложенные Results читатели не мутируют.
func (r *sampleStoreRepository) Snapshot(ctx context.Context) (*domain.SampleSnapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return &domain.SampleSnapshot{
		Rush:    copySets(r.sets[domain.PeriodRush]),
		Offpeak: copySets(r.sets[domain.PeriodOffpeak]),
	}, nil
}

// Meta возвращает метаданные последних загрузок по периодам
func (r *sampleStoreRepository) Meta(ctx context.Context) (map[string]domain.FetchMeta, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]domain.FetchMeta, len(r.meta))
	for period, m := range r.meta {
		out[period] = m
	}
	return out, nil
}

func copySets(sets []domain.DestinationSampleSet) []domain.DestinationSampleSet {
	if len(sets) == 0 {
		return nil
	}
	cp := make([]domain.DestinationSampleSet, len(sets))
	copy(cp, sets)
	return cp
}
