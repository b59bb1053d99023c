package usecase

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/commute-heatmap/internal/domain"
	"github.com/commute-heatmap/internal/domain/repository"
	"github.com/commute-heatmap/internal/pkg/errors"
	"github.com/commute-heatmap/internal/usecase/dto"
)

// FetchPeriodAll - период запроса, разворачивающийся в rush и offpeak
const FetchPeriodAll = "all"

// FetchUseCase - оркестрация загрузки матрицы времени в пути.
// Одновременно выполняется не более одной загрузки: повторный запуск
// при занятом загрузчике отклоняется, а не ставится в очередь.
type FetchUseCase struct {
	gridRepo   repository.GridRepository
	destRepo   repository.DestinationRepository
	sampleRepo repository.SampleStoreRepository
	routesRepo repository.RouteMatrixRepository
	logger     *zap.Logger

	mu   sync.Mutex
	busy atomic.Bool
}

// NewFetchUseCase - создание нового FetchUseCase
func NewFetchUseCase(
	gridRepo repository.GridRepository,
	destRepo repository.DestinationRepository,
	sampleRepo repository.SampleStoreRepository,
	routesRepo repository.RouteMatrixRepository,
	logger *zap.Logger,
) *FetchUseCase {
	return &FetchUseCase{
		gridRepo:   gridRepo,
		destRepo:   destRepo,
		sampleRepo: sampleRepo,
		routesRepo: routesRepo,
		logger:     logger,
	}
}

// Refresh - загрузка свежих выборок для периода из запроса.
// Период "all" загружает rush до конца и только затем offpeak.
// Жёсткий сбой периода оставляет его слот хранилища нетронутым.
func (uc *FetchUseCase) Refresh(ctx context.Context, req dto.FetchRequest) (*dto.FetchResponse, error) {
	if !uc.mu.TryLock() {
		return nil, errors.ErrFetchInProgress
	}
	defer uc.mu.Unlock()

	uc.busy.Store(true)
	defer uc.busy.Store(false)

	periods, err := expandPeriods(req.Period)
	if err != nil {
		return nil, err
	}

	origins, err := uc.gridRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Error("Failed to load grid", zap.Error(err))
		return nil, err
	}

	dests, err := uc.destRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Error("Failed to load destinations", zap.Error(err))
		return nil, err
	}
	if len(dests) == 0 {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"reason": "no destinations configured",
		})
	}

	results := make([]dto.PeriodFetchResult, 0, len(periods))
	for _, period := range periods {
		res, err := uc.refreshPeriod(ctx, origins, dests, period)
		if err != nil {
			return nil, err
		}
		results = append(results, *res)
	}

	return &dto.FetchResponse{Periods: results}, nil
}

// Status - флаг занятости и метаданные последних загрузок по периодам
func (uc *FetchUseCase) Status(ctx context.Context) (*dto.FetchStatusResponse, error) {
	meta, err := uc.sampleRepo.Meta(ctx)
	if err != nil {
		uc.logger.Error("Failed to read fetch metadata", zap.Error(err))
		return nil, err
	}

	periods := make([]dto.PeriodFetchResult, 0, len(meta))
	for _, period := range []string{domain.PeriodRush, domain.PeriodOffpeak} {
		m, ok := meta[period]
		if !ok {
			continue
		}
		periods = append(periods, dto.PeriodFetchResult{
			Period:       period,
			FetchedAt:    m.FetchedAt,
			Destinations: m.Destinations,
			Samples:      m.Samples,
			OKSamples:    m.OKSamples,
		})
	}

	return &dto.FetchStatusResponse{
		Busy:    uc.busy.Load(),
		Periods: periods,
	}, nil
}

// refreshPeriod - выборка одного периода и её атомарная запись в хранилище
func (uc *FetchUseCase) refreshPeriod(
	ctx context.Context,
	origins []domain.GridPoint,
	dests []*domain.Destination,
	period string,
) (*dto.PeriodFetchResult, error) {
	uc.logger.Info("Fetching travel times",
		zap.String("period", period),
		zap.Int("origins", len(origins)),
		zap.Int("destinations", len(dests)))

	started := time.Now()

	sets, err := uc.routesRepo.FetchTravelTimesMultiDestination(ctx, origins, dests, period)
	if err != nil {
		uc.logger.Error("Travel time fetch failed, keeping previous samples",
			zap.String("period", period),
			zap.Error(err))
		return nil, errors.ErrProviderError.WithDetails(map[string]interface{}{
			"period": period,
			"error":  err.Error(),
		})
	}

	meta := domain.FetchMeta{FetchedAt: time.Now()}
	meta.Destinations = len(sets)
	for _, set := range sets {
		meta.Samples += len(set.Results)
		for _, r := range set.Results {
			if r.IsOK() {
				meta.OKSamples++
			}
		}
	}

	if err := uc.sampleRepo.ReplacePeriod(ctx, period, sets, meta); err != nil {
		uc.logger.Error("Failed to store samples",
			zap.String("period", period),
			zap.Error(err))
		return nil, err
	}

	uc.logger.Info("Travel times stored",
		zap.String("period", period),
		zap.Int("destinations", meta.Destinations),
		zap.Int("samples", meta.Samples),
		zap.Int("ok_samples", meta.OKSamples),
		zap.Duration("took", time.Since(started)))

	return &dto.PeriodFetchResult{
		Period:       period,
		FetchedAt:    meta.FetchedAt,
		Destinations: meta.Destinations,
		Samples:      meta.Samples,
		OKSamples:    meta.OKSamples,
	}, nil
}

// expandPeriods - разворачивание периода запроса в порядок загрузки
func expandPeriods(period string) ([]string, error) {
	switch period {
	case domain.PeriodRush, domain.PeriodOffpeak:
		return []string{period}, nil
	case FetchPeriodAll:
		// Rush выгружается до конца раньше offpeak, без чередования
		return []string{domain.PeriodRush, domain.PeriodOffpeak}, nil
	default:
		return nil, errors.ErrInvalidTimePeriod.WithDetails(map[string]interface{}{
			"period": period,
		})
	}
}
