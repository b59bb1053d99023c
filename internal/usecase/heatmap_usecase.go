package usecase

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/commute-heatmap/internal/aggregate"
	"github.com/commute-heatmap/internal/domain"
	"github.com/commute-heatmap/internal/domain/repository"
	"github.com/commute-heatmap/internal/pkg/errors"
	"github.com/commute-heatmap/internal/usecase/dto"
)

// HeatmapUseCase - построение тепловой карты из уже загруженных выборок.
// Чистый пересчёт: смена конфигурации вида не порождает сетевых вызовов.
type HeatmapUseCase struct {
	sampleRepo repository.SampleStoreRepository
	destRepo   repository.DestinationRepository
	logger     *zap.Logger
}

// NewHeatmapUseCase - создание нового HeatmapUseCase
func NewHeatmapUseCase(
	sampleRepo repository.SampleStoreRepository,
	destRepo repository.DestinationRepository,
	logger *zap.Logger,
) *HeatmapUseCase {
	return &HeatmapUseCase{
		sampleRepo: sampleRepo,
		destRepo:   destRepo,
		logger:     logger,
	}
}

// Build - свертка выборок в маркеры с цветом и легендой
func (uc *HeatmapUseCase) Build(ctx context.Context, q dto.HeatmapQuery) (*dto.HeatmapResponse, error) {
	cfg, err := uc.resolveView(ctx, q)
	if err != nil {
		return nil, err
	}

	snap, err := uc.sampleRepo.Snapshot(ctx)
	if err != nil {
		uc.logger.Error("Failed to read sample snapshot", zap.Error(err))
		return nil, err
	}

	dests, err := uc.destRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Error("Failed to load destinations", zap.Error(err))
		return nil, err
	}

	points := aggregate.Reduce(snap, dests, cfg)

	view := dto.HeatmapView{
		TimePeriod:  cfg.TimePeriod,
		ViewMode:    cfg.ViewMode,
		Destination: cfg.DestinationFilter,
		DisplayMode: cfg.DisplayMode,
	}

	if len(points) == 0 {
		// Пустая карта - нормальный ответ: данные ещё не загружены
		// или текущий вид не дал ни одной валидной точки
		return &dto.HeatmapResponse{
			Markers: []dto.HeatmapMarker{},
			Total:   0,
			View:    view,
		}, nil
	}

	min, max, mean := aggregate.Stats(points)

	markers := make([]dto.HeatmapMarker, 0, len(points))
	for _, p := range points {
		style := aggregate.Colorize(p.Duration, min, max)
		markers = append(markers, dto.HeatmapMarker{
			Origin:       p.Origin,
			Neighborhood: p.Neighborhood,
			Duration:     p.Duration,
			Minutes:      toMinutes(p.Duration),
			Color:        style.Color,
			Intensity:    style.Intensity,
		})
	}

	uc.logger.Debug("Heatmap built",
		zap.String("period", cfg.TimePeriod),
		zap.String("view", cfg.ViewMode),
		zap.Int("markers", len(markers)))

	return &dto.HeatmapResponse{
		Markers: markers,
		Total:   len(markers),
		Legend: &dto.HeatmapLegend{
			MinDuration:  min,
			MaxDuration:  max,
			MeanDuration: mean,
			MinMinutes:   toMinutes(min),
			MaxMinutes:   toMinutes(max),
			MeanMinutes:  toMinutes(mean),
		},
		View: view,
	}, nil
}

// resolveView - подстановка умолчаний и проверка конфигурации вида.
// Фильтр по конкретному назначению требует, чтобы назначение существовало.
func (uc *HeatmapUseCase) resolveView(ctx context.Context, q dto.HeatmapQuery) (domain.ViewConfig, error) {
	cfg := domain.ViewConfig{
		TimePeriod:        q.TimePeriod,
		ViewMode:          q.ViewMode,
		DestinationFilter: q.Destination,
		DisplayMode:       q.DisplayMode,
	}

	if cfg.TimePeriod == "" {
		cfg.TimePeriod = domain.PeriodRush
	}
	if cfg.ViewMode == "" {
		cfg.ViewMode = domain.ViewIndividual
	}
	if cfg.DestinationFilter == "" {
		cfg.DestinationFilter = domain.DestinationFilterAll
	}
	if cfg.DisplayMode == "" {
		cfg.DisplayMode = domain.DisplayPerTrip
	}

	if !domain.IsValidPeriod(cfg.TimePeriod) {
		return domain.ViewConfig{}, errors.ErrInvalidTimePeriod.WithDetails(map[string]interface{}{
			"period": cfg.TimePeriod,
		})
	}
	if !domain.IsValidViewMode(cfg.ViewMode) {
		return domain.ViewConfig{}, errors.ErrInvalidViewConfig.WithDetails(map[string]interface{}{
			"view": cfg.ViewMode,
		})
	}
	if !domain.IsValidDisplayMode(cfg.DisplayMode) {
		return domain.ViewConfig{}, errors.ErrInvalidViewConfig.WithDetails(map[string]interface{}{
			"display": cfg.DisplayMode,
		})
	}

	if !cfg.AllDestinations() {
		if _, err := uc.destRepo.GetByID(ctx, cfg.DestinationFilter); err != nil {
			return domain.ViewConfig{}, err
		}
	}

	return cfg, nil
}

// toMinutes - округление секунд до целых минут для подписей
func toMinutes(seconds float64) int {
	return int(math.Round(seconds / 60))
}
