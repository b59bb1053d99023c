package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/commute-heatmap/internal/domain"
	"github.com/commute-heatmap/internal/domain/repository"
	"github.com/commute-heatmap/internal/pkg/errors"
	"github.com/commute-heatmap/internal/pkg/utils"
	"github.com/commute-heatmap/internal/usecase/dto"
)

// defaultDestinations - стартовый набор точек назначения с выверенными
// координатами. Засев не обращается к геокодеру.
var defaultDestinations = []domain.Destination{
	{
		ID:           "default-office",
		Name:         "Office",
		Address:      "525 Market St, San Francisco, CA",
		Lat:          37.7903,
		Lng:          -122.3991,
		RushTrips:    8,
		OffpeakTrips: 2,
	},
	{
		ID:           "default-gym",
		Name:         "Gym",
		Address:      "2301 Market St, San Francisco, CA",
		Lat:          37.7646,
		Lng:          -122.4326,
		RushTrips:    0,
		OffpeakTrips: 3,
	},
	{
		ID:           "default-airport",
		Name:         "SFO Airport",
		Address:      "San Francisco International Airport, CA",
		Lat:          37.6213,
		Lng:          -122.3790,
		RushTrips:    0,
		OffpeakTrips: 1,
	},
}

// DestinationUseCase - жизненный цикл точек назначения.
// Инвариант: lat/lng всегда являются результатом геокодирования адреса,
// координаты никогда не вводятся вручную.
type DestinationUseCase struct {
	destRepo    repository.DestinationRepository
	geocodeRepo repository.GeocodingRepository
	cacheRepo   repository.GeocodeCacheRepository
	logger      *zap.Logger
	cacheTTL    time.Duration
}

// NewDestinationUseCase - создание нового DestinationUseCase
func NewDestinationUseCase(
	destRepo repository.DestinationRepository,
	geocodeRepo repository.GeocodingRepository,
	cacheRepo repository.GeocodeCacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *DestinationUseCase {
	return &DestinationUseCase{
		destRepo:    destRepo,
		geocodeRepo: geocodeRepo,
		cacheRepo:   cacheRepo,
		logger:      logger,
		cacheTTL:    cacheTTL,
	}
}

// List - все точки назначения в порядке создания
func (uc *DestinationUseCase) List(ctx context.Context) (*dto.DestinationListResponse, error) {
	dests, err := uc.destRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Error("Failed to list destinations", zap.Error(err))
		return nil, err
	}

	items := make([]dto.DestinationResponse, 0, len(dests))
	for _, d := range dests {
		items = append(items, dto.ConvertDestination(d))
	}

	return &dto.DestinationListResponse{
		Destinations: items,
		Total:        len(items),
	}, nil
}

// Get - точка назначения по id
func (uc *DestinationUseCase) Get(ctx context.Context, id string) (*dto.DestinationResponse, error) {
	dest, err := uc.destRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.ConvertDestination(dest)
	return &resp, nil
}

// Create - создание точки назначения.
// Геокодирование обязано завершиться успешно до вставки: при ошибке
// список остаётся без изменений, частичных вставок нет.
func (uc *DestinationUseCase) Create(ctx context.Context, req dto.CreateDestinationRequest) (*dto.DestinationResponse, error) {
	geo, err := uc.resolveAddress(ctx, req.Address)
	if err != nil {
		uc.logger.Error("Failed to geocode destination address",
			zap.String("address", req.Address),
			zap.Error(err))
		return nil, err
	}

	dest := &domain.Destination{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Address:      req.Address,
		Lat:          geo.Lat,
		Lng:          geo.Lng,
		RushTrips:    req.RushTrips,
		OffpeakTrips: req.OffpeakTrips,
	}

	if err := uc.destRepo.Create(ctx, dest); err != nil {
		uc.logger.Error("Failed to create destination", zap.Error(err))
		return nil, err
	}

	uc.logger.Info("Destination created",
		zap.String("id", dest.ID),
		zap.String("name", dest.Name))

	resp := dto.ConvertDestination(dest)
	return &resp, nil
}

// Update - частичное обновление точки назначения.
// Новый адрес сначала геокодируется; при ошибке правка отбрасывается
// целиком и прежние адрес/координаты сохраняются. Правка числа поездок
// геокодирование не запускает.
func (uc *DestinationUseCase) Update(ctx context.Context, id string, req dto.UpdateDestinationRequest) (*dto.DestinationResponse, error) {
	dest, err := uc.destRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *dest
	if req.Name != nil {
		updated.Name = *req.Name
	}
	if req.RushTrips != nil {
		updated.RushTrips = *req.RushTrips
	}
	if req.OffpeakTrips != nil {
		updated.OffpeakTrips = *req.OffpeakTrips
	}

	if req.Address != nil && *req.Address != dest.Address {
		geo, err := uc.resolveAddress(ctx, *req.Address)
		if err != nil {
			uc.logger.Error("Failed to geocode new address, edit discarded",
				zap.String("id", id),
				zap.String("address", *req.Address),
				zap.Error(err))
			return nil, err
		}

		updated.Address = *req.Address
		updated.Lat = geo.Lat
		updated.Lng = geo.Lng

		// Запись старого адреса в кеше больше никому не нужна
		if err := uc.cacheRepo.Delete(ctx, dest.Address); err != nil {
			uc.logger.Warn("Failed to invalidate cached geocode",
				zap.String("address", dest.Address),
				zap.Error(err))
		}
	}

	if err := uc.destRepo.Update(ctx, &updated); err != nil {
		uc.logger.Error("Failed to update destination", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	uc.logger.Info("Destination updated", zap.String("id", id))

	resp := dto.ConvertDestination(&updated)
	return &resp, nil
}

// Delete - удаление точки назначения.
// Сырые выборки не вычищаются: движок агрегации пропускает осиротевшие
// наборы, а полная перезагрузка данных синхронизирует хранилище.
func (uc *DestinationUseCase) Delete(ctx context.Context, id string) error {
	dest, err := uc.destRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.destRepo.Delete(ctx, id); err != nil {
		uc.logger.Error("Failed to delete destination", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := uc.cacheRepo.Delete(ctx, dest.Address); err != nil {
		uc.logger.Warn("Failed to invalidate cached geocode",
			zap.String("address", dest.Address),
			zap.Error(err))
	}

	uc.logger.Info("Destination deleted",
		zap.String("id", id),
		zap.String("name", dest.Name))

	return nil
}

// SeedDefaults - установка стартового набора, когда список пуст
func (uc *DestinationUseCase) SeedDefaults(ctx context.Context) error {
	existing, err := uc.destRepo.GetAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		uc.logger.Debug("Destinations already present, skipping seed",
			zap.Int("count", len(existing)))
		return nil
	}

	for i := range defaultDestinations {
		dest := defaultDestinations[i]
		if err := uc.destRepo.Create(ctx, &dest); err != nil {
			return err
		}
	}

	uc.logger.Info("Seeded default destinations", zap.Int("count", len(defaultDestinations)))
	return nil
}

// resolveAddress - геокодирование адреса через кеш.
// Промах кеша уходит к провайдеру; сбой самого кеша не фатален.
func (uc *DestinationUseCase) resolveAddress(ctx context.Context, address string) (*domain.GeocodeResult, error) {
	cached, err := uc.cacheRepo.Get(ctx, address)
	if err != nil {
		uc.logger.Warn("Geocode cache lookup failed",
			zap.String("address", address),
			zap.Error(err))
	}
	if cached != nil {
		uc.logger.Debug("Geocode cache hit", zap.String("address", address))
		return cached, nil
	}

	result, err := uc.geocodeRepo.Geocode(ctx, address)
	if err != nil {
		return nil, err
	}

	if !utils.ValidateCoordinates(result.Lat, result.Lng) {
		uc.logger.Error("Geocoder returned out-of-range coordinates",
			zap.String("address", address),
			zap.Float64("lat", result.Lat),
			zap.Float64("lng", result.Lng))
		return nil, errors.ErrInvalidCoordinates.WithDetails(map[string]interface{}{
			"address": address,
			"lat":     result.Lat,
			"lng":     result.Lng,
		})
	}

	if err := uc.cacheRepo.Set(ctx, address, result, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache geocode result",
			zap.String("address", address),
			zap.Error(err))
	}

	return result, nil
}
