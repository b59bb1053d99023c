package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/commute-heatmap/internal/domain"
	"github.com/commute-heatmap/internal/pkg/errors"
	"github.com/commute-heatmap/internal/usecase"
	"github.com/commute-heatmap/internal/usecase/dto"
)

// MockDestinationRepository is a mock of DestinationRepository
type MockDestinationRepository struct {
	mock.Mock
}

func (m *MockDestinationRepository) GetAll(ctx context.Context) ([]*domain.Destination, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Destination), args.Error(1)
}

func (m *MockDestinationRepository) GetByID(ctx context.Context, id string) (*domain.Destination, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Destination), args.Error(1)
}

func (m *MockDestinationRepository) Create(ctx context.Context, dest *domain.Destination) error {
	args := m.Called(ctx, dest)
	return args.Error(0)
}

func (m *MockDestinationRepository) Update(ctx context.Context, dest *domain.Destination) error {
	args := m.Called(ctx, dest)
	return args.Error(0)
}

func (m *MockDestinationRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockGeocodingRepository is a mock of GeocodingRepository
type MockGeocodingRepository struct {
	mock.Mock
}

func (m *MockGeocodingRepository) Geocode(ctx context.Context, address string) (*domain.GeocodeResult, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeocodeResult), args.Error(1)
}

// MockGeocodeCacheRepository is a mock of GeocodeCacheRepository
type MockGeocodeCacheRepository struct {
	mock.Mock
}

func (m *MockGeocodeCacheRepository) Get(ctx context.Context, address string) (*domain.GeocodeResult, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeocodeResult), args.Error(1)
}

func (m *MockGeocodeCacheRepository) Set(ctx context.Context, address string, result *domain.GeocodeResult, ttl time.Duration) error {
	args := m.Called(ctx, address, result, ttl)
	return args.Error(0)
}

func (m *MockGeocodeCacheRepository) Delete(ctx context.Context, addresses ...string) error {
	callArgs := make([]interface{}, 0, len(addresses)+1)
	callArgs = append(callArgs, ctx)
	for _, a := range addresses {
		callArgs = append(callArgs, a)
	}
	args := m.Called(callArgs...)
	return args.Error(0)
}

func (m *MockGeocodeCacheRepository) Close() error {
	args := m.Called()
	return args.Error(0)
}

func ptrString(s string) *string { return &s }
func ptrInt(i int) *int          { return &i }

func newDestinationUseCase(t *testing.T) (*usecase.DestinationUseCase, *MockDestinationRepository, *MockGeocodingRepository, *MockGeocodeCacheRepository) {
	t.Helper()
	destRepo := &MockDestinationRepository{}
	geocodeRepo := &MockGeocodingRepository{}
	cacheRepo := &MockGeocodeCacheRepository{}
	uc := usecase.NewDestinationUseCase(destRepo, geocodeRepo, cacheRepo, zap.NewNop(), time.Hour)
	return uc, destRepo, geocodeRepo, cacheRepo
}

func TestDestinationUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("cache miss geocodes and stores", func(t *testing.T) {
		uc, destRepo, geocodeRepo, cacheRepo := newDestinationUseCase(t)

		geo := &domain.GeocodeResult{Lat: 37.79, Lng: -122.4, FormattedAddress: "425 Market St, San Francisco, CA 94105, USA"}
		cacheRepo.On("Get", ctx, "425 Market St, San Francisco, CA").Return(nil, nil)
		geocodeRepo.On("Geocode", ctx, "425 Market St, San Francisco, CA").Return(geo, nil)
		cacheRepo.On("Set", ctx, "425 Market St, San Francisco, CA", geo, time.Hour).Return(nil)
		destRepo.On("Create", ctx, mock.MatchedBy(func(d *domain.Destination) bool {
			return d.ID != "" &&
				d.Name == "Office" &&
				d.Address == "425 Market St, San Francisco, CA" &&
				d.Lat == 37.79 && d.Lng == -122.4 &&
				d.RushTrips == 8 && d.OffpeakTrips == 2
		})).Return(nil)

		resp, err := uc.Create(ctx, dto.CreateDestinationRequest{
			Name:         "Office",
			Address:      "425 Market St, San Francisco, CA",
			RushTrips:    8,
			OffpeakTrips: 2,
		})

		assert.NoError(t, err)
		assert.NotNil(t, resp)
		assert.NotEmpty(t, resp.ID)
		assert.Equal(t, 37.79, resp.Lat)
		destRepo.AssertExpectations(t)
		geocodeRepo.AssertExpectations(t)
		cacheRepo.AssertExpectations(t)
	})

	t.Run("cache hit skips provider", func(t *testing.T) {
		uc, destRepo, geocodeRepo, cacheRepo := newDestinationUseCase(t)

		cached := &domain.GeocodeResult{Lat: 37.76, Lng: -122.43}
		cacheRepo.On("Get", ctx, "2301 Market St").Return(cached, nil)
		destRepo.On("Create", ctx, mock.Anything).Return(nil)

		resp, err := uc.Create(ctx, dto.CreateDestinationRequest{Name: "Gym", Address: "2301 Market St"})

		assert.NoError(t, err)
		assert.Equal(t, 37.76, resp.Lat)
		geocodeRepo.AssertNotCalled(t, "Geocode", mock.Anything, mock.Anything)
		cacheRepo.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("geocoding failure leaves list unchanged", func(t *testing.T) {
		uc, destRepo, geocodeRepo, cacheRepo := newDestinationUseCase(t)

		cacheRepo.On("Get", ctx, "no such place").Return(nil, nil)
		geocodeRepo.On("Geocode", ctx, "no such place").Return(nil, errors.ErrGeocodingFailed)

		resp, err := uc.Create(ctx, dto.CreateDestinationRequest{Name: "Nowhere", Address: "no such place"})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, errors.ErrGeocodingFailed)
		destRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		cacheRepo.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("cache errors are not fatal", func(t *testing.T) {
		uc, destRepo, geocodeRepo, cacheRepo := newDestinationUseCase(t)

		geo := &domain.GeocodeResult{Lat: 37.7, Lng: -122.4}
		cacheRepo.On("Get", ctx, "1 Ferry Building").Return(nil, errors.ErrCacheError)
		geocodeRepo.On("Geocode", ctx, "1 Ferry Building").Return(geo, nil)
		cacheRepo.On("Set", ctx, "1 Ferry Building", geo, time.Hour).Return(errors.ErrCacheError)
		destRepo.On("Create", ctx, mock.Anything).Return(nil)

		resp, err := uc.Create(ctx, dto.CreateDestinationRequest{Name: "Ferry", Address: "1 Ferry Building"})

		assert.NoError(t, err)
		assert.NotNil(t, resp)
		destRepo.AssertExpectations(t)
	})

	t.Run("out-of-range provider coordinates are rejected", func(t *testing.T) {
		uc, destRepo, geocodeRepo, cacheRepo := newDestinationUseCase(t)

		bad := &domain.GeocodeResult{Lat: 137.79, Lng: -122.4}
		cacheRepo.On("Get", ctx, "425 Market St").Return(nil, nil)
		geocodeRepo.On("Geocode", ctx, "425 Market St").Return(bad, nil)

		resp, err := uc.Create(ctx, dto.CreateDestinationRequest{Name: "Office", Address: "425 Market St"})

		assert.Nil(t, resp)
		var appErr *errors.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, errors.ErrInvalidCoordinates.Code, appErr.Code)
		destRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		cacheRepo.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestDestinationUseCase_Update(t *testing.T) {
	ctx := context.Background()

	existing := &domain.Destination{
		ID:           "dest-1",
		Name:         "Office",
		Address:      "425 Market St",
		Lat:          37.79,
		Lng:          -122.4,
		RushTrips:    8,
		OffpeakTrips: 2,
	}

	t.Run("trip counts only never geocode", func(t *testing.T) {
		uc, destRepo, geocodeRepo, cacheRepo := newDestinationUseCase(t)

		destRepo.On("GetByID", ctx, "dest-1").Return(existing, nil)
		destRepo.On("Update", ctx, mock.MatchedBy(func(d *domain.Destination) bool {
			return d.RushTrips == 10 && d.OffpeakTrips == 2 && d.Address == "425 Market St"
		})).Return(nil)

		resp, err := uc.Update(ctx, "dest-1", dto.UpdateDestinationRequest{RushTrips: ptrInt(10)})

		assert.NoError(t, err)
		assert.Equal(t, 10, resp.RushTrips)
		geocodeRepo.AssertNotCalled(t, "Geocode", mock.Anything, mock.Anything)
		cacheRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("address change re-geocodes and drops old cache entry", func(t *testing.T) {
		uc, destRepo, geocodeRepo, cacheRepo := newDestinationUseCase(t)

		geo := &domain.GeocodeResult{Lat: 37.8, Lng: -122.41}
		destRepo.On("GetByID", ctx, "dest-1").Return(existing, nil)
		cacheRepo.On("Get", ctx, "600 Montgomery St").Return(nil, nil)
		geocodeRepo.On("Geocode", ctx, "600 Montgomery St").Return(geo, nil)
		cacheRepo.On("Set", ctx, "600 Montgomery St", geo, time.Hour).Return(nil)
		cacheRepo.On("Delete", ctx, "425 Market St").Return(nil)
		destRepo.On("Update", ctx, mock.MatchedBy(func(d *domain.Destination) bool {
			return d.Address == "600 Montgomery St" &&
				d.Lat == 37.8 && d.Lng == -122.41 &&
				d.Name == "Office"
		})).Return(nil)

		resp, err := uc.Update(ctx, "dest-1", dto.UpdateDestinationRequest{Address: ptrString("600 Montgomery St")})

		assert.NoError(t, err)
		assert.Equal(t, "600 Montgomery St", resp.Address)
		assert.Equal(t, 37.8, resp.Lat)
		destRepo.AssertExpectations(t)
		cacheRepo.AssertExpectations(t)
	})

	t.Run("failed geocode discards whole edit", func(t *testing.T) {
		uc, destRepo, geocodeRepo, cacheRepo := newDestinationUseCase(t)

		destRepo.On("GetByID", ctx, "dest-1").Return(existing, nil)
		cacheRepo.On("Get", ctx, "garbage address").Return(nil, nil)
		geocodeRepo.On("Geocode", ctx, "garbage address").Return(nil, errors.ErrGeocodingFailed)

		// Даже переименование из того же запроса не должно примениться
		resp, err := uc.Update(ctx, "dest-1", dto.UpdateDestinationRequest{
			Name:    ptrString("New name"),
			Address: ptrString("garbage address"),
		})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, errors.ErrGeocodingFailed)
		destRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		cacheRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("unchanged address does not re-geocode", func(t *testing.T) {
		uc, destRepo, geocodeRepo, _ := newDestinationUseCase(t)

		destRepo.On("GetByID", ctx, "dest-1").Return(existing, nil)
		destRepo.On("Update", ctx, mock.Anything).Return(nil)

		_, err := uc.Update(ctx, "dest-1", dto.UpdateDestinationRequest{Address: ptrString("425 Market St")})

		assert.NoError(t, err)
		geocodeRepo.AssertNotCalled(t, "Geocode", mock.Anything, mock.Anything)
	})

	t.Run("unknown destination", func(t *testing.T) {
		uc, destRepo, _, _ := newDestinationUseCase(t)

		destRepo.On("GetByID", ctx, "ghost").Return(nil, errors.ErrDestinationNotFound)

		resp, err := uc.Update(ctx, "ghost", dto.UpdateDestinationRequest{RushTrips: ptrInt(1)})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, errors.ErrDestinationNotFound)
	})
}

func TestDestinationUseCase_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes destination and cached geocode", func(t *testing.T) {
		uc, destRepo, _, cacheRepo := newDestinationUseCase(t)

		destRepo.On("GetByID", ctx, "dest-1").Return(&domain.Destination{ID: "dest-1", Address: "425 Market St"}, nil)
		destRepo.On("Delete", ctx, "dest-1").Return(nil)
		cacheRepo.On("Delete", ctx, "425 Market St").Return(nil)

		err := uc.Delete(ctx, "dest-1")

		assert.NoError(t, err)
		destRepo.AssertExpectations(t)
		cacheRepo.AssertExpectations(t)
	})

	t.Run("unknown destination", func(t *testing.T) {
		uc, destRepo, _, _ := newDestinationUseCase(t)

		destRepo.On("GetByID", ctx, "ghost").Return(nil, errors.ErrDestinationNotFound)

		err := uc.Delete(ctx, "ghost")

		assert.ErrorIs(t, err, errors.ErrDestinationNotFound)
		destRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestDestinationUseCase_SeedDefaults(t *testing.T) {
	ctx := context.Background()

	t.Run("seeds empty list without geocoding", func(t *testing.T) {
		uc, destRepo, geocodeRepo, _ := newDestinationUseCase(t)

		destRepo.On("GetAll", ctx).Return([]*domain.Destination{}, nil)
		destRepo.On("Create", ctx, mock.MatchedBy(func(d *domain.Destination) bool {
			return d.ID != "" && d.Address != "" && d.Lat != 0 && d.Lng != 0
		})).Return(nil).Times(3)

		err := uc.SeedDefaults(ctx)

		assert.NoError(t, err)
		destRepo.AssertExpectations(t)
		geocodeRepo.AssertNotCalled(t, "Geocode", mock.Anything, mock.Anything)
	})

	t.Run("keeps existing list", func(t *testing.T) {
		uc, destRepo, _, _ := newDestinationUseCase(t)

		destRepo.On("GetAll", ctx).Return([]*domain.Destination{{ID: "dest-1"}}, nil)

		err := uc.SeedDefaults(ctx)

		assert.NoError(t, err)
		destRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
