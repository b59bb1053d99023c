package repository

import (
	"context"

	"github.com/commute-heatmap/internal/domain"
)

// RouteMatrixRepository определяет методы для работы с матричным API маршрутов
type RouteMatrixRepository interface {
	// FetchTravelTimes возвращает замеры времени в пути от всех точек сетки
	// до одного назначения для заданного периода
	FetchTravelTimes(
		ctx context.Context,
		origins []domain.GridPoint,
		dest *domain.Destination,
		period string,
	) ([]domain.SampleResult, error)

	// FetchTravelTimesMultiDestination последовательно опрашивает назначения
	// и возвращает выборку по каждому из них
	FetchTravelTimesMultiDestination(
		ctx context.Context,
		origins []domain.GridPoint,
		dests []*domain.Destination,
		period string,
	) ([]domain.DestinationSampleSet, error)
}
