package dto

import (
	"time"

	"github.com/commute-heatmap/internal/domain"
)

// GridResponse - ответ со списком точек сетки отправления
type GridResponse struct {
	Points []domain.GridPoint `json:"points"`
	Total  int                `json:"total"`
}

// DestinationResponse - точка назначения в ответе API
type DestinationResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Address      string  `json:"address"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
	RushTrips    int     `json:"rush_trips"`
	OffpeakTrips int     `json:"offpeak_trips"`
}

// DestinationListResponse - ответ со списком точек назначения
type DestinationListResponse struct {
	Destinations []DestinationResponse `json:"destinations"`
	Total        int                   `json:"total"`
}

// ConvertDestination - преобразование доменной модели в DTO
func ConvertDestination(d *domain.Destination) DestinationResponse {
	return DestinationResponse{
		ID:           d.ID,
		Name:         d.Name,
		Address:      d.Address,
		Lat:          d.Lat,
		Lng:          d.Lng,
		RushTrips:    d.RushTrips,
		OffpeakTrips: d.OffpeakTrips,
	}
}

// PeriodFetchResult - итог загрузки одного временного периода
type PeriodFetchResult struct {
	Period       string    `json:"period"`
	FetchedAt    time.Time `json:"fetched_at"`
	Destinations int       `json:"destinations"`
	Samples      int       `json:"samples"`
	OKSamples    int       `json:"ok_samples"`
}

// FetchResponse - итог выполненной загрузки
type FetchResponse struct {
	Periods []PeriodFetchResult `json:"periods"`
}

// FetchStatusResponse - состояние загрузчика данных
type FetchStatusResponse struct {
	Busy    bool                `json:"busy"`
	Periods []PeriodFetchResult `json:"periods"`
}

// HeatmapMarker - одна точка тепловой карты.
// Duration в секундах, Minutes - округление для подписи маркера.
type HeatmapMarker struct {
	Origin       string  `json:"origin"`
	Neighborhood string  `json:"neighborhood"`
	Duration     float64 `json:"duration"`
	Minutes      int     `json:"minutes"`
	Color        string  `json:"color"`
	Intensity    float64 `json:"intensity"`
}

// HeatmapLegend - сводная статистика активной выборки для легенды
type HeatmapLegend struct {
	MinDuration  float64 `json:"min_duration"`
	MaxDuration  float64 `json:"max_duration"`
	MeanDuration float64 `json:"mean_duration"`
	MinMinutes   int     `json:"min_minutes"`
	MaxMinutes   int     `json:"max_minutes"`
	MeanMinutes  int     `json:"mean_minutes"`
}

// HeatmapView - применённая конфигурация вида (после подстановки умолчаний)
type HeatmapView struct {
	TimePeriod  string `json:"period"`
	ViewMode    string `json:"view"`
	Destination string `json:"destination"`
	DisplayMode string `json:"display"`
}

// HeatmapResponse - тепловая карта для текущей конфигурации вида.
// Legend отсутствует, когда выборка пуста.
type HeatmapResponse struct {
	Markers []HeatmapMarker `json:"markers"`
	Total   int             `json:"total"`
	Legend  *HeatmapLegend  `json:"legend,omitempty"`
	View    HeatmapView     `json:"view"`
}
