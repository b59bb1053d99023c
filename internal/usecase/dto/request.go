package dto

// CreateDestinationRequest - запрос на создание точки назначения
type CreateDestinationRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=120"`
	Address      string `json:"address" validate:"required,min=3,max=300"`
	RushTrips    int    `json:"rush_trips" validate:"min=0,max=1000"`
	OffpeakTrips int    `json:"offpeak_trips" validate:"min=0,max=1000"`
}

// UpdateDestinationRequest - частичное обновление точки назначения.
// Смена адреса запускает повторное геокодирование, правка числа поездок - нет.
type UpdateDestinationRequest struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,min=1,max=120"`
	Address      *string `json:"address,omitempty" validate:"omitempty,min=3,max=300"`
	RushTrips    *int    `json:"rush_trips,omitempty" validate:"omitempty,min=0,max=1000"`
	OffpeakTrips *int    `json:"offpeak_trips,omitempty" validate:"omitempty,min=0,max=1000"`
}

// FetchRequest - запрос на загрузку матрицы времени в пути
type FetchRequest struct {
	Period string `json:"period" validate:"required,oneof=rush offpeak all"`
}

// HeatmapQuery - конфигурация вида тепловой карты.
// Destination - либо "all", либо id конкретной точки назначения.
type HeatmapQuery struct {
	TimePeriod  string `json:"period"`
	ViewMode    string `json:"view"`
	Destination string `json:"destination"`
	DisplayMode string `json:"display"`
}
