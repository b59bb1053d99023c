package domain

// Time periods
const (
	PeriodRush     = "rush"
	PeriodOffpeak  = "offpeak"
	PeriodCombined = "combined"
)

// View modes
const (
	ViewIndividual = "individual"
	ViewComparison = "comparison"
)

// Display modes
const (
	DisplayPerTrip = "per-trip"
	DisplayWeekly  = "weekly"
)

// DestinationFilterAll - значение фильтра "все назначения"
const DestinationFilterAll = "all"

// ValidPeriods возвращает список допустимых периодов просмотра
func ValidPeriods() []string {
	return []string{PeriodRush, PeriodOffpeak, PeriodCombined}
}

// IsValidPeriod проверяет период просмотра
func IsValidPeriod(period string) bool {
	switch period {
	case PeriodRush, PeriodOffpeak, PeriodCombined:
		return true
	default:
		return false
	}
}

// IsFetchablePeriod проверяет, что период можно запросить у провайдера.
// Combined вычисляется из двух хранимых периодов и сам не загружается.
func IsFetchablePeriod(period string) bool {
	return period == PeriodRush || period == PeriodOffpeak
}

// IsValidViewMode проверяет режим представления
func IsValidViewMode(mode string) bool {
	return mode == ViewIndividual || mode == ViewComparison
}

// IsValidDisplayMode проверяет режим отображения
func IsValidDisplayMode(mode string) bool {
	return mode == DisplayPerTrip || mode == DisplayWeekly
}

// ViewConfig - конфигурация представления тепловой карты
type ViewConfig struct {
	TimePeriod        string `json:"time_period"`
	ViewMode          string `json:"view_mode"`
	DestinationFilter string `json:"destination_filter"`
	DisplayMode       string `json:"display_mode"`
}

// AllDestinations проверяет, что фильтр охватывает все назначения
func (v *ViewConfig) AllDestinations() bool {
	return v.DestinationFilter == "" || v.DestinationFilter == DestinationFilterAll
}

// ReducedPoint - агрегированное значение одной точки сетки
type ReducedPoint struct {
	Origin       string  `json:"origin"`
	Neighborhood string  `json:"neighborhood"`
	Duration     float64 `json:"duration"` // seconds
}
