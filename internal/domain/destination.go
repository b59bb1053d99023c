package domain

// Destination - пункт назначения пользователя с недельной частотой поездок.
// Координаты заполняются геокодером при создании или смене адреса.
type Destination struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Address      string  `json:"address"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
	RushTrips    int     `json:"rush_trips"`
	OffpeakTrips int     `json:"offpeak_trips"`
}

// TripsFor возвращает недельное число поездок для периода
func (d *Destination) TripsFor(period string) int {
	switch period {
	case PeriodRush:
		return d.RushTrips
	case PeriodOffpeak:
		return d.OffpeakTrips
	default:
		return 0
	}
}

// TotalTrips возвращает суммарное недельное число поездок
func (d *Destination) TotalTrips() int {
	return d.RushTrips + d.OffpeakTrips
}

// HasTrips проверяет, участвует ли назначение хотя бы в одном периоде
func (d *Destination) HasTrips() bool {
	return d.RushTrips > 0 || d.OffpeakTrips > 0
}
