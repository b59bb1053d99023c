package memory

import (
	"context"

	"github.com/commute-heatmap/internal/domain"
	"github.com/commute-heatmap/internal/domain/repository"
)

// sfGrid - фиксированная сетка выборки: по одной точке на район Сан-Франциско.
// Адреса передаются провайдеру как текстовые waypoints, порядок стабилен.
var sfGrid = []domain.GridPoint{
	{Address: "100 Larkin St, San Francisco, CA", DisplayName: "Civic Center"},
	{Address: "555 California St, San Francisco, CA", DisplayName: "Financial District"},
	{Address: "4 Embarcadero Center, San Francisco, CA", DisplayName: "Embarcadero"},
	{Address: "333 Post St, San Francisco, CA", DisplayName: "Union Square"},
	{Address: "888 Brannan St, San Francisco, CA", DisplayName: "SoMa"},
	{Address: "160 King St, San Francisco, CA", DisplayName: "South Beach"},
	{Address: "500 Terry A Francois Blvd, San Francisco, CA", DisplayName: "Mission Bay"},
	{Address: "201 Turk St, San Francisco, CA", DisplayName: "Tenderloin"},
	{Address: "905 California St, San Francisco, CA", DisplayName: "Nob Hill"},
	{Address: "2100 Hyde St, San Francisco, CA", DisplayName: "Russian Hill"},
	{Address: "666 Filbert St, San Francisco, CA", DisplayName: "North Beach"},
	{Address: "965 Clay St, San Francisco, CA", DisplayName: "Chinatown"},
	{Address: "1 Telegraph Hill Blvd, San Francisco, CA", DisplayName: "Telegraph Hill"},
	{Address: "3601 Lyon St, San Francisco, CA", DisplayName: "Marina"},
	{Address: "2040 Union St, San Francisco, CA", DisplayName: "Cow Hollow"},
	{Address: "2080 Washington St, San Francisco, CA", DisplayName: "Pacific Heights"},
	{Address: "50 Moraga Ave, San Francisco, CA", DisplayName: "Presidio"},
	{Address: "1737 Post St, San Francisco, CA", DisplayName: "Japantown"},
	{Address: "1300 Fillmore St, San Francisco, CA", DisplayName: "Fillmore"},
	{Address: "300 Hayes St, San Francisco, CA", DisplayName: "Hayes Valley"},
	{Address: "710 Steiner St, San Francisco, CA", DisplayName: "Alamo Square"},
	{Address: "1300 Fulton St, San Francisco, CA", DisplayName: "NoPa"},
	{Address: "1500 Haight St, San Francisco, CA", DisplayName: "Haight-Ashbury"},
	{Address: "429 Castro St, San Francisco, CA", DisplayName: "Castro"},
	{Address: "2868 Mission St, San Francisco, CA", DisplayName: "Mission"},
	{Address: "3961 24th St, San Francisco, CA", DisplayName: "Noe Valley"},
	{Address: "447 Cortland Ave, San Francisco, CA", DisplayName: "Bernal Heights"},
	{Address: "2898 Diamond St, San Francisco, CA", DisplayName: "Glen Park"},
	{Address: "5290 Diamond Heights Blvd, San Francisco, CA", DisplayName: "Diamond Heights"},
	{Address: "501 Twin Peaks Blvd, San Francisco, CA", DisplayName: "Twin Peaks"},
	{Address: "1301 18th St, San Francisco, CA", DisplayName: "Potrero Hill"},
	{Address: "1275 Minnesota St, San Francisco, CA", DisplayName: "Dogpatch"},
	{Address: "4705 3rd St, San Francisco, CA", DisplayName: "Bayview"},
	{Address: "201 Leland Ave, San Francisco, CA", DisplayName: "Visitacion Valley"},
	{Address: "4400 Mission St, San Francisco, CA", DisplayName: "Excelsior"},
	{Address: "2450 San Bruno Ave, San Francisco, CA", DisplayName: "Portola"},
	{Address: "1600 Geneva Ave, San Francisco, CA", DisplayName: "Crocker-Amazon"},
	{Address: "1298 Ocean Ave, San Francisco, CA", DisplayName: "Ingleside"},
	{Address: "345 Randolph St, San Francisco, CA", DisplayName: "Oceanview"},
	{Address: "1600 Holloway Ave, San Francisco, CA", DisplayName: "Lakeshore"},
	{Address: "1200 Taraval St, San Francisco, CA", DisplayName: "Parkside"},
	{Address: "4500 Judah St, San Francisco, CA", DisplayName: "Outer Sunset"},
	{Address: "1300 9th Ave, San Francisco, CA", DisplayName: "Inner Sunset"},
	{Address: "381 Magellan Ave, San Francisco, CA", DisplayName: "Forest Hill"},
	{Address: "190 Lenox Way, San Francisco, CA", DisplayName: "West Portal"},
	{Address: "351 9th Ave, San Francisco, CA", DisplayName: "Inner Richmond"},
	{Address: "6001 Geary Blvd, San Francisco, CA", DisplayName: "Outer Richmond"},
	{Address: "100 34th Ave, San Francisco, CA", DisplayName: "Seacliff"},
}

type gridRepository struct {
	points []domain.GridPoint
}

// NewGridRepository создает репозиторий сетки с точками по умолчанию
func NewGridRepository() repository.GridRepository {
	return &gridRepository{points: sfGrid}
}

// GetAll возвращает копию сетки в фиксированном порядке
func (r *gridRepository) GetAll(ctx context.Context) ([]domain.GridPoint, error) {
	out := make([]domain.GridPoint, len(r.points))
	copy(out, r.points)
	return out, nil
}
