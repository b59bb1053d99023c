// Package aggregate содержит чистое ядро системы: свертку сырых выборок
// в точки тепловой карты и отображение длительностей в цвет. Никакого I/O,
// никакого состояния - функции пересчитываются на каждую смену представления.
package aggregate

import (
	"github.com/commute-heatmap/internal/domain"
)

// Reduce сворачивает сырые выборки в одно значение на точку сетки
// согласно конфигурации представления. Отсутствующие данные, FAILED-замеры,
// нулевые веса и устаревшие ID назначений приводят к пропуску, не к ошибке.
func Reduce(snap *domain.SampleSnapshot, dests []*domain.Destination, cfg domain.ViewConfig) []domain.ReducedPoint {
	if snap == nil {
		return nil
	}

	index := destinationIndex(dests)
	if cfg.ViewMode == domain.ViewComparison {
		return reduceComparison(snap, index, cfg)
	}
	return reduceIndividual(snap, index, cfg)
}

// originAcc накапливает взвешенную сумму длительностей одной точки сетки
type originAcc struct {
	neighborhood string
	sum          float64
	weight       float64
}

// reduceIndividual считает средневзвешенное по поездкам время в пути.
// Вес замера - недельное число поездок назначения в период замера.
func reduceIndividual(snap *domain.SampleSnapshot, index map[string]*domain.Destination, cfg domain.ViewConfig) []domain.ReducedPoint {
	periods := activePeriods(snap, cfg.TimePeriod)
	if len(periods) == 0 {
		return nil
	}

	acc := make(map[string]*originAcc)
	var order []string

	// weeklyTrips - суммарный недельный вес активной выборки,
	// общий для всех точек сетки
	weeklyTrips := 0
	counted := make(map[string]bool)

	for _, period := range periods {
		for _, set := range snap.Sets(period) {
			dest, ok := index[set.DestinationID]
			if !ok {
				// Stale entry, destination removed after fetch
				continue
			}
			if !cfg.AllDestinations() && set.DestinationID != cfg.DestinationFilter {
				continue
			}

			weight := dest.TripsFor(period)
			if weight == 0 {
				// Zero weight is excluded entirely, never added as 0/0
				continue
			}

			key := period + "|" + dest.ID
			if !counted[key] {
				counted[key] = true
				weeklyTrips += weight
			}

			for _, res := range set.Results {
				if !res.IsOK() {
					continue
				}
				a := acc[res.Origin]
				if a == nil {
					a = &originAcc{neighborhood: res.Neighborhood}
					acc[res.Origin] = a
					order = append(order, res.Origin)
				}
				a.sum += res.Duration * float64(weight)
				a.weight += float64(weight)
			}
		}
	}

	out := make([]domain.ReducedPoint, 0, len(order))
	for _, origin := range order {
		a := acc[origin]
		duration := a.sum / a.weight
		if cfg.DisplayMode == domain.DisplayWeekly {
			duration *= float64(weeklyTrips)
		}
		out = append(out, domain.ReducedPoint{
			Origin:       origin,
			Neighborhood: a.neighborhood,
			Duration:     duration,
		})
	}
	return out
}

// reduceComparison считает задержку трафика: превышение часа пик над
// свободной дорогой для одной и той же точки сетки. Неположительные
// задержки отбрасываются.
func reduceComparison(snap *domain.SampleSnapshot, index map[string]*domain.Destination, cfg domain.ViewConfig) []domain.ReducedPoint {
	if cfg.AllDestinations() {
		return reduceComparisonAll(snap, index, cfg)
	}
	return reduceComparisonSingle(snap, index, cfg)
}

// meanAcc накапливает простое среднее длительностей одной точки сетки
type meanAcc struct {
	neighborhood string
	sum          float64
	n            int
}

func (a *meanAcc) mean() float64 {
	return a.sum / float64(a.n)
}

// reduceComparisonAll усредняет периоды независимо: простое среднее по
// назначениям с OK-замером в точке, без взвешивания по поездкам.
func reduceComparisonAll(snap *domain.SampleSnapshot, index map[string]*domain.Destination, cfg domain.ViewConfig) []domain.ReducedPoint {
	rush := make(map[string]*meanAcc)
	offpeak := make(map[string]*meanAcc)
	var order []string

	// Задержка реализуется по разу на каждую поездку в час пик
	weeklyTrips := 0
	counted := make(map[string]bool)

	for _, set := range snap.Rush {
		dest, ok := index[set.DestinationID]
		if !ok {
			continue
		}
		if !counted[dest.ID] {
			counted[dest.ID] = true
			weeklyTrips += dest.RushTrips
		}
		for _, res := range set.Results {
			if !res.IsOK() {
				continue
			}
			a := rush[res.Origin]
			if a == nil {
				a = &meanAcc{neighborhood: res.Neighborhood}
				rush[res.Origin] = a
				order = append(order, res.Origin)
			}
			a.sum += res.Duration
			a.n++
		}
	}

	for _, set := range snap.Offpeak {
		if _, ok := index[set.DestinationID]; !ok {
			continue
		}
		for _, res := range set.Results {
			if !res.IsOK() {
				continue
			}
			a := offpeak[res.Origin]
			if a == nil {
				a = &meanAcc{neighborhood: res.Neighborhood}
				offpeak[res.Origin] = a
			}
			a.sum += res.Duration
			a.n++
		}
	}

	out := make([]domain.ReducedPoint, 0, len(order))
	for _, origin := range order {
		off, ok := offpeak[origin]
		if !ok {
			continue
		}
		delay := rush[origin].mean() - off.mean()
		if delay <= 0 {
			continue
		}
		if cfg.DisplayMode == domain.DisplayWeekly {
			delay *= float64(weeklyTrips)
		}
		out = append(out, domain.ReducedPoint{
			Origin:       origin,
			Neighborhood: rush[origin].neighborhood,
			Duration:     delay,
		})
	}
	return out
}

// reduceComparisonSingle считает задержку одного назначения: точка сетки
// должна иметь OK-замер в обоих периодах
func reduceComparisonSingle(snap *domain.SampleSnapshot, index map[string]*domain.Destination, cfg domain.ViewConfig) []domain.ReducedPoint {
	dest, ok := index[cfg.DestinationFilter]
	if !ok {
		return nil
	}
	if dest.RushTrips == 0 {
		// Destination never travels at rush hour, no delay to report
		return nil
	}

	rushSet := findSet(snap.Rush, dest.ID)
	offSet := findSet(snap.Offpeak, dest.ID)
	if rushSet == nil || offSet == nil {
		return nil
	}

	offByOrigin := make(map[string]domain.SampleResult, len(offSet.Results))
	for _, res := range offSet.Results {
		if res.IsOK() {
			offByOrigin[res.Origin] = res
		}
	}

	out := make([]domain.ReducedPoint, 0, len(rushSet.Results))
	for _, res := range rushSet.Results {
		if !res.IsOK() {
			continue
		}
		off, ok := offByOrigin[res.Origin]
		if !ok {
			continue
		}
		delay := res.Duration - off.Duration
		if delay <= 0 {
			continue
		}
		if cfg.DisplayMode == domain.DisplayWeekly {
			delay *= float64(dest.RushTrips)
		}
		out = append(out, domain.ReducedPoint{
			Origin:       res.Origin,
			Neighborhood: res.Neighborhood,
			Duration:     delay,
		})
	}
	return out
}

// activePeriods возвращает периоды, участвующие в свертке.
// Combined требует непустых выборок обоих периодов.
func activePeriods(snap *domain.SampleSnapshot, period string) []string {
	switch period {
	case domain.PeriodRush, domain.PeriodOffpeak:
		return []string{period}
	case domain.PeriodCombined:
		if !snap.HasBoth() {
			return nil
		}
		return []string{domain.PeriodRush, domain.PeriodOffpeak}
	default:
		return nil
	}
}

// destinationIndex строит соединение по ID для O(1)-разрешения выборок
func destinationIndex(dests []*domain.Destination) map[string]*domain.Destination {
	index := make(map[string]*domain.Destination, len(dests))
	for _, d := range dests {
		if d != nil {
			index[d.ID] = d
		}
	}
	return index
}

func findSet(sets []domain.DestinationSampleSet, destID string) *domain.DestinationSampleSet {
	for i := range sets {
		if sets[i].DestinationID == destID {
			return &sets[i]
		}
	}
	return nil
}

// Stats возвращает минимум, максимум и среднее длительностей выборки
func Stats(points []domain.ReducedPoint) (min, max, mean float64) {
	if len(points) == 0 {
		return 0, 0, 0
	}

	min = points[0].Duration
	max = points[0].Duration
	var sum float64
	for _, p := range points {
		if p.Duration < min {
			min = p.Duration
		}
		if p.Duration > max {
			max = p.Duration
		}
		sum += p.Duration
	}
	return min, max, sum / float64(len(points))
}
