package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commute-heatmap/internal/domain"
)

func newDest(id string, rushTrips, offpeakTrips int) *domain.Destination {
	return &domain.Destination{
		ID:           id,
		Name:         id,
		RushTrips:    rushTrips,
		OffpeakTrips: offpeakTrips,
	}
}

func okSample(origin string, duration float64) domain.SampleResult {
	return domain.SampleResult{
		Origin:       origin,
		Neighborhood: origin,
		Duration:     duration,
		Status:       domain.SampleStatusOK,
	}
}

func failedSample(origin string) domain.SampleResult {
	return domain.SampleResult{
		Origin:       origin,
		Neighborhood: origin,
		Status:       domain.SampleStatusFailed,
	}
}

func newSet(destID string, results ...domain.SampleResult) domain.DestinationSampleSet {
	return domain.DestinationSampleSet{
		DestinationID:   destID,
		DestinationName: destID,
		Results:         results,
	}
}

func viewCfg(period, mode, filter, display string) domain.ViewConfig {
	return domain.ViewConfig{
		TimePeriod:        period,
		ViewMode:          mode,
		DestinationFilter: filter,
		DisplayMode:       display,
	}
}

func TestReduce_Individual(t *testing.T) {
	t.Run("WeightedMeanSingleDestination", func(t *testing.T) {
		dests := []*domain.Destination{newDest("office", 5, 0)}
		snap := &domain.SampleSnapshot{
			Rush: []domain.DestinationSampleSet{newSet("office", okSample("mission", 1200))},
		}

		points := Reduce(snap, dests, viewCfg(domain.PeriodRush, domain.ViewIndividual, "all", domain.DisplayPerTrip))
		require.Len(t, points, 1)
		assert.Equal(t, "mission", points[0].Origin)
		assert.InDelta(t, 1200, points[0].Duration, 1e-9)

		weekly := Reduce(snap, dests, viewCfg(domain.PeriodRush, domain.ViewIndividual, "all", domain.DisplayWeekly))
		require.Len(t, weekly, 1)
		assert.InDelta(t, 6000, weekly[0].Duration, 1e-9)
	})

	t.Run("WeightedMeanTwoDestinations", func(t *testing.T) {
		dests := []*domain.Destination{newDest("office", 4, 0), newDest("gym", 1, 0)}
		snap := &domain.SampleSnapshot{
			Rush: []domain.DestinationSampleSet{
				newSet("office", okSample("mission", 300)),
				newSet("gym", okSample("mission", 1200)),
			},
		}

		points := Reduce(snap, dests, viewCfg(domain.PeriodRush, domain.ViewIndividual, "all", domain.DisplayPerTrip))
		require.Len(t, points, 1)
		// (300*4 + 1200*1) / (4+1)
		assert.InDelta(t, 480, points[0].Duration, 1e-9)

		weekly := Reduce(snap, dests, viewCfg(domain.PeriodRush, domain.ViewIndividual, "all", domain.DisplayWeekly))
		require.Len(t, weekly, 1)
		assert.InDelta(t, 2400, weekly[0].Duration, 1e-9)
	})

	t.Run("ZeroWeightDestinationExcluded", func(t *testing.T) {
		dests := []*domain.Destination{newDest("ghost", 0, 0), newDest("office", 2, 0)}
		snap := &domain.SampleSnapshot{
			Rush: []domain.DestinationSampleSet{
				newSet("ghost", okSample("mission", 600)),
				newSet("office", okSample("mission", 900)),
			},
		}

		points := Reduce(snap, dests, viewCfg(domain.PeriodRush, domain.ViewIndividual, "all", domain.DisplayPerTrip))
		require.Len(t, points, 1)
		assert.InDelta(t, 900, points[0].Duration, 1e-9)
	})

	t.Run("OnlyZeroWeightDestinations", func(t *testing.T) {
		dests := []*domain.Destination{newDest("ghost", 0, 0)}
		snap := &domain.SampleSnapshot{
			Rush: []domain.DestinationSampleSet{newSet("ghost", okSample("mission", 600))},
		}

		assert.NotPanics(t, func() {
			points := Reduce(snap, dests, viewCfg(domain.PeriodRush, domain.ViewIndividual, "all", domain.DisplayPerTrip))
			assert.Empty(t, points)
		})
	})

	t.Run("FailedSamplesOmitted", func(t *testing.T) {
		dests := []*domain.Destination{newDest("office", 3, 0)}
		snap := &domain.SampleSnapshot{
			Rush: []domain.DestinationSampleSet{
				newSet("office", okSample("mission", 600), failedSample("sunset")),
			},
		}

		points := Reduce(snap, dests, viewCfg(domain.PeriodRush, domain.ViewIndividual, "all", domain.DisplayPerTrip))
		require.Len(t, points, 1)
		assert.Equal(t, "mission", points[0].Origin)
	})

	t.Run("StaleDestinationSkipped", func(t *testing.T) {
		dests := []*domain.Destination{newDest("office", 2, 0)}
		snap := &domain.SampleSnapshot{
			Rush: []domain.DestinationSampleSet{
				newSet("removed", okSample("mission", 100)),
				newSet("office", okSample("mission", 800)),
			},
		}

		points := Reduce(snap, dests, viewCfg(domain.PeriodRush, domain.ViewIndividual, "all", domain.DisplayPerTrip))
		require.Len(t, points, 1)
		assert.InDelta(t, 800, points[0].Duration, 1e-9)
	})

	t.Run("SingleDestinationFilter", func(t *testing.T) {
		dests := []*domain.Destination{newDest("office", 4, 0), newDest("gym", 1, 0)}
		snap := &domain.SampleSnapshot{
			Rush: []domain.DestinationSampleSet{
				newSet("office", okSample("mission", 300)),
				newSet("gym", okSample("mission", 1200)),
			},
		}

		points := Reduce(snap, dests, viewCfg(domain.PeriodRush, domain.ViewIndividual, "gym", domain.DisplayPerTrip))
		require.Len(t, points, 1)
		assert.InDelta(t, 1200, points[0].Duration, 1e-9)
	})

	t.Run("SingleDestinationZeroWeight", func(t *testing.T) {
		dests := []*domain.Destination{newDest("gym", 0, 3)}
		snap := &domain.SampleSnapshot{
			Rush: []domain.DestinationSampleSet{newSet("gym", okSample("mission", 600))},
		}

		points := Reduce(snap, dests, viewCfg(domain.PeriodRush, domain.ViewIndividual, "gym", domain.DisplayPerTrip))
		assert.Empty(t, points)
	})

	t.Run("GridOrderPreserved", func(t *testing.T) {
		dests := []*domain.Destination{newDest("office", 1, 0)}
		snap := &domain.SampleSnapshot{
			Rush: []domain.DestinationSampleSet{
				newSet("office",
					okSample("first", 100),
					okSample("second", 200),
					okSample("third", 300),
				),
			},
		}

		points := Reduce(snap, dests, viewCfg(domain.PeriodRush, domain.ViewIndividual, "all", domain.DisplayPerTrip))
		require.Len(t, points, 3)
		assert.Equal(t, "first", points[0].Origin)
		assert.Equal(t, "second", points[1].Origin)
		assert.Equal(t, "third", points[2].Origin)
	})

	t.Run("EmptyInputs", func(t *testing.T) {
		assert.Empty(t, Reduce(nil, nil, viewCfg(domain.PeriodRush, domain.ViewIndividual, "all", domain.DisplayPerTrip)))
		assert.Empty(t, Reduce(&domain.SampleSnapshot{}, nil, viewCfg(domain.PeriodRush, domain.ViewIndividual, "all", domain.DisplayPerTrip)))
	})
}

func TestReduce_Combined(t *testing.T) {
	t.Run("TripWeightedAcrossPeriods", func(t *testing.T) {
		dests := []*domain.Destination{newDest("office", 2, 1)}
		snap := &domain.SampleSnapshot{
			Rush:    []domain.DestinationSampleSet{newSet("office", okSample("mission", 600))},
			Offpeak: []domain.DestinationSampleSet{newSet("office", okSample("mission", 300))},
		}

		points := Reduce(snap, dests, viewCfg(domain.PeriodCombined, domain.ViewIndividual, "all", domain.DisplayPerTrip))
		require.Len(t, points, 1)
		// (600*2 + 300*1) / (2+1)
		assert.InDelta(t, 500, points[0].Duration, 1e-9)

		weekly := Reduce(snap, dests, viewCfg(domain.PeriodCombined, domain.ViewIndividual, "all", domain.DisplayWeekly))
		require.Len(t, weekly, 1)
		assert.InDelta(t, 1500, weekly[0].Duration, 1e-9)
	})

	t.Run("RequiresBothPeriods", func(t *testing.T) {
		dests := []*domain.Destination{newDest("office", 2, 1)}
		snap := &domain.SampleSnapshot{
			Rush: []domain.DestinationSampleSet{newSet("office", okSample("mission", 600))},
		}

		points := Reduce(snap, dests, viewCfg(domain.PeriodCombined, domain.ViewIndividual, "all", domain.DisplayPerTrip))
		assert.Empty(t, points)
	})

	t.Run("ZeroWeightPeriodExcluded", func(t *testing.T) {
		dests := []*domain.Destination{newDest("office", 0, 2)}
		snap := &domain.SampleSnapshot{
			Rush:    []domain.DestinationSampleSet{newSet("office", okSample("mission", 600))},
			Offpeak: []domain.DestinationSampleSet{newSet("office", okSample("mission", 300))},
		}

		points := Reduce(snap, dests, viewCfg(domain.PeriodCombined, domain.ViewIndividual, "all", domain.DisplayPerTrip))
		require.Len(t, points, 1)
		assert.InDelta(t, 300, points[0].Duration, 1e-9)

		weekly := Reduce(snap, dests, viewCfg(domain.PeriodCombined, domain.ViewIndividual, "all", domain.DisplayWeekly))
		require.Len(t, weekly, 1)
		assert.InDelta(t, 600, weekly[0].Duration, 1e-9)
	})
}

func TestReduce_Comparison(t *testing.T) {
	t.Run("AllDestinationsDelay", func(t *testing.T) {
		dests := []*domain.Destination{newDest("office", 3, 1), newDest("gym", 1, 1)}
		snap := &domain.SampleSnapshot{
			Rush: []domain.DestinationSampleSet{
				newSet("office", okSample("mission", 900)),
				newSet("gym", okSample("mission", 700)),
			},
			Offpeak: []domain.DestinationSampleSet{
				newSet("office", okSample("mission", 500)),
				newSet("gym", okSample("mission", 500)),
			},
		}

		points := Reduce(snap, dests, viewCfg(domain.PeriodRush, domain.ViewComparison, "all", domain.DisplayPerTrip))
		require.Len(t, points, 1)
		// avgRush (900+700)/2 minus avgOffpeak (500+500)/2
		assert.InDelta(t, 300, points[0].Duration, 1e-9)

		weekly := Reduce(snap, dests, viewCfg(domain.PeriodRush, domain.ViewComparison, "all", domain.DisplayWeekly))
		require.Len(t, weekly, 1)
		// Delay is realized once per rush trip: 300 * (3+1)
		assert.InDelta(t, 1200, weekly[0].Duration, 1e-9)
	})

	t.Run("NonPositiveDelayDropped", func(t *testing.T) {
		dests := []*domain.Destination{newDest("office", 2, 2)}
		snap := &domain.SampleSnapshot{
			Rush: []domain.DestinationSampleSet{
				newSet("office", okSample("flat", 400), okSample("congested", 500)),
			},
			Offpeak: []domain.DestinationSampleSet{
				newSet("office", okSample("flat", 400), okSample("congested", 400)),
			},
		}

		points := Reduce(snap, dests, viewCfg(domain.PeriodRush, domain.ViewComparison, "all", domain.DisplayPerTrip))
		require.Len(t, points, 1)
		assert.Equal(t, "congested", points[0].Origin)
		assert.InDelta(t, 100, points[0].Duration, 1e-9)
	})

	t.Run("ZeroWeightIncludedInAverage", func(t *testing.T) {
		// Comparison averages are simple means: a destination with zero
		// trips still participates, unlike the individual view
		dests := []*domain.Destination{newDest("office", 2, 0), newDest("cafe", 0, 0)}
		snap := &domain.SampleSnapshot{
			Rush: []domain.DestinationSampleSet{
				newSet("office", okSample("mission", 1000)),
				newSet("cafe", okSample("mission", 500)),
			},
			Offpeak: []domain.DestinationSampleSet{
				newSet("office", okSample("mission", 400)),
				newSet("cafe", okSample("mission", 400)),
			},
		}

		points := Reduce(snap, dests, viewCfg(domain.PeriodRush, domain.ViewComparison, "all", domain.DisplayPerTrip))
		require.Len(t, points, 1)
		// avgRush (1000+500)/2 minus avgOffpeak 400
		assert.InDelta(t, 350, points[0].Duration, 1e-9)

		weekly := Reduce(snap, dests, viewCfg(domain.PeriodRush, domain.ViewComparison, "all", domain.DisplayWeekly))
		require.Len(t, weekly, 1)
		assert.InDelta(t, 700, weekly[0].Duration, 1e-9)
	})

	t.Run("SingleDestinationDelay", func(t *testing.T) {
		dests := []*domain.Destination{newDest("office", 2, 1), newDest("gym", 1, 1)}
		snap := &domain.SampleSnapshot{
			Rush: []domain.DestinationSampleSet{
				newSet("office", okSample("mission", 900), okSample("sunset", 600)),
				newSet("gym", okSample("mission", 2000)),
			},
			Offpeak: []domain.DestinationSampleSet{
				newSet("office", okSample("mission", 500), failedSample("sunset")),
				newSet("gym", okSample("mission", 300)),
			},
		}

		points := Reduce(snap, dests, viewCfg(domain.PeriodRush, domain.ViewComparison, "office", domain.DisplayPerTrip))
		require.Len(t, points, 1)
		assert.Equal(t, "mission", points[0].Origin)
		assert.InDelta(t, 400, points[0].Duration, 1e-9)

		weekly := Reduce(snap, dests, viewCfg(domain.PeriodRush, domain.ViewComparison, "office", domain.DisplayWeekly))
		require.Len(t, weekly, 1)
		assert.InDelta(t, 800, weekly[0].Duration, 1e-9)
	})

	t.Run("SingleDestinationZeroRushTrips", func(t *testing.T) {
		dests := []*domain.Destination{newDest("cafe", 0, 5)}
		snap := &domain.SampleSnapshot{
			Rush:    []domain.DestinationSampleSet{newSet("cafe", okSample("mission", 900))},
			Offpeak: []domain.DestinationSampleSet{newSet("cafe", okSample("mission", 500))},
		}

		points := Reduce(snap, dests, viewCfg(domain.PeriodRush, domain.ViewComparison, "cafe", domain.DisplayPerTrip))
		assert.Empty(t, points)
	})

	t.Run("RequiresBothPeriods", func(t *testing.T) {
		dests := []*domain.Destination{newDest("office", 2, 1)}
		snap := &domain.SampleSnapshot{
			Rush: []domain.DestinationSampleSet{newSet("office", okSample("mission", 900))},
		}

		all := Reduce(snap, dests, viewCfg(domain.PeriodRush, domain.ViewComparison, "all", domain.DisplayPerTrip))
		assert.Empty(t, all)

		single := Reduce(snap, dests, viewCfg(domain.PeriodRush, domain.ViewComparison, "office", domain.DisplayPerTrip))
		assert.Empty(t, single)
	})
}

func TestStats(t *testing.T) {
	points := []domain.ReducedPoint{
		{Origin: "a", Duration: 600},
		{Origin: "b", Duration: 300},
		{Origin: "c", Duration: 900},
	}

	min, max, mean := Stats(points)
	assert.InDelta(t, 300, min, 1e-9)
	assert.InDelta(t, 900, max, 1e-9)
	assert.InDelta(t, 600, mean, 1e-9)

	min, max, mean = Stats(nil)
	assert.Zero(t, min)
	assert.Zero(t, max)
	assert.Zero(t, mean)
}
