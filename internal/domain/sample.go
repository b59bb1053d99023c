package domain

import "time"

// Sample statuses
const (
	SampleStatusOK     = "OK"
	SampleStatusFailed = "FAILED"
)

// SampleResult - результат одного замера времени в пути
// от точки сетки до назначения в заданный период
type SampleResult struct {
	Origin       string  `json:"origin"`
	Neighborhood string  `json:"neighborhood"`
	Duration     float64 `json:"duration"` // seconds
	Distance     float64 `json:"distance"` // meters
	Status       string  `json:"status"`
}

// IsOK проверяет, что замер успешен и пригоден для агрегации
func (s *SampleResult) IsOK() bool {
	return s.Status == SampleStatusOK
}

// DestinationSampleSet - полная выборка по сетке для одного назначения
type DestinationSampleSet struct {
	DestinationID      string         `json:"destination_id"`
	DestinationName    string         `json:"destination_name"`
	DestinationAddress string         `json:"destination_address"`
	Results            []SampleResult `json:"results"`
}

// SampleSnapshot - сырые выборки обоих периодов на момент чтения
type SampleSnapshot struct {
	Rush    []DestinationSampleSet `json:"rush"`
	Offpeak []DestinationSampleSet `json:"offpeak"`
}

// Sets возвращает выборки запрошенного периода
func (s *SampleSnapshot) Sets(period string) []DestinationSampleSet {
	switch period {
	case PeriodRush:
		return s.Rush
	case PeriodOffpeak:
		return s.Offpeak
	default:
		return nil
	}
}

// HasBoth проверяет, что загружены оба периода
func (s *SampleSnapshot) HasBoth() bool {
	return len(s.Rush) > 0 && len(s.Offpeak) > 0
}

// FetchMeta - метаданные последней загрузки периода
type FetchMeta struct {
	FetchedAt    time.Time `json:"fetched_at"`
	Destinations int       `json:"destinations"`
	Samples      int       `json:"samples"`
	OKSamples    int       `json:"ok_samples"`
}
