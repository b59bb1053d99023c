package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/commute-heatmap/internal/config"
	"github.com/commute-heatmap/internal/domain"
	"github.com/commute-heatmap/internal/domain/repository"
)

// computeRouteMatrixPath - метод Routes API для матрицы один-ко-многим
const computeRouteMatrixPath = "/distanceMatrix/v2:computeRouteMatrix"

// fieldMask ограничивает ответ полями, которые использует агрегация
const fieldMask = "originIndex,destinationIndex,status,condition,distanceMeters,duration"

type client struct {
	httpClient       *http.Client
	baseURL          string
	apiKey           string
	batchSize        int
	batchDelay       time.Duration
	destinationDelay time.Duration
	rushHour         int
	offpeakHour      int
	now              func() time.Time
	logger           *zap.Logger
}

// NewRoutesClient создает новый клиент матричного API маршрутов
func NewRoutesClient(cfg *config.RoutesConfig, logger *zap.Logger) repository.RouteMatrixRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL:          cfg.BaseURL,
		apiKey:           cfg.APIKey,
		batchSize:        cfg.BatchSize,
		batchDelay:       cfg.BatchDelay,
		destinationDelay: cfg.DestinationDelay,
		rushHour:         cfg.RushHour,
		offpeakHour:      cfg.OffpeakHour,
		now:              time.Now,
		logger:           logger,
	}
}

type latLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type location struct {
	LatLng latLng `json:"latLng"`
}

type waypoint struct {
	Address  string    `json:"address,omitempty"`
	Location *location `json:"location,omitempty"`
}

type matrixEndpoint struct {
	Waypoint waypoint `json:"waypoint"`
}

type matrixRequest struct {
	Origins           []matrixEndpoint `json:"origins"`
	Destinations      []matrixEndpoint `json:"destinations"`
	TravelMode        string           `json:"travelMode"`
	RoutingPreference string           `json:"routingPreference"`
	DepartureTime     string           `json:"departureTime"`
}

type matrixElement struct {
	OriginIndex      int                    `json:"originIndex"`
	DestinationIndex int                    `json:"destinationIndex"`
	Status           map[string]interface{} `json:"status"`
	Condition        string                 `json:"condition"`
	DistanceMeters   float64                `json:"distanceMeters"`
	Duration         string                 `json:"duration"`
}

// FetchTravelTimes возвращает замеры времени в пути от всех точек сетки
// до одного назначения. Сетка режется на батчи; провал первого батча
// валит вызов целиком, провалы последующих только логируются.
func (c *client) FetchTravelTimes(
	ctx context.Context,
	origins []domain.GridPoint,
	dest *domain.Destination,
	period string,
) ([]domain.SampleResult, error) {
	if len(origins) == 0 {
		return nil, fmt.Errorf("origins cannot be empty")
	}
	if !domain.IsFetchablePeriod(period) {
		return nil, fmt.Errorf("time period %q cannot be fetched", period)
	}

	departure := c.departureTime(period)
	results := make([]domain.SampleResult, 0, len(origins))

	for start := 0; start < len(origins); start += c.batchSize {
		end := start + c.batchSize
		if end > len(origins) {
			end = len(origins)
		}
		batch := origins[start:end]

		if start > 0 {
			if err := sleepCtx(ctx, c.batchDelay); err != nil {
				return nil, fmt.Errorf("batch delay interrupted: %w", err)
			}
		}

		batchResults, err := c.fetchBatch(ctx, batch, dest, departure)
		if err != nil {
			if start == 0 {
				// First batch failing means the provider is down for
				// this sweep, abort instead of storing a near-empty set
				return nil, err
			}
			c.logger.Warn("Skipping failed batch",
				zap.Int("batch_start", start),
				zap.String("destination", dest.Name),
				zap.Error(err))
			continue
		}
		results = append(results, batchResults...)
	}

	return results, nil
}

// FetchTravelTimesMultiDestination последовательно опрашивает назначения
// с паузой между ними. Провал первого назначения валит всю загрузку,
// последующие провалы пропускаются.
func (c *client) FetchTravelTimesMultiDestination(
	ctx context.Context,
	origins []domain.GridPoint,
	dests []*domain.Destination,
	period string,
) ([]domain.DestinationSampleSet, error) {
	sets := make([]domain.DestinationSampleSet, 0, len(dests))

	for i, dest := range dests {
		if i > 0 {
			if err := sleepCtx(ctx, c.destinationDelay); err != nil {
				return nil, fmt.Errorf("destination delay interrupted: %w", err)
			}
		}

		results, err := c.FetchTravelTimes(ctx, origins, dest, period)
		if err != nil {
			if i == 0 {
				return nil, err
			}
			c.logger.Warn("Skipping destination after provider failure",
				zap.String("destination", dest.Name),
				zap.Error(err))
			continue
		}

		sets = append(sets, domain.DestinationSampleSet{
			DestinationID:      dest.ID,
			DestinationName:    dest.Name,
			DestinationAddress: dest.Address,
			Results:            results,
		})
	}

	return sets, nil
}

func (c *client) fetchBatch(
	ctx context.Context,
	batch []domain.GridPoint,
	dest *domain.Destination,
	departure string,
) ([]domain.SampleResult, error) {
	reqBody := matrixRequest{
		Origins:      make([]matrixEndpoint, 0, len(batch)),
		Destinations: []matrixEndpoint{{Waypoint: waypoint{Location: &location{LatLng: latLng{Latitude: dest.Lat, Longitude: dest.Lng}}}}},
		// Traffic-aware driving is the whole point of the sampling
		TravelMode:        "DRIVE",
		RoutingPreference: "TRAFFIC_AWARE",
		DepartureTime:     departure,
	}
	for _, p := range batch {
		reqBody.Origins = append(reqBody.Origins, matrixEndpoint{Waypoint: waypoint{Address: p.Address}})
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := c.baseURL + computeRouteMatrixPath

	c.logger.Debug("Calling route matrix API",
		zap.Int("origins_count", len(batch)),
		zap.String("destination", dest.Name),
		zap.String("departure_time", departure))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", c.apiKey)
	req.Header.Set("X-Goog-FieldMask", fieldMask)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Route matrix API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("route matrix API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var elements []matrixElement
	if err := json.NewDecoder(resp.Body).Decode(&elements); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	// Элементы приходят в порядке готовности, восстанавливаем порядок сетки
	byIndex := make([]*domain.SampleResult, len(batch))
	for _, el := range elements {
		if el.OriginIndex < 0 || el.OriginIndex >= len(batch) {
			continue
		}
		origin := batch[el.OriginIndex]
		res := domain.SampleResult{
			Origin:       origin.Address,
			Neighborhood: origin.DisplayName,
		}

		// Empty status object means success
		if len(el.Status) > 0 {
			res.Status = domain.SampleStatusFailed
			byIndex[el.OriginIndex] = &res
			continue
		}

		duration, err := parseDurationSeconds(el.Duration)
		if err != nil {
			res.Status = domain.SampleStatusFailed
			byIndex[el.OriginIndex] = &res
			continue
		}

		res.Duration = duration
		res.Distance = el.DistanceMeters
		res.Status = domain.SampleStatusOK
		byIndex[el.OriginIndex] = &res
	}

	results := make([]domain.SampleResult, 0, len(batch))
	for _, res := range byIndex {
		if res != nil {
			results = append(results, *res)
		}
	}

	c.logger.Debug("Route matrix API call successful",
		zap.Int("results_count", len(results)),
		zap.String("destination", dest.Name))

	return results, nil
}

// departureTime возвращает ближайшее будущее наступление часа периода
// в формате RFC3339. Прошедший сегодня час переносится на завтра.
func (c *client) departureTime(period string) string {
	hour := c.rushHour
	if period == domain.PeriodOffpeak {
		hour = c.offpeakHour
	}

	now := c.now()
	target := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
	if !target.After(now) {
		target = target.AddDate(0, 0, 1)
	}
	return target.Format(time.RFC3339)
}

// parseDurationSeconds разбирает строку длительности вида "123s" или "123.4s"
func parseDurationSeconds(raw string) (float64, error) {
	trimmed := strings.TrimSuffix(raw, "s")
	if trimmed == raw || trimmed == "" {
		return 0, fmt.Errorf("malformed duration %q", raw)
	}
	return strconv.ParseFloat(trimmed, 64)
}

// sleepCtx ждет заданную паузу, прерываясь по отмене контекста
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
