package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/commute-heatmap/internal/config"
	"github.com/commute-heatmap/internal/domain"
	"github.com/commute-heatmap/internal/domain/repository"
	"github.com/commute-heatmap/internal/pkg/errors"
)

// geocodePath - метод API геокодирования
const geocodePath = "/maps/api/geocode/json"

type client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *zap.Logger
}

// NewGeocodingClient создает новый клиент геокодирования адресов
func NewGeocodingClient(cfg *config.GeocodingConfig, logger *zap.Logger) repository.GeocodingRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		logger:  logger,
	}
}

type geocodeResponse struct {
	Status  string          `json:"status"`
	Results []geocodeResult `json:"results"`
}

type geocodeResult struct {
	FormattedAddress string `json:"formatted_address"`
	Geometry         struct {
		Location struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
}

// Geocode возвращает координаты и нормализованный адрес.
// Используется только первый результат провайдера.
func (c *client) Geocode(ctx context.Context, address string) (*domain.GeocodeResult, error) {
	if strings.TrimSpace(address) == "" {
		return nil, fmt.Errorf("address cannot be empty")
	}

	endpoint := fmt.Sprintf("%s%s?address=%s&key=%s",
		c.baseURL, geocodePath, url.QueryEscape(address), c.apiKey)

	c.logger.Debug("Calling geocoding API", zap.String("address", address))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Geocoding API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("geocoding API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var geoResp geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&geoResp); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if geoResp.Status != "OK" || len(geoResp.Results) == 0 {
		c.logger.Warn("Geocoding returned no usable result",
			zap.String("address", address),
			zap.String("status", geoResp.Status))
		return nil, errors.ErrGeocodingFailed.WithDetails(map[string]interface{}{
			"address":         address,
			"provider_status": geoResp.Status,
		})
	}

	first := geoResp.Results[0]
	result := &domain.GeocodeResult{
		Lat:              first.Geometry.Location.Lat,
		Lng:              first.Geometry.Location.Lng,
		FormattedAddress: first.FormattedAddress,
	}

	c.logger.Debug("Geocoding successful",
		zap.String("address", address),
		zap.String("formatted_address", result.FormattedAddress))

	return result, nil
}
