package rainfall

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/shenikar/flood_risk_system/internal/models"
	"golang.org/x/time/rate"
)

const (
	openMeteoTimeLayout = "2006-01-02T15:04"
	maxResponseBytes    = 1 << 20
)

// ErrNoForecast - источник ответил, но почасовой ряд пуст
var ErrNoForecast = errors.New("rainfall: forecast has no hourly precipitation")

// Source - внешний источник скалярного прогноза осадков для одной точки
type Source interface {
	Current(ctx context.Context, lat, lng float64) (models.RainfallReading, error)
}

type openMeteoResponse struct {
	Hourly struct {
		Time          []string   `json:"time"`
		Precipitation []*float64 `json:"precipitation"`
	} `json:"hourly"`
}

// OpenMeteoClient запрашивает почасовые осадки у Open-Meteo
type OpenMeteoClient struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
	now     func() time.Time
}

// NewOpenMeteoClient создает клиента с ограничением частоты запросов (rps)
func NewOpenMeteoClient(baseURL string, timeout time.Duration, rps float64) *OpenMeteoClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}
	return &OpenMeteoClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(limit, 1),
		now:     time.Now,
	}
}

// Current возвращает последнее значение почасового ряда и его время
func (c *OpenMeteoClient) Current(ctx context.Context, lat, lng float64) (models.RainfallReading, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return models.RainfallReading{}, fmt.Errorf("rainfall: rate limiter wait: %w", err)
	}

	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(lng, 'f', -1, 64))
	q.Set("hourly", "precipitation")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/forecast?"+q.Encode(), nil)
	if err != nil {
		return models.RainfallReading{}, fmt.Errorf("rainfall: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return models.RainfallReading{}, fmt.Errorf("rainfall: request forecast: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.RainfallReading{}, fmt.Errorf("rainfall: forecast returned status %d", resp.StatusCode)
	}

	var body openMeteoResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&body); err != nil {
		return models.RainfallReading{}, fmt.Errorf("rainfall: decode forecast: %w", err)
	}

	n := len(body.Hourly.Precipitation)
	if n == 0 {
		return models.RainfallReading{}, ErrNoForecast
	}

	reading := models.RainfallReading{
		Location: models.Location{Lat: lat, Lng: lng},
		Time:     c.now().UTC(),
	}
	if v := body.Hourly.Precipitation[n-1]; v != nil && *v > 0 {
		reading.Intensity = *v
	}
	if len(body.Hourly.Time) == n {
		if ts, err := time.Parse(openMeteoTimeLayout, body.Hourly.Time[n-1]); err == nil {
			reading.Time = ts
		}
	}
	return reading, nil
}
