// Package openweather talks to the OpenWeatherMap geocoding and forecast APIs
package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/ngmaloney/forecast-terminal/internal/models"
)

const (
	// DefaultBaseURL is the public OpenWeatherMap endpoint
	DefaultBaseURL = "https://api.openweathermap.org"

	forecastEndpoint = "/data/2.5/forecast"
	directEndpoint   = "/geo/1.0/direct"
	reverseEndpoint  = "/geo/1.0/reverse"

	// geocodeLimit is the most candidates requested per query
	geocodeLimit = 5

	userAgent = "ForecastTerminal/1.0"
)

// Options configures a Client
type Options struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	RetryCount int // Retries for transport errors, 429 and 5xx
	Logger     *slog.Logger
}

// Client is an OpenWeatherMap API client
type Client struct {
	http   *resty.Client
	apiKey string
	logger *slog.Logger
}

// NewClient creates a new OpenWeatherMap client
func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Timeout == 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	logger := opts.Logger
	client := resty.New().
		SetBaseURL(opts.BaseURL).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json").
		SetTimeout(opts.Timeout).
		SetRetryCount(opts.RetryCount).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(3 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if err != nil {
				return true
			}
			return r.StatusCode() == http.StatusTooManyRequests || r.StatusCode() >= http.StatusInternalServerError
		})

	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		logger.Debug("openweather response",
			"method", resp.Request.Method,
			"path", resp.Request.URL,
			"status", resp.StatusCode(),
			"duration", resp.Time(),
			"bytes", len(resp.Body()))
		return nil
	})

	return &Client{
		http:   client,
		apiKey: opts.APIKey,
		logger: logger,
	}
}

// Geocode returns up to five candidates for a free-text query, in the order
// the API ranks them. An empty slice means nothing matched.
func (c *Client) Geocode(ctx context.Context, query string) ([]models.LocationCandidate, error) {
	var results []geoResult
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":     query,
			"limit": strconv.Itoa(geocodeLimit),
			"appid": c.apiKey,
		}).
		SetResult(&results).
		Get(directEndpoint)
	if err := classify(resp, err, "geocoding "+strconv.Quote(query)); err != nil {
		return nil, err
	}

	candidates := make([]models.LocationCandidate, 0, len(results))
	for _, r := range results {
		candidates = append(candidates, r.candidate())
	}
	return candidates, nil
}

// ReverseRegion returns the state/region name at coord, or "" when the API has none
func (c *Client) ReverseRegion(ctx context.Context, coord models.Coordinate) (string, error) {
	var results []geoResult
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"lat":   formatFloat(coord.Latitude),
			"lon":   formatFloat(coord.Longitude),
			"limit": "1",
			"appid": c.apiKey,
		}).
		SetResult(&results).
		Get(reverseEndpoint)
	if err := classify(resp, err, "reverse geocoding"); err != nil {
		return "", err
	}

	if len(results) == 0 {
		return "", nil
	}
	return results[0].State, nil
}

// ForecastByCoordinate fetches the 5-day/3-hour forecast at coord
func (c *Client) ForecastByCoordinate(ctx context.Context, coord models.Coordinate, lang string) (*models.Forecast, error) {
	return c.forecast(ctx, map[string]string{
		"lat": formatFloat(coord.Latitude),
		"lon": formatFloat(coord.Longitude),
	}, lang, fmt.Sprintf("forecast at %.4f,%.4f", coord.Latitude, coord.Longitude))
}

// ForecastByName fetches the forecast using the API's own city name matching
func (c *Client) ForecastByName(ctx context.Context, query, lang string) (*models.Forecast, error) {
	return c.forecast(ctx, map[string]string{"q": query}, lang, "forecast for "+strconv.Quote(query))
}

func (c *Client) forecast(ctx context.Context, params map[string]string, lang, what string) (*models.Forecast, error) {
	params["appid"] = c.apiKey
	params["units"] = "imperial"
	params["lang"] = lang

	var body forecastResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(&body).
		Get(forecastEndpoint)
	if err := classify(resp, err, what); err != nil {
		return nil, err
	}

	forecast := &models.Forecast{
		City: models.LocationCandidate{
			Name:        body.City.Name,
			CountryCode: body.City.Country,
			Coordinate: models.Coordinate{
				Latitude:  body.City.Coord.Lat,
				Longitude: body.City.Coord.Lon,
			},
		},
		UTCOffset: body.City.Timezone,
		Samples:   make([]models.DailySample, 0, len(body.List)),
	}

	for _, item := range body.List {
		sample := models.DailySample{
			Time:         time.Unix(item.Dt, 0).UTC(),
			TemperatureF: item.Main.Temp,
		}
		if len(item.Weather) > 0 {
			sample.Description = item.Weather[0].Description
		}
		forecast.Samples = append(forecast.Samples, sample)
	}

	c.logger.Debug("forecast fetched", "city", forecast.City.Name, "country", forecast.City.CountryCode, "samples", len(forecast.Samples))
	return forecast, nil
}

func (r geoResult) candidate() models.LocationCandidate {
	return models.LocationCandidate{
		Name:        r.Name,
		Region:      r.State,
		CountryCode: r.Country,
		Coordinate:  models.Coordinate{Latitude: r.Lat, Longitude: r.Lon},
	}
}

// classify maps transport errors and HTTP statuses onto the models error kinds
func classify(resp *resty.Response, err error, what string) error {
	if err != nil {
		return fmt.Errorf("%s: %w: %v", what, models.ErrUpstreamUnavailable, err)
	}
	if resp.IsSuccess() {
		return nil
	}

	message := http.StatusText(resp.StatusCode())
	var apiErr errorResponse
	if json.Unmarshal(resp.Body(), &apiErr) == nil && apiErr.Message != "" {
		message = apiErr.Message
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		return fmt.Errorf("%s: %w: %s", what, models.ErrUnauthorized, message)
	case http.StatusNotFound:
		return fmt.Errorf("%s: %w: %s", what, models.ErrNotFound, message)
	default:
		return fmt.Errorf("%s: %w: HTTP %d: %s", what, models.ErrUpstreamUnavailable, resp.StatusCode(), message)
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
