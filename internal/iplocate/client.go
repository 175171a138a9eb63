// Package iplocate estimates the caller's position from their public IP address
package iplocate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/codeGROOVE-dev/retry"

	"github.com/ngmaloney/forecast-terminal/internal/models"
)

const (
	// DefaultURL is the free ip-api.com JSON endpoint
	DefaultURL = "http://ip-api.com/json/"

	// DefaultQuery is used when the caller's city cannot be determined
	DefaultQuery = "Los Angeles,CA,US"
)

// HTTPClient interface for making HTTP requests
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client looks up the current position. Lookups never fail: every error
// degrades to the Los Angeles fallback. The first answer is reused for the
// lifetime of the client.
type Client struct {
	url        string
	httpClient HTTPClient
	attempts   uint
	logger     *slog.Logger

	mu   sync.Mutex
	done bool
	info *ipAPIResponse
	err  error
}

// NewClient creates a new IP geolocation client
func NewClient(httpClient HTTPClient, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		url:        DefaultURL,
		httpClient: httpClient,
		attempts:   2,
		logger:     logger,
	}
}

type ipAPIResponse struct {
	Status      string  `json:"status"`
	Message     string  `json:"message"`
	City        string  `json:"city"`
	RegionName  string  `json:"regionName"`
	CountryCode string  `json:"countryCode"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
}

// Coordinate returns the caller's approximate coordinate
func (c *Client) Coordinate(ctx context.Context) models.Coordinate {
	info, err := c.lookup(ctx)
	if err != nil {
		c.logger.Debug("using default coordinate", "error", err)
		return models.DefaultCoordinate
	}
	return models.Coordinate{Latitude: info.Lat, Longitude: info.Lon}
}

// Query returns the caller's location as "City,Region,CC"
func (c *Client) Query(ctx context.Context) string {
	info, err := c.lookup(ctx)
	if err != nil {
		c.logger.Debug("using default location", "error", err)
		return DefaultQuery
	}
	return fmt.Sprintf("%s,%s,%s", info.City, info.RegionName, info.CountryCode)
}

func (c *Client) lookup(ctx context.Context) (*ipAPIResponse, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.done {
		c.info, c.err = c.fetch(ctx)
		c.done = true
	}
	return c.info, c.err
}

func (c *Client) fetch(ctx context.Context) (*ipAPIResponse, error) {
	var info ipAPIResponse

	err := retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, http.NoBody)
			if err != nil {
				return fmt.Errorf("creating request: %w", err)
			}
			req.Header.Set("Accept", "application/json")

			resp, err := c.httpClient.Do(req)
			if err != nil {
				return err
			}
			defer func() {
				if err := resp.Body.Close(); err != nil {
					c.logger.Debug("failed to close response body", "error", err)
				}
			}()

			if resp.StatusCode != http.StatusOK {
				body, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
				return fmt.Errorf("ip-api returned status %d: %s", resp.StatusCode, string(body))
			}

			info = ipAPIResponse{}
			if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
				return fmt.Errorf("decoding response: %w", err)
			}
			if info.Status != "success" {
				return fmt.Errorf("ip-api lookup failed: %s", info.Message)
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(c.attempts),
		retry.Delay(200*time.Millisecond),
		retry.MaxDelay(time.Second),
		retry.DelayType(retry.FullJitterBackoffDelay),
		retry.OnRetry(func(n uint, err error) {
			c.logger.Debug("retrying ip geolocation", "attempt", n+1, "error", err)
		}),
	)
	if err != nil {
		return nil, err
	}
	return &info, nil
}
