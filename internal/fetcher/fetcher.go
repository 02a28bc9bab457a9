// internal/fetcher/fetcher.go
package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/ssantiago/sales-analytics/internal/config"
)

// RawRecord is one undecoded source record: field name to raw JSON value,
// with nested objects and arrays preserved as map[string]any / []any.
type RawRecord = map[string]any

// Client fetches the read-only DummyJSON collections. Each collection is one
// GET; a failed collection is reported to the caller and never aborts the
// other fetches.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

func New(cfg config.SourceConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		http: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(cfg.RatePerSecond), 1),
	}
}

func (c *Client) Products(ctx context.Context) ([]RawRecord, error) {
	return c.fetchCollection(ctx, "products")
}

func (c *Client) Users(ctx context.Context) ([]RawRecord, error) {
	return c.fetchCollection(ctx, "users")
}

func (c *Client) Carts(ctx context.Context) ([]RawRecord, error) {
	return c.fetchCollection(ctx, "carts")
}

// fetchCollection GETs <base>/<name> and decodes the top-level array held
// under the key of the same name.
func (c *Client) fetchCollection(ctx context.Context, name string) ([]RawRecord, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	url := fmt.Sprintf("%s/%s", c.baseURL, name)
	logrus.WithField("url", url).Info("Fetching collection")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", name, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status fetching %s: %s", name, resp.Status)
	}

	var payload map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", name, err)
	}

	raw, ok := payload[name]
	if !ok {
		return nil, fmt.Errorf("response for %s is missing the %q key", name, name)
	}

	var records []RawRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("failed to decode %s records: %w", name, err)
	}

	logrus.WithFields(logrus.Fields{
		"collection": name,
		"records":    len(records),
	}).Info("Collection fetched")

	return records, nil
}
