package geo

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Client fetches the state boundary dataset consumed by the map layer. The
// dataset is static, so the first successful fetch is cached for the life
// of the process.
type Client struct {
	url     string
	timeout time.Duration
	http    *http.Client
	logger  *zap.Logger

	mu     sync.Mutex
	cached []byte
}

func NewClient(url string, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		url:     url,
		timeout: timeout,
		http:    &http.Client{},
		logger:  logger,
	}
}

// Boundaries returns the raw boundary document. The pipeline treats it as
// opaque; only the display layer interprets it.
func (c *Client) Boundaries(ctx context.Context) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cached != nil {
		return c.cached, nil
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("building boundaries request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching boundaries: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching boundaries: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading boundaries response: %w", err)
	}

	c.logger.Info("boundary dataset cached", zap.Int("bytes", len(body)))
	c.cached = body
	return body, nil
}
