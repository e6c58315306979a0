// Package upstream holds the HTTP clients for the remote storefront API:
// product catalog, order placement, and user accounts. The gateway treats
// these services as external collaborators; their responses are passed
// through, not merged with local state.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/saklain-s/Ecommerce/internal/api/metrics"
	"github.com/saklain-s/Ecommerce/internal/core/domain"
)

type apiClient struct {
	name    string
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// doJSON performs one JSON round trip. Transport failures wrap
// domain.ErrUpstreamUnavailable; non-2xx statuses are returned to the
// caller for service-specific mapping. out is only decoded on 2xx.
func (c *apiClient) doJSON(ctx context.Context, method, path, token string, body, out any) (int, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("%s %s: encode body: %w", method, path, err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, fmt.Errorf("%s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.UpstreamRequestDuration.WithLabelValues(c.name).Observe(time.Since(start).Seconds())
	if err != nil {
		c.log.Warn().Err(err).Str("method", method).Str("path", path).Msg("upstream request failed")
		return 0, fmt.Errorf("%s %s: %w", method, path, domain.ErrUpstreamUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return resp.StatusCode, nil
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("%s %s: decode response: %w", method, path, err)
		}
	}
	return resp.StatusCode, nil
}
