package maps

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"trip-data-collector/internal/domain"
)

// Client calls the Google Maps Distance Matrix API.
//
// One blocking GET per pair, bounded by the configured timeout. No retries,
// no batching: each round trip either yields the raw payload or fails.
type Client struct {
	session     *http.Client
	apiKey      string
	baseURL     string
	path        string
	fixedParams map[string]string
}

func NewClient(
	baseURL string,
	path string,
	apiKey string,
	fixedParams map[string]string,
	timeout time.Duration,
) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("maps api key is empty")
	}
	if baseURL == "" {
		return nil, errors.New("maps base URL is empty")
	}

	client := &Client{
		session:     &http.Client{Timeout: timeout},
		apiKey:      apiKey,
		baseURL:     strings.TrimRight(baseURL, "/"),
		path:        path,
		fixedParams: fixedParams,
	}

	return client, nil
}

// buildParams derives the full query for one pair. Fixed parameters are
// copied verbatim; origins, destinations and key are injected afterwards and
// win any naming collision with a fixed parameter. The set is rebuilt per
// call so parameters never leak between pairs.
func (c *Client) buildParams(origin, destination string) url.Values {
	q := url.Values{}
	for k, v := range c.fixedParams {
		q.Set(k, v)
	}
	q.Set("origins", origin)
	q.Set("destinations", destination)
	q.Set("key", c.apiKey)
	return q
}

// FetchDistanceMatrix performs one GET to {base_url}{path} for the pair and
// decodes the JSON body. The call blocks the caller for up to the client
// timeout; there is no cancellation path once issued beyond ctx.
func (c *Client) FetchDistanceMatrix(
	ctx context.Context,
	origin string,
	destination string,
) (domain.RawResponse, error) {
	endpoint := c.baseURL + c.path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.URL.RawQuery = c.buildParams(origin, destination).Encode()

	resp, err := c.session.Do(req)
	if err != nil {
		return nil, &TransportError{URL: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(resp.Body)
		return nil, &StatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(b)),
		}
	}

	var raw domain.RawResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode distance matrix response: %w", err)
	}

	return raw, nil
}
