package rapidapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rapidhub/rapidhub/internal/cache"
	"github.com/rapidhub/rapidhub/internal/config"
	"github.com/rapidhub/rapidhub/pkg/apierror"
)

// HTTPClient lets tests substitute the transport.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client issues outbound requests to the RapidAPI-hosted upstreams. One key
// is shared across hosts; each call gets a bounded deadline. A single failed
// attempt surfaces immediately, there are no retries.
type Client struct {
	httpClient      HTTPClient
	key             string
	jsearchHost     string
	movieHost       string
	youtubeHost     string
	timeout         time.Duration
	downloadTimeout time.Duration
	cache           *cache.SearchCache
}

func NewClient(cfg config.RapidAPIConfig) *Client {
	return &Client{
		httpClient:      &http.Client{},
		key:             cfg.Key,
		jsearchHost:     cfg.JSearchHost,
		movieHost:       cfg.MovieHost,
		youtubeHost:     cfg.YouTubeHost,
		timeout:         cfg.Timeout,
		downloadTimeout: cfg.DownloadTimeout,
	}
}

func (c *Client) SetHTTPClient(client HTTPClient) {
	c.httpClient = client
}

// SetCache enables read-through caching of search payloads. A nil cache is
// allowed and disables caching.
func (c *Client) SetCache(sc *cache.SearchCache) {
	c.cache = sc
}

// getJSON performs a GET against host/path and returns the raw 2xx body.
// When cacheKey is non-empty the body is served from and written to the
// search cache.
func (c *Client) getJSON(ctx context.Context, resource, host, path string, params url.Values, cacheKey string) ([]byte, error) {
	if cacheKey != "" {
		if body, ok := c.cache.Get(ctx, cacheKey); ok {
			return body, nil
		}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := c.send(ctx, resource, host, path, params)
	if err != nil {
		return nil, err
	}

	if cacheKey != "" {
		c.cache.Set(ctx, cacheKey, body)
	}
	return body, nil
}

func (c *Client) send(ctx context.Context, resource, host, path string, params url.Values) ([]byte, error) {
	reqURL := &url.URL{Scheme: "https", Host: host, Path: path, RawQuery: params.Encode()}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, apierror.Wrap(resource, apierror.CodeEncodingError, "failed to build upstream request", err)
	}
	c.setHeaders(req, host)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, apierror.Wrap(resource, apierror.CodeTimeout, "upstream call exceeded deadline", err)
		}
		return nil, apierror.Wrap(resource, apierror.CodeProcessingError, "upstream call failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apierror.Wrap(resource, apierror.CodeProcessingError, "failed to read upstream response", err)
	}

	if err := statusError(resource, resp.StatusCode); err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, apierror.New(resource, apierror.CodeNullResponse, "upstream returned an empty body")
	}
	return body, nil
}

func (c *Client) setHeaders(req *http.Request, host string) {
	req.Header.Set("x-rapidapi-host", host)
	req.Header.Set("x-rapidapi-key", c.key)
	req.Header.Set("Content-Type", "application/json")
}

// statusError maps an upstream HTTP status to a typed failure; nil for 2xx.
func statusError(resource string, status int) error {
	if status >= 200 && status < 300 {
		return nil
	}
	switch status {
	case http.StatusBadRequest:
		return apierror.New(resource, apierror.CodeBadRequest, "upstream rejected the request")
	case http.StatusUnauthorized:
		return apierror.New(resource, apierror.CodeUnauthorized, "upstream authentication failed, check the RapidAPI key")
	case http.StatusNotFound:
		return apierror.New(resource, apierror.CodeResourceNotFound, "requested resource not found upstream")
	case http.StatusTooManyRequests:
		return apierror.New(resource, apierror.CodeRateLimitExceeded, "upstream request quota exceeded")
	}
	return apierror.New(resource, apierror.CodeProcessingError, fmt.Sprintf("upstream returned status %d", status))
}

// decode unmarshals a 2xx body; a parse failure is a DATA_FORMAT_ERROR.
func decode(resource string, body []byte, out any) error {
	if err := json.Unmarshal(body, out); err != nil {
		return apierror.Wrap(resource, apierror.CodeDataFormatError, "upstream returned a well-formed status but an unparseable body", err)
	}
	return nil
}
