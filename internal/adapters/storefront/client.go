// Package storefront fetches product pages and scrapes the raw title and tag list
// the extractor works from
package storefront

import (
	"context"
	"io"
	"net/http"
	"time"

	"titlesmith/internal/core/extract"
	"titlesmith/internal/platform/config"
	perr "titlesmith/internal/platform/errors"
	"titlesmith/internal/platform/logger"
)

const (
	baseURLDefault = "https://alamodeonline.com"
	defaultTimeout = 10 * time.Second
	defaultUA      = "titlesmith"

	// product pages are a few hundred KB at most
	maxBodyBytes = 4 << 20
)

// Options configures the Client
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// OptionsFromConfig reads STOREFRONT_* keys under conf
func OptionsFromConfig(conf config.Conf) Options {
	return Options{
		BaseURL:   conf.MayString("STOREFRONT_BASE_URL", baseURLDefault),
		UserAgent: conf.MayString("STOREFRONT_USER_AGENT", defaultUA),
		Timeout:   conf.MayDuration("STOREFRONT_TIMEOUT", defaultTimeout),
	}
}

// Client performs one GET per product with a fixed timeout and no retries
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
	now  func() time.Time
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	o.BaseURL = trimSlash(o.BaseURL)
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	return &Client{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  *logger.Named("storefront"),
		now:  time.Now,
	}
}

// BaseURL returns the storefront origin products are resolved against
func (c *Client) BaseURL() string { return c.opts.BaseURL }

// ProductURL resolves a product URL or SKU against the configured storefront
func (c *Client) ProductURL(input string) (string, error) {
	return BuildProductURL(c.opts.BaseURL, input)
}

// FetchProduct resolves input and fetches it, returning the URL that was used
func (c *Client) FetchProduct(ctx context.Context, input string) (extract.RawInput, string, error) {
	u, err := c.ProductURL(input)
	if err != nil {
		return extract.RawInput{}, "", err
	}
	raw, err := c.Fetch(ctx, u)
	return raw, u, err
}

// Fetch downloads url and scrapes its og:title and product tags
func (c *Client) Fetch(ctx context.Context, url string) (extract.RawInput, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return extract.RawInput{}, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "storefront new request failed")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", "text/html")

	start := c.now()
	resp, err := c.http.Do(req)
	lat := c.now().Sub(start)
	if err != nil {
		c.log.Warn().Err(err).Str("url", url).Dur("latency", lat).Msg("storefront fetch failed")
		return extract.RawInput{}, perr.Wrapf(err, perr.ErrorCodeUnavailable, "storefront fetch failed")
	}
	defer func() { _ = resp.Body.Close() }()

	c.log.Debug().
		Str("url", url).
		Int("status", resp.StatusCode).
		Dur("latency", lat).
		Msg("storefront http response")

	if err := statusError(resp.StatusCode); err != nil {
		c.log.Warn().Str("url", url).Int("status", resp.StatusCode).Msg("storefront non-ok status")
		return extract.RawInput{}, err
	}

	raw, err := Parse(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return extract.RawInput{}, err
	}
	return raw, nil
}

// statusError maps a response status onto the error taxonomy
func statusError(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusNotFound:
		return perr.Newf(perr.ErrorCodeNotFound, "product page not found")
	case code == http.StatusTooManyRequests:
		return perr.Newf(perr.ErrorCodeTooManyRequests, "storefront rate limited")
	case code >= 500:
		return perr.Newf(perr.ErrorCodeUnavailable, "storefront returned %d", code)
	default:
		return perr.Newf(perr.ErrorCodeUpstream, "storefront returned %d", code)
	}
}
