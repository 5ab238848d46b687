package rein

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// ProductPath is the product listing endpoint, exactly as it is signed.
const ProductPath = "/api/v1/produto"

// Client performs signed requests against the REIN API.
// It is constructed once per process and shared; every request draws from the
// same rate limiter so concurrent callers stay within the API's budget.
type Client struct {
	baseURL string
	signer  *Signer
	http    *http.Client
	limiter *rate.Limiter
	now     func() time.Time
}

// NewClient creates an API client. A nil httpClient gets a default one with
// the configured timeout.
func NewClient(cfg Config, httpClient *http.Client) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 60
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: time.Duration(timeout) * time.Second}
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute)), 1)
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		signer:  NewSigner(cfg.ClientID, cfg.ClientSecret, cfg.Database),
		http:    httpClient,
		limiter: limiter,
		now:     time.Now,
	}
}

// ListProducts fetches one page of the product listing.
// term is optional and narrows the listing to a search.
func (c *Client) ListProducts(ctx context.Context, page int, term string) (*ProductPage, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	if term != "" {
		params.Set("termo", term)
	}

	body, err := c.get(ctx, ProductPath, page, params)
	if err != nil {
		return nil, err
	}

	out, err := decodePage(page, body)
	if err != nil {
		return nil, fmt.Errorf("rein: failed to decode page %d: %w", page, err)
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, path string, page int, params url.Values) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rein: rate limiter: %w", err)
		}
	}

	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("rein: failed to build request: %w", err)
	}
	for k, v := range c.signer.Headers(path, c.now()) {
		req.Header[k] = v
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rein: GET %s page %d: %w", path, page, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("rein: failed to read page %d: %w", page, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPError{
			Path:    path,
			Page:    page,
			Status:  resp.StatusCode,
			Preview: preview(body),
		}
	}

	return body, nil
}
