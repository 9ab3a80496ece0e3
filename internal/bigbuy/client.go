package bigbuy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bartek5186/bb2feed/internal/catalog"
	"github.com/rs/zerolog"
	"golang.org/x/net/html/charset"
	"golang.org/x/time/rate"
)

// ErrUnauthorized – API odrzuciło klucz (HTTP 401).
var ErrUnauthorized = errors.New("bigbuy: authentication error")

// StatusError – odpowiedź inna niż 200.
type StatusError struct {
	Endpoint string
	Code     int
	Body     string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("bigbuy %s: http %d: %s", e.Endpoint, e.Code, e.Body)
	}
	return fmt.Sprintf("bigbuy %s: http %d", e.Endpoint, e.Code)
}

// Client – źródło katalogu BigBuy. Wywołania są sekwencyjne, rozdzielone stałą przerwą.
type Client struct {
	log     zerolog.Logger
	cfg     Config
	http    *http.Client
	limiter *rate.Limiter
	now     func() time.Time
}

var _ catalog.Source = (*Client)(nil)

func New(log zerolog.Logger, cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	limit := rate.Inf
	if cfg.RequestDelay > 0 {
		limit = rate.Every(cfg.RequestDelay)
	}
	return &Client{
		log:     log,
		cfg:     cfg,
		http:    &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(limit, 1),
		now:     time.Now,
	}
}

func (c *Client) Taxonomies(ctx context.Context) ([]catalog.Record, error) {
	return c.get(ctx, pathTaxonomies, url.Values{"firstLevel": {""}})
}

func (c *Client) Products(ctx context.Context, taxonomyID int64) ([]catalog.Record, error) {
	return c.get(ctx, pathProducts, byTaxonomy(taxonomyID))
}

func (c *Client) Variations(ctx context.Context, taxonomyID int64) ([]catalog.Record, error) {
	return c.get(ctx, pathVariations, byTaxonomy(taxonomyID))
}

func (c *Client) ProductStock(ctx context.Context, taxonomyID int64) ([]catalog.Record, error) {
	return c.get(ctx, pathProductStock, byTaxonomy(taxonomyID))
}

func (c *Client) VariationStock(ctx context.Context, taxonomyID int64) ([]catalog.Record, error) {
	return c.get(ctx, pathVariationStock, byTaxonomy(taxonomyID))
}

func (c *Client) Information(ctx context.Context, taxonomyID int64, language string) ([]catalog.Record, error) {
	q := byTaxonomy(taxonomyID)
	q.Set("isoCode", language)
	return c.get(ctx, pathInformation, q)
}

func (c *Client) Images(ctx context.Context, taxonomyID int64) ([]catalog.Record, error) {
	return c.get(ctx, pathImages, byTaxonomy(taxonomyID))
}

func byTaxonomy(id int64) url.Values {
	return url.Values{"parentTaxonomy": {strconv.FormatInt(id, 10)}}
}

// get wykonuje GET i dekoduje tablicę obiektów JSON.
func (c *Client) get(ctx context.Context, path string, q url.Values) ([]catalog.Record, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	base, err := url.Parse(strings.TrimRight(c.cfg.BaseURL, "/") + path)
	if err != nil {
		return nil, fmt.Errorf("bigbuy: bad base url: %w", err)
	}
	if c.cfg.CacheBuster {
		q.Set("t", strconv.FormatInt(c.now().Unix(), 10))
	}
	base.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("bigbuy %s: %w", path, err)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("endpoint", path).
		Str("query", base.RawQuery).
		Int("status", resp.StatusCode).
		Dur("took", time.Since(start)).
		Msg("request")

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, fmt.Errorf("%s: %w", path, ErrUnauthorized)
	case resp.StatusCode != http.StatusOK:
		return nil, &StatusError{Endpoint: path, Code: resp.StatusCode, Body: snippet(resp)}
	}

	body, err := decodeBody(resp)
	if err != nil {
		return nil, fmt.Errorf("bigbuy %s: charset: %w", path, err)
	}

	dec := json.NewDecoder(body)
	dec.UseNumber()
	var items []catalog.Record
	if err := dec.Decode(&items); err != nil {
		return nil, fmt.Errorf("bigbuy %s: decode: %w", path, err)
	}
	return items, nil
}

// decodeBody: JSON to UTF-8, konwersja tylko gdy Content-Type podaje charset.
func decodeBody(resp *http.Response) (io.Reader, error) {
	_, params, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil {
		return resp.Body, nil
	}
	cs := strings.ToLower(strings.TrimSpace(params["charset"]))
	if cs == "" || cs == "utf-8" || cs == "utf8" {
		return resp.Body, nil
	}
	return charset.NewReaderLabel(cs, resp.Body)
}

func snippet(resp *http.Response) string {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
	return strings.TrimSpace(string(b))
}
