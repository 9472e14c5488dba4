package acquisition

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/jusbr/leiimporter/internal/common"
	"github.com/jusbr/leiimporter/internal/httpclient"
	"github.com/jusbr/leiimporter/internal/importerr"
	"github.com/ternarybob/arbor"
	"golang.org/x/time/rate"
)

// Cache is the narrow interface the client needs from the acquisition
// cache; satisfied by internal/acquisition/cache.Store, which wraps
// internal/storage/badger.CacheStorage.
type Cache interface {
	Get(urn string) (payload []byte, kind string, ok bool, err error)
	Put(urn, kind string, payload []byte) error
}

// Client resolves a URN to structured JSON or HTML, following the
// endpoint shapes in spec.md §6.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     arbor.ILogger
	limiter    *rate.Limiter
	retries    int
	backoff    time.Duration
	userAgent  string
	cache      Cache
}

// New creates an acquisition Client from the importer's configuration.
func New(cfg *common.AcquisitionConfig, logger arbor.ILogger, cache Cache) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: httpclient.NewDefaultHTTPClient(cfg.RequestTimeout),
		logger:     logger,
		limiter:    rate.NewLimiter(rate.Limit(2), 1),
		retries:    cfg.RetryAttempts,
		backoff:    cfg.RetryBackoff,
		userAgent:  cfg.UserAgent,
		cache:      cache,
	}
}

// Fetch resolves urn to either its structured JSON tree or, failing that,
// the best-ranked HTML variant (spec.md §4.3).
func (c *Client) Fetch(ctx context.Context, urn string) (Acquired, error) {
	if c.cache != nil {
		if payload, kind, ok, err := c.cache.Get(urn); err == nil && ok {
			c.logger.Debug().Str("urn", urn).Msg("acquisition cache hit")
			return Acquired{Kind: Kind(kind), Payload: payload, URN: urn}, nil
		}
	}

	body, err := c.getWithRetry(ctx, c.normaURL(urn))
	if err != nil {
		return Acquired{}, fmt.Errorf("fetching metadata for %s: %w", urn, err)
	}

	var norma NormaResponse
	if err := json.Unmarshal(body, &norma); err != nil {
		return Acquired{}, fmt.Errorf("%w: decoding metadata for %s: %v", importerr.ErrDecode, urn, err)
	}

	if len(norma.HasPart) > 0 {
		acquired := Acquired{Kind: KindJSON, Payload: body, URN: urn}
		c.writeThrough(acquired)
		return acquired, nil
	}

	variant, ok := selectVariant(norma.Encoding)
	if !ok {
		return Acquired{}, fmt.Errorf("%w: %s has no hasPart and no encodings", importerr.ErrNoVariant, urn)
	}

	variantUUID, ok := extractVariantUUID(variant.ContentURL)
	if !ok {
		return Acquired{}, fmt.Errorf("%w: could not extract variant UUID from %s", importerr.ErrNoVariant, variant.ContentURL)
	}

	htmlURL := c.binarioURL(variantUUID)
	html, err := c.getWithRetry(ctx, htmlURL)
	if err != nil {
		return Acquired{}, fmt.Errorf("fetching HTML variant for %s: %w", urn, err)
	}

	acquired := Acquired{Kind: KindHTML, Payload: html, URN: urn, VariantURL: htmlURL}
	c.writeThrough(acquired)
	return acquired, nil
}

// FromLocalHTML bypasses the network entirely for a caller-supplied HTML
// file, synthesizing just enough metadata to hand off to the parser
// selector (spec.md §4.3 "if caller supplied local HTML, bypass the
// network").
func FromLocalHTML(payload []byte, urn string) Acquired {
	return Acquired{Kind: KindHTML, Payload: payload, URN: urn, FromLocal: true}
}

func (c *Client) writeThrough(a Acquired) {
	if c.cache == nil {
		return
	}
	if err := c.cache.Put(a.URN, string(a.Kind), a.Payload); err != nil {
		c.logger.Warn().Err(err).Str("urn", a.URN).Msg("failed to write acquisition cache entry")
	}
}

func (c *Client) normaURL(urn string) string {
	q := url.Values{}
	q.Set("urn", urn)
	q.Set("tipo_documento", "maior-detalhe")
	return fmt.Sprintf("%s/normas?%s", c.baseURL, q.Encode())
}

func (c *Client) binarioURL(variantUUID string) string {
	return fmt.Sprintf("%s/binario/%s/texto", c.baseURL, variantUUID)
}

// getWithRetry issues a GET request, making up to c.retries attempts in
// total (at least one) and waiting a fixed backoff after each failed
// attempt, pacing each attempt through the rate limiter.
func (c *Client) getWithRetry(ctx context.Context, reqURL string) ([]byte, error) {
	var lastErr error
	attempts := c.retries
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 0; attempt < attempts; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: %v", importerr.ErrNetwork, err)
		}

		body, err := c.get(ctx, reqURL)
		if err == nil {
			return body, nil
		}
		lastErr = err
		c.logger.Warn().Err(err).Str("url", reqURL).Int("attempt", attempt+1).Msg("acquisition request failed, retrying")

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.backoff):
		}
	}

	return nil, fmt.Errorf("%w: %v", importerr.ErrNetwork, lastErr)
}

func (c *Client) get(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", importerr.ErrNotFound, reqURL)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d from %s", importerr.ErrNetwork, resp.StatusCode, reqURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	return body, nil
}
