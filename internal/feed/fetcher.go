package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/annakov/streetstore/internal/metrics"
	"github.com/annakov/streetstore/internal/models"
	"go.uber.org/zap"
)

type Log interface {
	Info(string, ...zap.Field)
	Warn(string, ...zap.Field)
}

// Fetcher downloads the external product feed and turns it into a catalog.
type Fetcher struct {
	url    func() string
	client *http.Client
	parser *Parser
	log    Log
}

func NewFetcher(url func() string, timeout time.Duration, parser *Parser, log Log) *Fetcher {
	return &Fetcher{
		url:    url,
		client: &http.Client{Timeout: timeout},
		parser: parser,
		log:    log,
	}
}

// Load produces a catalog and never fails: any transport problem or a feed
// that maps to zero valid rows downgrades to the built-in fallback catalog.
// The feed being unavailable is expected behavior, not an error, so it is
// logged and absorbed here.
func (f *Fetcher) Load(ctx context.Context) []models.Product {
	products, err := f.fetch(ctx)
	if err != nil {
		f.log.Warn("feed unavailable, using fallback catalog", zap.Error(err))
		metrics.FeedFetches.WithLabelValues("fallback").Inc()
		return FallbackCatalog()
	}
	if len(products) == 0 {
		f.log.Warn("feed yielded no valid products, using fallback catalog")
		metrics.FeedFetches.WithLabelValues("fallback").Inc()
		return FallbackCatalog()
	}

	f.log.Info("feed loaded", zap.Int("products", len(products)))
	metrics.FeedFetches.WithLabelValues("ok").Inc()
	return products
}

func (f *Fetcher) fetch(ctx context.Context) ([]models.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url(), nil)
	if err != nil {
		return nil, fmt.Errorf("build feed request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("feed responded with status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read feed body: %w", err)
	}

	return f.parser.Parse(string(body)), nil
}
