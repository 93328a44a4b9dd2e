package storage

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/annakov/streetstore/internal/metrics"
	"github.com/annakov/streetstore/internal/models"
	"go.uber.org/zap"
)

// ErrNoCatalog indicates the keeper produced nothing to serve. The feed
// keeper falls back to a non-empty built-in catalog on every expected
// failure, so this only fires on an unexpected internal fault.
var ErrNoCatalog = errors.New("no catalog available")

type Log interface {
	Info(string, ...zap.Field)
}

// Keeper produces a fresh catalog on cache miss.
type Keeper interface {
	Load(context.Context) []models.Product
}

// MemoryStorage is a single-slot, time-expiring catalog cache. A fresh slot
// is served as-is; an expired or empty slot triggers one load through the
// keeper, whose result replaces the slot wholesale. Concurrent misses may
// load redundantly; each write is an atomic wholesale replacement under the
// lock, so last writer wins.
type MemoryStorage struct {
	ctx context.Context
	mx  sync.RWMutex

	catalog  []models.Product
	cachedAt time.Time
	ttl      time.Duration

	keeper Keeper
	log    Log
}

// NewMemoryStorage creates a new MemoryStorage instance
func NewMemoryStorage(ctx context.Context, keeper Keeper, ttl time.Duration, log Log) *MemoryStorage {
	return &MemoryStorage{
		ctx:    ctx,
		ttl:    ttl,
		keeper: keeper,
		log:    log,
	}
}

// GetCatalog returns the cached catalog while it is fresh, re-ingesting the
// feed otherwise.
func (s *MemoryStorage) GetCatalog(ctx context.Context) ([]models.Product, error) {
	if catalog, ok := s.Cached(); ok {
		metrics.CacheOperations.WithLabelValues("get", "hit").Inc()
		return catalog, nil
	}
	metrics.CacheOperations.WithLabelValues("get", "miss").Inc()

	catalog := s.keeper.Load(ctx)
	if len(catalog) == 0 {
		return nil, ErrNoCatalog
	}

	s.Cache(catalog)
	s.log.Info("catalog refreshed", zap.Int("products", len(catalog)))
	return catalog, nil
}

// Cached returns the stored catalog if it exists and the freshness window
// has not elapsed since it was stored.
func (s *MemoryStorage) Cached() ([]models.Product, bool) {
	s.mx.RLock()
	defer s.mx.RUnlock()

	if s.catalog == nil || time.Since(s.cachedAt) >= s.ttl {
		return nil, false
	}
	return s.catalog, true
}

// Cache replaces the stored catalog and resets its timestamp unconditionally.
func (s *MemoryStorage) Cache(catalog []models.Product) {
	s.mx.Lock()
	defer s.mx.Unlock()

	s.catalog = catalog
	s.cachedAt = time.Now()
	metrics.CacheOperations.WithLabelValues("set", "success").Inc()
}
