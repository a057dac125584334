package repository

import (
	"sync"
	"time"

	"github.com/plzerfassung/plzerfassung/internal/pkg/remote"
)

// Factory manages repository instances and ensures they are singletons
type Factory struct {
	client   *remote.Client
	cache    ReportCache
	cacheTTL time.Duration
	visitors VisitorRepository
	once     sync.Once
}

// NewFactory creates a new repository factory. A nil cache disables caching.
func NewFactory(client *remote.Client, cache ReportCache, cacheTTL time.Duration) *Factory {
	return &Factory{
		client:   client,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// GetVisitorRepository returns the visitor repository instance
func (f *Factory) GetVisitorRepository() VisitorRepository {
	f.once.Do(func() {
		f.visitors = NewVisitorRepository(f.client)
		if f.cache != nil && f.cacheTTL > 0 {
			f.visitors = NewCachedVisitorRepository(f.visitors, f.cache, f.cacheTTL, nil)
		}
	})
	return f.visitors
}
