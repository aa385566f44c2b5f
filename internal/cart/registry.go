package cart

import (
	"context"
	"sync"
	"time"

	"alsayed-store/internal/storage"

	"github.com/rs/zerolog"
)

type entry struct {
	store    *Store
	lastUsed time.Time
}

// Registry hands out exactly one Store per session.
type Registry struct {
	mu      sync.Mutex
	stores  map[string]*entry
	storage storage.Store
	catalog Catalog
	logger  zerolog.Logger
	now     func() time.Time
}

// NewRegistry creates an empty registry.
func NewRegistry(st storage.Store, catalog Catalog, logger zerolog.Logger) *Registry {
	return &Registry{
		stores:  make(map[string]*entry),
		storage: st,
		catalog: catalog,
		logger:  logger,
		now:     time.Now,
	}
}

// Get returns the session's store, opening it on first use. The storage read
// happens outside the registry lock; if two requests open the same session at
// once, the first store registered wins.
func (r *Registry) Get(ctx context.Context, session string) *Store {
	if st, ok := r.touch(session); ok {
		return st
	}

	opened := NewStore(ctx, session, r.storage, r.catalog, r.logger)

	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.stores[session]
	if !ok {
		e = &entry{store: opened}
		r.stores[session] = e
	}
	e.lastUsed = r.now()
	return e.store
}

func (r *Registry) touch(session string) (*Store, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.stores[session]
	if !ok {
		return nil, false
	}
	e.lastUsed = r.now()
	return e.store, true
}

// Evict drops stores unused for longer than maxIdle and returns how many were
// dropped. Their lines remain in storage and are restored on the next Get.
func (r *Registry) Evict(maxIdle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-maxIdle)
	n := 0
	for session, e := range r.stores {
		if e.lastUsed.Before(cutoff) {
			delete(r.stores, session)
			n++
		}
	}
	return n
}

// Len returns the number of open stores.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.stores)
}

// RunEviction calls Evict every interval until ctx is done.
func (r *Registry) RunEviction(ctx context.Context, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Evict(maxIdle); n > 0 {
				r.logger.Debug().Int("evicted", n).Msg("evicted idle carts")
			}
		}
	}
}
