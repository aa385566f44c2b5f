package cart

import (
	"context"
	"sync"
	"testing"
	"time"

	"alsayed-store/internal/storage"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_OneStorePerSession(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry(storage.NewMemoryStore(), testCatalog, zerolog.Nop())

	a1 := r.Get(ctx, "a")
	a2 := r.Get(ctx, "a")
	b := r.Get(ctx, "b")

	assert.Same(t, a1, a2)
	assert.NotSame(t, a1, b)
	assert.Equal(t, 2, r.Len())
}

func TestRegistry_EvictRestoresFromStorage(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	r := NewRegistry(storage.NewMemoryStore(), testCatalog, zerolog.Nop())
	r.now = func() time.Time { return now }

	_, err := r.Get(ctx, "a").AddItem(ctx, "1", "50ml", decimal.NewFromInt(120), 2)
	require.NoError(t, err)

	now = now.Add(10 * time.Minute)
	r.Get(ctx, "b")

	assert.Equal(t, 1, r.Evict(5*time.Minute))
	assert.Equal(t, 1, r.Len())

	restored := r.Get(ctx, "a")
	assert.Equal(t, 2, restored.Count())
}

// slowStorage blocks reads of one key until release is closed.
type slowStorage struct {
	storage.Store
	key     string
	reading chan struct{}
	release chan struct{}
}

func (s *slowStorage) Get(ctx context.Context, key string) ([]byte, error) {
	if key == s.key {
		close(s.reading)
		<-s.release
	}
	return s.Store.Get(ctx, key)
}

func TestRegistry_SlowOpenDoesNotBlockOtherSessions(t *testing.T) {
	ctx := context.Background()
	st := &slowStorage{
		Store:   storage.NewMemoryStore(),
		key:     KeyPrefix + "slow",
		reading: make(chan struct{}),
		release: make(chan struct{}),
	}
	r := NewRegistry(st, testCatalog, zerolog.Nop())
	r.Get(ctx, "b")

	go r.Get(ctx, "slow")
	<-st.reading

	done := make(chan *Store)
	go func() { done <- r.Get(ctx, "b") }()

	select {
	case got := <-done:
		assert.NotNil(t, got)
	case <-time.After(2 * time.Second):
		t.Fatal("Get for an open session waited on another session's storage read")
	}

	close(st.release)
}

func TestRegistry_ConcurrentFirstUseSharesStore(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry(storage.NewMemoryStore(), testCatalog, zerolog.Nop())

	stores := make([]*Store, 20)
	var wg sync.WaitGroup
	for i := range stores {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			stores[i] = r.Get(ctx, "a")
		}(i)
	}
	wg.Wait()

	for _, st := range stores[1:] {
		assert.Same(t, stores[0], st)
	}
	assert.Equal(t, 1, r.Len())
}
