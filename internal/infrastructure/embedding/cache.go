package embedding

import (
	"context"
	"sync"

	"github.com/shopgraph/pipeline/internal/domain"
)

// Cache is a thread-safe, process-wide text-to-vector cache wrapping an inner
// Embedder. Entries never expire; the cache lives for one pipeline run and is
// rebuilt on the next. Construct it once in main and pass it by reference so
// the engine stays testable with an injected fake.
type Cache struct {
	inner   domain.Embedder
	mutex   sync.RWMutex
	vectors map[string][]float32
}

// NewCache creates a cache around the given embedder
func NewCache(inner domain.Embedder) *Cache {
	return &Cache{
		inner:   inner,
		vectors: make(map[string][]float32),
	}
}

// Embed returns the cached vector for text, invoking the inner embedder on a
// miss. The model call happens outside the lock, so two goroutines racing on
// the same key may both invoke the model; the call is idempotent so the
// duplicate is a performance cost, not a correctness problem.
func (c *Cache) Embed(ctx context.Context, text string) ([]float32, error) {
	c.mutex.RLock()
	vector, ok := c.vectors[text]
	c.mutex.RUnlock()
	if ok {
		return vector, nil
	}

	vector, err := c.inner.Embed(ctx, text)
	if err != nil {
		return nil, err
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()
	// Another goroutine may have inserted while we were embedding; keep the
	// existing entry so repeated calls return the identical slice.
	if existing, ok := c.vectors[text]; ok {
		return existing, nil
	}
	c.vectors[text] = vector
	return vector, nil
}

// Size returns the number of cached vectors (for debugging/monitoring)
func (c *Cache) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.vectors)
}

// Clear removes all cached vectors
func (c *Cache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.vectors = make(map[string][]float32)
}
