package dataset

import (
	"context"
	"os"
	"sync"

	"github.com/de-tools/retail-atlas/pkg/models/domain"
)

// Cache memoizes the loader result for the lifetime of the process. Entries
// are keyed by the resolved path plus its modification time; Get revalidates
// that identity with a stat and reloads when it changed. One writer (the
// first load), many readers.
type Cache struct {
	mu     sync.RWMutex
	loader *Loader
	ds     *domain.Dataset
}

func NewCache(loader *Loader) *Cache {
	return &Cache{loader: loader}
}

func (c *Cache) Get(ctx context.Context) (*domain.Dataset, error) {
	c.mu.RLock()
	ds := c.ds
	c.mu.RUnlock()

	if ds != nil && fresh(ds.Source) {
		return ds, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ds != nil && fresh(c.ds.Source) {
		return c.ds, nil
	}

	ds, err := c.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	c.ds = ds
	return ds, nil
}

// Invalidate drops the cached dataset; the next Get reloads from disk.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ds = nil
}

func fresh(src domain.DatasetSource) bool {
	info, err := os.Stat(src.Path)
	return err == nil && info.ModTime().Equal(src.ModTime)
}
