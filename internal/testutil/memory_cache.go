package testutil

import (
	"context"
	"sync"

	"github.com/sbilibin2017/gw-glossary/internal/models"
	"github.com/sbilibin2017/gw-glossary/internal/repositories"
)

// MemoryCache is an in-memory stand-in for the Redis term cache.
// Setting DeleteErr makes every Delete fail with it.
type MemoryCache struct {
	mu        sync.Mutex
	terms     map[string]models.Term
	DeleteErr error
}

// NewMemoryCache returns an empty MemoryCache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{terms: make(map[string]models.Term)}
}

func (c *MemoryCache) Get(ctx context.Context, keyword string) (*models.Term, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	t, ok := c.terms[keyword]
	if !ok {
		return nil, repositories.ErrCacheMiss
	}
	return &t, nil
}

func (c *MemoryCache) Set(ctx context.Context, term *models.Term) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.terms[term.Keyword] = *term
	return nil
}

func (c *MemoryCache) Delete(ctx context.Context, keywords ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.DeleteErr != nil {
		return c.DeleteErr
	}
	for _, k := range keywords {
		delete(c.terms, k)
	}
	return nil
}

// Has reports whether keyword is cached.
func (c *MemoryCache) Has(keyword string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.terms[keyword]
	return ok
}
