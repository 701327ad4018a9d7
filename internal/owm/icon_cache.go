package owm

import (
	"context"
	"sync"
)

// CachedIconResolver memoizes successful downloads for the lifetime of the process.
// Failures are not cached so a later request can retry naturally.
type CachedIconResolver struct {
	resolver IconResolver
	cache    map[string][]byte
	mu       sync.RWMutex
}

// NewCachedIconResolver wraps an IconResolver with an in-memory cache
func NewCachedIconResolver(resolver IconResolver) *CachedIconResolver {
	return &CachedIconResolver{
		resolver: resolver,
		cache:    make(map[string][]byte),
	}
}

// FetchIcon returns the cached icon for a code or fetches it
func (c *CachedIconResolver) FetchIcon(ctx context.Context, code string) ([]byte, bool) {
	return c.cached("icon:"+code, func() ([]byte, bool) {
		return c.resolver.FetchIcon(ctx, code)
	})
}

// FetchImage returns the cached image for a URL or fetches it
func (c *CachedIconResolver) FetchImage(ctx context.Context, url string) ([]byte, bool) {
	return c.cached("url:"+url, func() ([]byte, bool) {
		return c.resolver.FetchImage(ctx, url)
	})
}

func (c *CachedIconResolver) cached(key string, fetch func() ([]byte, bool)) ([]byte, bool) {
	c.mu.RLock()
	data, ok := c.cache[key]
	c.mu.RUnlock()
	if ok {
		return data, true
	}

	data, ok = fetch()
	if !ok {
		return nil, false
	}

	c.mu.Lock()
	c.cache[key] = data
	c.mu.Unlock()

	return data, true
}
