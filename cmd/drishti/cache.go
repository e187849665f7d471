// cmd/drishti/cache.go
package main

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// refreshFunc produces a fresh article set for the cache
type refreshFunc func(ctx context.Context) ([]Article, error)

// NewsCache is the single process-wide slot of fetched articles. A
// request that finds the slot older than the TTL refreshes it in place;
// the mutex spans the staleness check and the refresh, so concurrent
// requests cannot start duplicate fetch storms.
type NewsCache struct {
	mutex     sync.Mutex
	articles  []Article
	fetchedAt time.Time
	ttl       time.Duration
	refresh   refreshFunc
	// onRefresh, when set, is invoked after a successful refresh
	// with the new article set (dashboard push)
	onRefresh func([]Article)
}

// NewNewsCache creates an empty cache with the given TTL
func NewNewsCache(ttl time.Duration, refresh refreshFunc) *NewsCache {
	return &NewsCache{
		ttl:     ttl,
		refresh: refresh,
	}
}

// SetRefreshHandler registers a callback fired after each refresh
func (c *NewsCache) SetRefreshHandler(handler func([]Article)) {
	c.mutex.Lock()
	c.onRefresh = handler
	c.mutex.Unlock()
}

// Articles returns the cached article set, refreshing first when the
// cache is empty or the TTL has elapsed. A failed refresh leaves any
// previous contents servable; the result is never nil, so handlers
// always marshal a JSON array.
func (c *NewsCache) Articles(ctx context.Context) []Article {
	c.mutex.Lock()

	if !c.fetchedAt.IsZero() && time.Since(c.fetchedAt) < c.ttl {
		out := copyArticles(c.articles)
		c.mutex.Unlock()
		stats.IncrementCacheHits()
		return out
	}

	stats.IncrementCacheMisses()

	articles, err := c.runRefresh(ctx)
	if err != nil {
		out := copyArticles(c.articles)
		c.mutex.Unlock()
		HandleError(ErrorTypeFeed, "cache", err)
		return out
	}

	c.articles = articles
	c.fetchedAt = time.Now()
	handler := c.onRefresh
	c.mutex.Unlock()

	// outside the lock, so a slow consumer cannot wedge the cache
	if handler != nil {
		handler(copyArticles(articles))
	}
	return copyArticles(articles)
}

// FetchedAt reports when the cache was last successfully refreshed
func (c *NewsCache) FetchedAt() time.Time {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.fetchedAt
}

// Size reports the number of cached articles
func (c *NewsCache) Size() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return len(c.articles)
}

// runRefresh invokes the pipeline, converting a panic into an error so
// half-finished state never replaces the previous contents
func (c *NewsCache) runRefresh(ctx context.Context) (articles []Article, err error) {
	defer func() {
		if r := recover(); r != nil {
			articles, err = nil, fmt.Errorf("refresh panic: %v", r)
		}
	}()
	return c.refresh(ctx)
}

func copyArticles(articles []Article) []Article {
	out := make([]Article, len(articles))
	copy(out, articles)
	return out
}
