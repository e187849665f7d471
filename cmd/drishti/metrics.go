// cmd/drishti/metrics.go
package main

import (
	"runtime"
	"sync"
	"time"
)

// Metrics holds system and pipeline metrics for one collection
type Metrics struct {
	Timestamp      time.Time `json:"timestamp"`
	MemoryUsageMB  float64   `json:"memory_usage_mb"`
	GoroutineCount int       `json:"goroutine_count"`
	UptimeHours    float64   `json:"uptime_hours"`

	FeedFetches    int64 `json:"feed_fetches"`
	FeedErrors     int64 `json:"feed_errors"`
	ArticlesCached int   `json:"articles_cached"`
	CacheHits      int64 `json:"cache_hits"`
	CacheMisses    int64 `json:"cache_misses"`
	AICalls        int64 `json:"ai_calls"`
	AIErrors       int64 `json:"ai_errors"`
	ErrorCount     int64 `json:"error_count"`
}

// Stats accumulates pipeline counters for the lifetime of the process
type Stats struct {
	mutex       sync.Mutex
	feedFetches int64
	feedErrors  int64
	cacheHits   int64
	cacheMisses int64
	aiCalls     int64
	aiErrors    int64
	errors      int64
}

var (
	stats     Stats
	startTime = time.Now()
)

func (s *Stats) IncrementFeedFetches() { s.add(&s.feedFetches) }
func (s *Stats) IncrementFeedErrors()  { s.add(&s.feedErrors) }
func (s *Stats) IncrementCacheHits()   { s.add(&s.cacheHits) }
func (s *Stats) IncrementCacheMisses() { s.add(&s.cacheMisses) }
func (s *Stats) IncrementAICalls()     { s.add(&s.aiCalls) }
func (s *Stats) IncrementAIErrors()    { s.add(&s.aiErrors) }
func (s *Stats) IncrementErrors()      { s.add(&s.errors) }

func (s *Stats) add(field *int64) {
	s.mutex.Lock()
	*field++
	s.mutex.Unlock()
}

func (s *Stats) snapshot() (feedFetches, feedErrors, cacheHits, cacheMisses, aiCalls, aiErrors, errors int64) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.feedFetches, s.feedErrors, s.cacheHits, s.cacheMisses, s.aiCalls, s.aiErrors, s.errors
}

// collectMetrics gathers runtime and pipeline metrics
func collectMetrics(cachedArticles int) *Metrics {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	metrics := &Metrics{
		Timestamp:      time.Now(),
		MemoryUsageMB:  float64(memStats.Alloc) / 1024 / 1024,
		GoroutineCount: runtime.NumGoroutine(),
		UptimeHours:    time.Since(startTime).Hours(),
		ArticlesCached: cachedArticles,
	}

	metrics.FeedFetches, metrics.FeedErrors,
		metrics.CacheHits, metrics.CacheMisses,
		metrics.AICalls, metrics.AIErrors,
		metrics.ErrorCount = stats.snapshot()

	return metrics
}
