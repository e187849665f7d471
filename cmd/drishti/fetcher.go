// cmd/drishti/fetcher.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
	"golang.org/x/time/rate"
)

// FeedEntry is one raw item from a parsed feed, prior to resolution
type FeedEntry struct {
	Item       *gofeed.Item
	SourceName string
}

// Fetcher retrieves news entries from RSS feeds
type Fetcher struct {
	client  *http.Client
	parser  *gofeed.Parser
	limiter *rate.Limiter
}

// NewFetcher creates a new feed fetcher
func NewFetcher(userAgent string) *Fetcher {
	parser := gofeed.NewParser()
	parser.UserAgent = userAgent
	return &Fetcher{
		client: &http.Client{
			Timeout: DefaultTimeout,
		},
		parser: parser,
		// two outbound fetches per second keeps Google News happy
		limiter: rate.NewLimiter(rate.Limit(2), 1),
	}
}

// FetchAll retrieves entries from all sources in source order, keeping at
// most MaxEntriesPerSource entries per source in feed order. A failing
// source yields zero entries and does not abort the run.
func (f *Fetcher) FetchAll(ctx context.Context, sources []Source) []FeedEntry {
	var entries []FeedEntry

	for _, source := range sources {
		items, err := f.fetchSource(ctx, source)
		if err != nil {
			stats.IncrementFeedErrors()
			HandleError(ErrorTypeFeed, "fetcher", fmt.Errorf("source %s: %v", source.Name, err))
			continue
		}
		entries = append(entries, items...)
	}

	return entries
}

// fetchSource retrieves and parses a single feed
func (f *Fetcher) fetchSource(ctx context.Context, source Source) ([]FeedEntry, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	feed, err := f.fetchFeed(ctx, source.URL)
	if err != nil {
		return nil, err
	}

	stats.IncrementFeedFetches()

	var entries []FeedEntry
	for _, item := range feed.Items {
		if len(entries) >= MaxEntriesPerSource {
			break
		}
		// Skip items without required fields
		if item.Title == "" || item.Link == "" {
			continue
		}
		entries = append(entries, FeedEntry{Item: item, SourceName: source.Name})
	}

	Logger().Debug("Fetched %d entries from %s", len(entries), source.Name)
	return entries, nil
}

// fetchFeed retrieves and parses a feed document
func (f *Fetcher) fetchFeed(ctx context.Context, url string) (*gofeed.Feed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", f.parser.UserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return f.parser.Parse(resp.Body)
}

// formatPublished renders a feed timestamp for the API, with a sentinel
// when the source provides none
func formatPublished(t *time.Time) string {
	if t == nil || t.IsZero() {
		return DateUnknown
	}
	return t.Format(PublishedLayout)
}
