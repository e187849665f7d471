// cmd/drishti/pipeline.go
package main

import (
	"context"
	"fmt"
)

// Pipeline runs one full refresh: fetch feeds, resolve article text,
// summarize. The output is what the cache stores.
type Pipeline struct {
	sources  []Source
	fetcher  *Fetcher
	resolver *Resolver
	// summarizers are tried in order until one returns a non-empty
	// result; the entry title is the terminal fallback
	summarizers []Summarizer
}

// NewPipeline assembles the refresh pipeline from configuration.
// With AI summaries enabled the chain is AI-then-title; otherwise the
// extractive strategy, which never comes back empty.
func NewPipeline(cfg *Config, sources []Source) *Pipeline {
	var summarizers []Summarizer
	if cfg.EnableAISummary && cfg.OpenAIAPIKey != "" {
		summarizers = append(summarizers, NewAISummarizer(cfg))
	} else {
		summarizers = append(summarizers, ExtractiveSummarizer{})
	}

	return &Pipeline{
		sources:     sources,
		fetcher:     NewFetcher(cfg.UserAgentString),
		resolver:    NewResolver(),
		summarizers: summarizers,
	}
}

// Run executes a full refresh and returns the new article set. Source
// and article failures have already degraded to fallbacks by the time
// entries arrive here, so the only error path is a panic downstream,
// which the cache converts into keeping its previous contents.
func (p *Pipeline) Run(ctx context.Context) ([]Article, error) {
	entries := p.fetcher.FetchAll(ctx, p.sources)

	articles := make([]Article, 0, len(entries))
	for _, entry := range entries {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("refresh aborted: %v", ctx.Err())
		}

		text := p.resolver.Resolve(ctx, entry)
		articles = append(articles, Article{
			Title:     entry.Item.Title,
			Summary:   p.summarize(ctx, entry, text),
			Link:      entry.Item.Link,
			Published: formatPublished(entry.Item.PublishedParsed),
		})
	}

	Logger().Info("Pipeline refresh produced %d articles from %d sources", len(articles), len(p.sources))
	return articles, nil
}

// summarize walks the fallback chain; the result is never empty because
// the fetcher guarantees a non-empty title
func (p *Pipeline) summarize(ctx context.Context, entry FeedEntry, text string) string {
	for _, s := range p.summarizers {
		if summary := s.Summarize(ctx, text); summary != "" {
			return summary
		}
	}
	return entry.Item.Title
}
