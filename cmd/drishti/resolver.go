// cmd/drishti/resolver.go
package main

import (
	"context"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
	"golang.org/x/time/rate"
)

// Resolver turns a feed entry into the best article text it can get:
// the full linked page when reachable, otherwise the feed's own snippet.
type Resolver struct {
	client  *http.Client
	limiter *rate.Limiter
}

// NewResolver creates a resolver with a bounded per-page timeout
func NewResolver() *Resolver {
	return &Resolver{
		client: &http.Client{
			Timeout: ArticleFetchTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(2), 1),
	}
}

// Resolve returns the resolved text for an entry. Full-page extraction
// failures fall back to the feed snippet; the result may be empty when
// the entry carries no text at all.
func (r *Resolver) Resolve(ctx context.Context, entry FeedEntry) string {
	if text := r.fetchArticleText(ctx, entry.Item.Link); text != "" {
		return text
	}
	return extractCleanContent(entry.Item)
}

// fetchArticleText downloads the linked page and extracts its main text.
// Any failure returns an empty string.
func (r *Resolver) fetchArticleText(ctx context.Context, url string) string {
	if url == "" {
		return ""
	}
	if err := r.limiter.Wait(ctx); err != nil {
		return ""
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ""
	}

	resp, err := r.client.Do(req)
	if err != nil {
		HandleError(ErrorTypeResolver, "resolver", err)
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return ""
	}

	return extractMainText(doc)
}

// articleSelectors is a cascade of common article body selectors, most
// specific first
var articleSelectors = []string{
	"article p",
	".article-body p",
	".post-content p",
	".entry-content p",
	".content p",
	"main p",
	"p",
}

// extractMainText pulls paragraph text out of a parsed page
func extractMainText(doc *goquery.Document) string {
	var paragraphs []string

	for _, selector := range articleSelectors {
		doc.Find(selector).Each(func(i int, s *goquery.Selection) {
			text := strings.TrimSpace(s.Text())
			if len(text) > 20 {
				paragraphs = append(paragraphs, text)
			}
		})
		if len(paragraphs) >= 3 {
			break
		}
	}

	return strings.Join(paragraphs, "\n\n")
}

// extractCleanContent extracts the snippet a feed entry carries inline,
// trying Content then Description (gofeed folds RSS description and Atom
// summary into Description), with markup stripped
func extractCleanContent(item *gofeed.Item) string {
	content := ""
	if item.Content != "" {
		content = item.Content
	} else if item.Description != "" {
		content = item.Description
	}
	return strings.TrimSpace(stripHTML(content))
}

// stripHTML removes every <...> span. Not a real HTML parser; good
// enough for feed snippets.
func stripHTML(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return b.String()
}
