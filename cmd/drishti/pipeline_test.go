// cmd/drishti/pipeline_test.go
package main

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

func TestPipelineExtractiveRun(t *testing.T) {
	// article page the resolver will scrape for the summary
	page := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><article>
			<p>The western naval command concluded a three day exercise off the Saurashtra coast.</p>
			<p>Ships from two squadrons practiced interdiction drills with coast guard vessels.</p>
			<p>Officials said the exercise tested coastal surveillance readiness.</p>
		</article></body></html>`)
	}))
	defer page.Close()

	feed := serveRSS(t, rssDocument(rssItem("Navy concludes coastal exercise", page.URL)))
	defer feed.Close()

	cfg := testConfig("http://unused.invalid")
	cfg.EnableAISummary = false
	cfg.OpenAIAPIKey = ""

	p := NewPipeline(cfg, []Source{{Name: "wire", URL: feed.URL, Enabled: true}})
	articles, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if len(articles) != 1 {
		t.Fatalf("Run() produced %d articles, want 1", len(articles))
	}

	a := articles[0]
	if a.Title != "Navy concludes coastal exercise" {
		t.Errorf("Title = %q", a.Title)
	}
	if !strings.HasPrefix(a.Summary, "The western naval command concluded") {
		t.Errorf("Summary = %q, want the extracted opening sentence", a.Summary)
	}
	if a.Link != page.URL {
		t.Errorf("Link = %q, want %q", a.Link, page.URL)
	}
	if a.Published != DateUnknown {
		t.Errorf("Published = %q, want %q for a dateless item", a.Published, DateUnknown)
	}
}

func TestPipelineFallsBackToTitle(t *testing.T) {
	// article link is dead and the feed carries no snippet, so the AI
	// strategy sees too little text and the title becomes the summary
	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	deadURL := dead.URL
	dead.Close()

	feed := serveRSS(t, rssDocument(rssItem("Indian Navy conducts drill off Porbandar coast", deadURL)))
	defer feed.Close()

	var aiCalls int32
	ai := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&aiCalls, 1)
		fmt.Fprint(w, chatCompletionReply("unexpected"))
	}))
	defer ai.Close()

	cfg := testConfig(ai.URL)
	cfg.EnableAISummary = true

	p := NewPipeline(cfg, []Source{{Name: "wire", URL: feed.URL, Enabled: true}})
	articles, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if len(articles) != 1 {
		t.Fatalf("Run() produced %d articles, want 1", len(articles))
	}

	a := articles[0]
	if a.Summary != a.Title {
		t.Errorf("Summary = %q, want the title fallback %q", a.Summary, a.Title)
	}
	if n := atomic.LoadInt32(&aiCalls); n != 0 {
		t.Errorf("model endpoint called %d times for empty article text, want 0", n)
	}

	// the place name wins over the coastal keywords when geotagging
	g := newGeoTaggerWithRand(rand.New(rand.NewSource(3)))
	lat, lon := g.locate(a.Title + a.Summary)
	if lat != 21.6417 || lon != 69.6293 {
		t.Errorf("locate() = (%v, %v), want the porbandar coordinates", lat, lon)
	}
}

func TestPipelineUsesAISummary(t *testing.T) {
	page := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><article>
			<p>`+strings.Repeat("The border units remained on elevated alert through the weekend. ", 5)+`</p>
		</article></body></html>`)
	}))
	defer page.Close()

	feed := serveRSS(t, rssDocument(rssItem("Border alert extended", page.URL)))
	defer feed.Close()

	ai := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, chatCompletionReply("Border units stayed alert. The posture held all weekend."))
	}))
	defer ai.Close()

	cfg := testConfig(ai.URL)
	cfg.EnableAISummary = true

	p := NewPipeline(cfg, []Source{{Name: "wire", URL: feed.URL, Enabled: true}})
	articles, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if len(articles) != 1 {
		t.Fatalf("Run() produced %d articles, want 1", len(articles))
	}
	if articles[0].Summary != "Border units stayed alert. The posture held all weekend." {
		t.Errorf("Summary = %q, want the model summary", articles[0].Summary)
	}
}
