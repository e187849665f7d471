// cmd/validate-feeds/main.go
//
// Standalone checker for config/sources.yml. Fetches every enabled
// feed concurrently and reports which ones parse as RSS/Atom, so a
// broken source can be caught before the aggregator silently skips it.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/mmcdole/gofeed"
	"gopkg.in/yaml.v2"
)

type source struct {
	Name     string `yaml:"name"`
	URL      string `yaml:"url"`
	Category string `yaml:"category"`
	Enabled  bool   `yaml:"enabled"`
}

type sourcesFile struct {
	Sources []source `yaml:"sources"`
}

type result struct {
	source  source
	ok      bool
	skipped bool
	message string
	elapsed time.Duration
}

func main() {
	path := flag.String("sources", "config/sources.yml", "path to the sources file")
	timeout := flag.Duration("timeout", 10*time.Second, "per-feed fetch timeout")
	flag.Parse()

	data, err := os.ReadFile(*path)
	if err != nil {
		fmt.Printf("Error reading sources file: %v\n", err)
		os.Exit(1)
	}

	var file sourcesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		fmt.Printf("Error parsing sources file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Validating %d sources from %s\n\n", len(file.Sources), *path)

	client := &http.Client{Timeout: *timeout}
	results := make(chan result, len(file.Sources))

	var wg sync.WaitGroup
	for _, src := range file.Sources {
		wg.Add(1)
		go func(src source) {
			defer wg.Done()
			results <- checkSource(client, src)
		}(src)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var all []result
	for r := range results {
		all = append(all, r)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].source.Name < all[j].source.Name })

	var valid, invalid int
	var failedNames []string
	for _, r := range all {
		switch {
		case r.skipped:
			fmt.Printf("SKIP %-30s disabled\n", r.source.Name)
		case r.ok:
			fmt.Printf("OK   %-30s [%5dms] %s\n", r.source.Name, r.elapsed.Milliseconds(), r.message)
			valid++
		default:
			fmt.Printf("FAIL %-30s [%5dms] %s\n", r.source.Name, r.elapsed.Milliseconds(), r.message)
			invalid++
			failedNames = append(failedNames, r.source.Name)
		}
	}

	fmt.Printf("\nValid feeds:   %d\n", valid)
	fmt.Printf("Invalid feeds: %d\n", invalid)

	if invalid > 0 {
		fmt.Println("\nFailing sources:")
		for _, name := range failedNames {
			fmt.Printf("- %s\n", name)
		}
		os.Exit(1)
	}
}

func checkSource(client *http.Client, src source) result {
	if !src.Enabled {
		return result{source: src, skipped: true}
	}

	start := time.Now()
	req, err := http.NewRequest(http.MethodGet, src.URL, nil)
	if err != nil {
		return result{source: src, message: fmt.Sprintf("invalid URL: %v", err), elapsed: time.Since(start)}
	}
	req.Header.Set("User-Agent", "DrishtiNews/1.0 feed validator")

	resp, err := client.Do(req)
	if err != nil {
		return result{source: src, message: fmt.Sprintf("request failed: %v", err), elapsed: time.Since(start)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return result{source: src, message: fmt.Sprintf("HTTP %s", resp.Status), elapsed: time.Since(start)}
	}

	feed, err := gofeed.NewParser().Parse(resp.Body)
	if err != nil {
		return result{source: src, message: fmt.Sprintf("not a parseable feed: %v", err), elapsed: time.Since(start)}
	}

	return result{
		source:  src,
		ok:      true,
		message: fmt.Sprintf("%d items", len(feed.Items)),
		elapsed: time.Since(start),
	}
}
