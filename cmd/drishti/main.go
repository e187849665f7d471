// cmd/drishti/main.go
package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
)

func main() {
	fmt.Println(AppName + " v" + AppVersion + " starting up...")

	// .env is optional; environment wins either way
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg := LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if err := InitLogger(cfg.LogPath, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer Logger().Close()
	defer RecoverFromPanic("main")

	InitErrorSystem(100) // keep the last 100 error events

	sources, err := LoadSources(cfg.SourcesPath)
	if err != nil {
		Logger().Error("Failed to load sources: %v", err)
		os.Exit(1)
	}
	Logger().Info("Loaded %d feed sources", len(sources))

	pipeline := NewPipeline(cfg, sources)
	cache := NewNewsCache(cfg.CacheTTL, pipeline.Run)
	cache.SetRefreshHandler(func(articles []Article) {
		notifyWebSocketClients("articles_refreshed", map[string]int{"count": len(articles)})
	})

	if err := CreateDefaultTemplates(); err != nil {
		Logger().Error("Failed to create dashboard templates: %v", err)
		os.Exit(1)
	}

	warmCron, err := StartWarmCron(cfg, cache)
	if err != nil {
		Logger().Error("Failed to start cache warmer: %v", err)
		os.Exit(1)
	}
	if warmCron != nil {
		defer warmCron.Stop()
	}

	server := NewServer(cfg, cache, NewGeoTagger(), NewAnalyzer(cfg))

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		Logger().Error("HTTP server failed: %v", err)
		os.Exit(1)
	case sig := <-sigCh:
		Logger().Info("Received signal %v, shutting down", sig)
	}
}
