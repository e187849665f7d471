// cmd/drishti/config.go
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v2"
)

// Config holds application configuration
type Config struct {
	Port            int
	CacheTTL        time.Duration
	SourcesPath     string
	UserAgentString string

	OpenAIAPIKey    string
	OpenAIBaseURL   string
	OpenAIModel     string
	EnableAISummary bool

	// Cron spec for the optional cache warmer; empty disables it
	WarmCron string

	LogPath  string
	LogLevel LogLevel
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Port:            GetEnvInt("PORT", DefaultPort),
		CacheTTL:        time.Duration(GetEnvInt("CACHE_TTL_SECONDS", int(DefaultCacheTTL/time.Second))) * time.Second,
		SourcesPath:     GetEnvString("SOURCES_PATH", SourcesPath),
		UserAgentString: GetEnvString("USER_AGENT", DefaultUserAgent),
		OpenAIAPIKey:    GetEnvString("OPENAI_API_KEY", ""),
		OpenAIBaseURL:   GetEnvString("OPENAI_BASE_URL", DefaultOpenAIBaseURL),
		OpenAIModel:     GetEnvString("OPENAI_MODEL", DefaultOpenAIModel),
		EnableAISummary: GetEnvBool("ENABLE_AI_SUMMARY", false),
		WarmCron:        GetEnvString("WARM_CRON", ""),
		LogPath:         GetEnvString("LOG_PATH", "logs/drishti.log"),
		LogLevel:        ParseLogLevel(GetEnvString("LOG_LEVEL", "info")),
	}
}

// Validate checks the configuration for invalid combinations
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.CacheTTL <= 0 {
		return fmt.Errorf("cache TTL must be positive, got %s", c.CacheTTL)
	}
	if c.EnableAISummary && c.OpenAIAPIKey == "" {
		return fmt.Errorf("ENABLE_AI_SUMMARY requires OPENAI_API_KEY")
	}
	return nil
}

// sourcesFile is the YAML structure of config/sources.yml
type sourcesFile struct {
	Sources []Source `yaml:"sources"`
}

// LoadSources reads the feed source list, preserving file order.
// A default file is written if none exists yet.
func LoadSources(path string) ([]Source, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := writeDefaultSources(path); err != nil {
			return nil, fmt.Errorf("failed to write default sources: %v", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sources file: %v", err)
	}

	var file sourcesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse sources file: %v", err)
	}

	enabled := make([]Source, 0, len(file.Sources))
	for _, src := range file.Sources {
		if !src.Enabled {
			continue
		}
		if src.URL == "" {
			return nil, fmt.Errorf("source %q has no URL", src.Name)
		}
		enabled = append(enabled, src)
	}
	return enabled, nil
}

// writeDefaultSources materializes the built-in Gujarat defence queries
func writeDefaultSources(path string) error {
	defaults := sourcesFile{Sources: []Source{
		{Name: "Defence Gujarat", URL: "https://news.google.com/rss/search?q=defence+Gujarat", Category: "defence", Enabled: true},
		{Name: "Indian Navy Gujarat", URL: "https://news.google.com/rss/search?q=Indian+Navy+Gujarat", Category: "navy", Enabled: true},
		{Name: "Indian Army Gujarat", URL: "https://news.google.com/rss/search?q=Indian+Army+Gujarat", Category: "army", Enabled: true},
		{Name: "Military Base Gujarat", URL: "https://news.google.com/rss/search?q=military+base+Gujarat", Category: "defence", Enabled: true},
		{Name: "Indian Air Force Gujarat", URL: "https://news.google.com/rss/search?q=Indian+Air+Force+Gujarat", Category: "airforce", Enabled: true},
		{Name: "Pakistan Gujarat", URL: "https://news.google.com/rss/search?q=Pakistan+Gujarat", Category: "border", Enabled: true},
	}}

	data, err := yaml.Marshal(&defaults)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
