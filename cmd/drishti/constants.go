// cmd/drishti/constants.go
package main

import "time"

// Application constants
const (
	AppName    = "Drishti"
	AppVersion = "1.0.0"

	// Gujarat bounding box used for random placement
	LatMin = 20.0
	LatMax = 24.7
	LonMin = 68.0
	LonMax = 74.5

	// Geotagging
	CoordJitter = 0.2
	HeatWeight  = 0.8

	// Pipeline limits
	MaxEntriesPerSource = 10
	MaxNewsletterItems  = 25
	MaxSummarySentences = 3
	MinAISummaryInput   = 100
	MaxAISummaryInput   = 3000
	MaxSummaryTokens    = 150
	MaxAnalysisInput    = 4000

	// Time-related constants
	DefaultCacheTTL     = 600 * time.Second
	DefaultTimeout      = 30 * time.Second
	ArticleFetchTimeout = 15 * time.Second
	AICallTimeout       = 45 * time.Second

	// Sentinels
	DateUnknown   = "Date unknown"
	NoSummaryText = "No summary available."
	NoNewsText    = "No news available for analysis."

	// Formats and paths
	PublishedLayout = "02 Jan 2006 15:04"
	SourcesPath     = "config/sources.yml"
	TemplatesDir    = "web/templates"
	StaticDir       = "web/static"

	// Defaults
	DefaultPort          = 8080
	DefaultOpenAIBaseURL = "https://api.groq.com/openai/v1"
	DefaultOpenAIModel   = "llama-3.3-70b-versatile"
	DefaultUserAgent     = "DrishtiNews/1.0"
)
