// cmd/drishti/types.go
package main

// Source represents a single RSS feed source configuration
type Source struct {
	Name     string `yaml:"name"`
	URL      string `yaml:"url"`
	Category string `yaml:"category"`
	Enabled  bool   `yaml:"enabled"`
}

// Article is a fetched, resolved and summarized news item held in the cache
type Article struct {
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	Link      string `json:"link"`
	Published string `json:"published"`
}

// GeoArticle is an Article annotated with map coordinates for one
// heatmap request. Coordinates are recomputed per request and are not
// stable for articles placed by the keyword or random tiers.
type GeoArticle struct {
	Article
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// HeatPoint is a [lat, lon, weight] triple consumed by the map heat layer
type HeatPoint [3]float64

// heatmapResponse is the payload of GET /api/heatmap
type heatmapResponse struct {
	Heat     []HeatPoint  `json:"heat"`
	Articles []GeoArticle `json:"articles"`
}
