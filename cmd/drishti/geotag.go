// cmd/drishti/geotag.go
package main

import (
	"math/rand"
	"strings"
	"sync"
	"time"
)

// placeCoord pairs a lowercase place name with its coordinates
type placeCoord struct {
	name string
	lat  float64
	lon  float64
}

// placeCoords is the ordered place list for tier-1 matching. Order
// matters: the first name found as a substring wins, so it is a slice,
// not a map.
var placeCoords = []placeCoord{
	{"ahmedabad", 23.0225, 72.5714},
	{"rajkot", 22.3039, 70.8022},
	{"porbandar", 21.6417, 69.6293},
	{"bhuj", 23.2420, 69.6669},
	{"surat", 21.1702, 72.8311},
	{"vadodara", 22.3072, 73.1812},
}

// coastalKeywords trigger tier-2 placement on the coast
var coastalKeywords = []string{"navy", "naval", "coast", "port", "ship", "fleet"}

// coastalNodes are the named points a coastal match can land on
var coastalNodes = []placeCoord{
	{"okha", 22.4707, 69.0706},
	{"porbandar coast", 21.6417, 69.6293},
	{"dwarka", 22.2442, 68.9685},
	{"kandla", 23.0333, 70.2167},
	{"gujarat coast", 21.5, 69.5},
}

// GeoTagger assigns map coordinates to articles with a three-tier
// heuristic: exact place substring, coastal keyword, then a random
// point inside the region. All tiers get a final jitter so overlapping
// articles do not stack on one pixel.
type GeoTagger struct {
	mutex sync.Mutex
	rng   *rand.Rand
}

// NewGeoTagger creates a tagger with a time-seeded random source
func NewGeoTagger() *GeoTagger {
	return newGeoTaggerWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

func newGeoTaggerWithRand(rng *rand.Rand) *GeoTagger {
	return &GeoTagger{rng: rng}
}

// Tag produces a GeoArticle for one heatmap request. Placement is
// recomputed on every call; only the place and keyword tiers are
// deterministic, and then only up to the jitter term.
func (g *GeoTagger) Tag(article Article) GeoArticle {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	lat, lon := g.locate(article.Title + article.Summary)
	lat += g.uniform(-CoordJitter, CoordJitter)
	lon += g.uniform(-CoordJitter, CoordJitter)

	return GeoArticle{Article: article, Lat: lat, Lon: lon}
}

// locate applies the three matching tiers to the case-folded text and
// returns pre-jitter coordinates. Matching is substring containment
// only; a place name inside an unrelated word still matches.
func (g *GeoTagger) locate(text string) (float64, float64) {
	text = strings.ToLower(text)

	for _, place := range placeCoords {
		if strings.Contains(text, place.name) {
			return place.lat, place.lon
		}
	}

	for _, keyword := range coastalKeywords {
		if strings.Contains(text, keyword) {
			node := coastalNodes[g.rng.Intn(len(coastalNodes))]
			return node.lat, node.lon
		}
	}

	return g.uniform(LatMin, LatMax), g.uniform(LonMin, LonMax)
}

// uniform draws from [min, max]
func (g *GeoTagger) uniform(min, max float64) float64 {
	return min + g.rng.Float64()*(max-min)
}
