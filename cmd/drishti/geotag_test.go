// cmd/drishti/geotag_test.go
package main

import (
	"math"
	"math/rand"
	"testing"
)

func testTagger() *GeoTagger {
	return newGeoTaggerWithRand(rand.New(rand.NewSource(42)))
}

func TestLocateKnownPlace(t *testing.T) {
	tests := []struct {
		name string
		text string
		lat  float64
		lon  float64
	}{
		{"ahmedabad", "blast reported near ahmedabad airport", 23.0225, 72.5714},
		{"case folded", "Rajkot military exercise announced", 22.3039, 70.8022},
		{"porbandar", "Coast guard intercepts vessel off Porbandar", 21.6417, 69.6293},
		{"substring inside word", "Suratgarh brigade on the move", 21.1702, 72.8311},
	}

	g := testTagger()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lat, lon := g.locate(tt.text)
			if lat != tt.lat || lon != tt.lon {
				t.Errorf("locate(%q) = (%v, %v), want (%v, %v)", tt.text, lat, lon, tt.lat, tt.lon)
			}
		})
	}
}

func TestLocatePlaceBeatsCoastalKeyword(t *testing.T) {
	g := testTagger()
	lat, lon := g.locate("indian navy drill near bhuj")
	if lat != 23.2420 || lon != 69.6669 {
		t.Errorf("locate() = (%v, %v), want the bhuj coordinates", lat, lon)
	}
}

func TestLocatePlaceOrderWins(t *testing.T) {
	// both names are present; the earlier entry takes precedence
	g := testTagger()
	lat, lon := g.locate("convoy moved from vadodara to ahmedabad")
	if lat != 23.0225 || lon != 72.5714 {
		t.Errorf("locate() = (%v, %v), want the ahmedabad coordinates", lat, lon)
	}
}

func TestLocateCoastalKeyword(t *testing.T) {
	g := testTagger()
	for i := 0; i < 20; i++ {
		lat, lon := g.locate("naval fleet patrols western waters")
		found := false
		for _, node := range coastalNodes {
			if lat == node.lat && lon == node.lon {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("locate() = (%v, %v), not a coastal node", lat, lon)
		}
	}
}

func TestLocateFallbackInsideRegion(t *testing.T) {
	g := testTagger()
	for i := 0; i < 20; i++ {
		lat, lon := g.locate("budget committee meets in delhi")
		if lat < LatMin || lat > LatMax || lon < LonMin || lon > LonMax {
			t.Fatalf("locate() fallback = (%v, %v), outside region box", lat, lon)
		}
	}
}

func TestTagJitterStaysNearPlace(t *testing.T) {
	g := testTagger()
	article := Article{Title: "Ahmedabad cantonment expansion", Summary: "details pending"}

	for i := 0; i < 20; i++ {
		geo := g.Tag(article)
		if math.Abs(geo.Lat-23.0225) > CoordJitter || math.Abs(geo.Lon-72.5714) > CoordJitter {
			t.Fatalf("Tag() = (%v, %v), beyond jitter range of ahmedabad", geo.Lat, geo.Lon)
		}
		if geo.Title != article.Title {
			t.Fatalf("Tag() dropped the article payload")
		}
	}
}
