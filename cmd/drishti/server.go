// cmd/drishti/server.go
package main

import (
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gorilla/mux"
)

// Server wires the pipeline output to the HTTP API and dashboard
type Server struct {
	cfg      *Config
	router   *mux.Router
	cache    *NewsCache
	tagger   *GeoTagger
	analyzer *Analyzer
}

// NewServer creates the HTTP server and registers all routes
func NewServer(cfg *Config, cache *NewsCache, tagger *GeoTagger, analyzer *Analyzer) *Server {
	s := &Server{
		cfg:      cfg,
		router:   mux.NewRouter(),
		cache:    cache,
		tagger:   tagger,
		analyzer: analyzer,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.PathPrefix("/static/").Handler(
		http.StripPrefix("/static/", http.FileServer(http.Dir(StaticDir))))

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/heatmap", s.handleHeatmap).Methods("GET")
	api.HandleFunc("/newsletters", s.handleNewsletters).Methods("GET")
	api.HandleFunc("/ai-analysis", s.handleAIAnalysis).Methods("GET")
	api.HandleFunc("/status", s.handleStatus).Methods("GET")
	api.HandleFunc("/metrics", s.handleMetrics).Methods("GET")
	api.HandleFunc("/ws", s.handleWebsocket)

	s.router.HandleFunc("/", s.handleHome)
	s.router.HandleFunc("/healthcheck", s.handleHealthCheck)
}

// Start runs the HTTP server; it blocks until the listener fails
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	Logger().Info("Starting dashboard on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.router)
}

// handleHeatmap serves articles with freshly computed coordinates plus
// the heat layer points. Geotags are recomputed on every request.
func (s *Server) handleHeatmap(w http.ResponseWriter, r *http.Request) {
	articles := s.cache.Articles(r.Context())

	heat := make([]HeatPoint, 0, len(articles))
	geoArticles := make([]GeoArticle, 0, len(articles))

	for _, article := range articles {
		geo := s.tagger.Tag(article)
		heat = append(heat, HeatPoint{geo.Lat, geo.Lon, HeatWeight})
		geoArticles = append(geoArticles, geo)
	}

	respondWithJSON(w, http.StatusOK, heatmapResponse{Heat: heat, Articles: geoArticles})
}

// handleNewsletters serves the cached article list, capped for the
// sidebar
func (s *Server) handleNewsletters(w http.ResponseWriter, r *http.Request) {
	articles := s.cache.Articles(r.Context())
	if len(articles) > MaxNewsletterItems {
		articles = articles[:MaxNewsletterItems]
	}
	respondWithJSON(w, http.StatusOK, articles)
}

// handleAIAnalysis serves the strategic assessment. Failures come back
// as data in the normal response shape, not as HTTP errors.
func (s *Server) handleAIAnalysis(w http.ResponseWriter, r *http.Request) {
	articles := s.cache.Articles(r.Context())

	analysis, err := s.analyzer.Analyze(r.Context(), articles)
	if err != nil {
		HandleError(ErrorTypeAI, "analyzer", err)
		analysis = fmt.Sprintf("AI Error: %v", err)
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"analysis": analysis})
}

// handleHome renders the dashboard page
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	tmpl, err := template.ParseFiles(filepath.Join(TemplatesDir, "index.html"))
	if err != nil {
		http.Error(w, fmt.Sprintf("Error parsing template: %v", err), http.StatusInternalServerError)
		return
	}

	data := map[string]interface{}{
		"AppName": AppName,
		"Version": AppVersion,
	}
	if err := tmpl.Execute(w, data); err != nil {
		Logger().Error("Error executing template: %v", err)
	}
}

// handleHealthCheck provides a simple health check endpoint
func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{
		"status":  "running",
		"version": AppVersion,
		"uptime":  time.Since(startTime).String(),
	})
}

// handleStatus returns cache freshness and recent errors
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	var errors []*ErrorEvent
	if errorBuffer != nil {
		errors = errorBuffer.GetRecent(10)
	}

	fetchedAt := s.cache.FetchedAt()
	lastFetch := ""
	if !fetchedAt.IsZero() {
		lastFetch = fetchedAt.Format(time.RFC3339)
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"status":          "running",
		"version":         AppVersion,
		"uptime":          time.Since(startTime).String(),
		"articles_cached": s.cache.Size(),
		"last_fetch":      lastFetch,
		"recent_errors":   errors,
	})
}

// handleMetrics returns runtime and pipeline metrics
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, collectMetrics(s.cache.Size()))
}

// respondWithError sends a JSON error response
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"Failed to marshal JSON response"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
