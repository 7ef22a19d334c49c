// Package server exposes the web preview: an embedded dashboard page plus a
// JSON API over one computed statistics snapshot.
package server

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/twilightdev/kitmap/internal/heatmap"
	"github.com/twilightdev/kitmap/internal/logger"
	"github.com/twilightdev/kitmap/internal/stats"
)

//go:embed web
var webFS embed.FS

// keyCell is the wire form of one heatmap cell.
type keyCell struct {
	Label     string  `json:"label"`
	Display   string  `json:"display"`
	Width     int     `json:"width"`
	Count     int64   `json:"count"`
	Intensity float64 `json:"intensity"`
	Bucket    int     `json:"bucket"`
}

// Server serves one immutable snapshot. A new snapshot means a new Server;
// renders never mix data from two snapshots.
type Server struct {
	stats  *stats.AllStats
	cells  [][]keyCell
	router *mux.Router
}

// New builds a server over a computed snapshot. The heatmap grid is graded
// once here, not per request.
func New(snapshot *stats.AllStats) *Server {
	hm := heatmap.New(snapshot.KeyFrequencyMap)
	rows := hm.Cells()
	cells := make([][]keyCell, len(rows))
	for i, row := range rows {
		cells[i] = make([]keyCell, len(row))
		for j, c := range row {
			cells[i][j] = keyCell{
				Label:     c.Label,
				Display:   c.Display,
				Width:     c.Width,
				Count:     c.Count,
				Intensity: c.Intensity,
				Bucket:    c.Bucket,
			}
		}
	}

	s := &Server{stats: snapshot, cells: cells, router: mux.NewRouter()}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/stats", s.handleStats).Methods("GET")
	api.HandleFunc("/heatmap", s.handleHeatmap).Methods("GET")

	content, err := fs.Sub(webFS, "web")
	if err != nil {
		// The embedded tree always contains web/; reaching this means a
		// broken build.
		panic(err)
	}
	s.router.PathPrefix("/").Handler(http.FileServer(http.FS(content)))

	s.router.Use(corsMiddleware)
}

// Handler returns the root handler, useful for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, port int) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf("127.0.0.1:%d", port),
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Infof("Shutting down web server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.stats)
}

func (s *Server) handleHeatmap(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{"rows": s.cells})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Errorf("Failed to encode response: %v", err)
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
