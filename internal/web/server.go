package web

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/emiliopalmerini/compass/internal/ports"
)

type Server struct {
	router      *chi.Mux
	port        int
	defaultUser string
	logs        ports.LogRepository
	configs     ports.ConfigRepository
	metrics     ports.MetricsExporter
}

func NewServer(
	port int,
	defaultUser string,
	logs ports.LogRepository,
	configs ports.ConfigRepository,
	metrics ports.MetricsExporter,
) *Server {
	s := &Server{
		router:      chi.NewRouter(),
		port:        port,
		defaultUser: defaultUser,
		logs:        logs,
		configs:     configs,
		metrics:     metrics,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)

	s.router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/logs", s.handleListLogs)
		r.Get("/logs/{date}", s.handleGetLog)
		r.Put("/logs/{date}", s.handlePutLog)
		r.Delete("/logs/{date}", s.handleDeleteLog)

		r.Post("/events/bulk", s.handleBulkEvents)

		r.Get("/config", s.handleGetConfig)
		r.Put("/config", s.handlePutConfig)

		r.Get("/stats", s.handleStats)
		r.Get("/stats/heatmap", s.handleHeatmap)
		r.Get("/report/weekly", s.handleWeeklyReport)

		r.Get("/export/logs", s.handleExportLogs)
	})
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	fmt.Printf("Starting server at http://localhost:%d\n", s.port)

	// Handle graceful shutdown
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			fmt.Printf("Server shutdown error: %v\n", err)
		}
	}()

	err := server.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil // Graceful shutdown
	}
	return err
}
