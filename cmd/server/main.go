package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/hlynes/personagen/filter"
	"github.com/hlynes/personagen/internal/bulk"
	"github.com/hlynes/personagen/internal/logger"
	"github.com/hlynes/personagen/locale"
	"github.com/hlynes/personagen/persona"
)

// Request defaults matching the documented API behavior.
const (
	defaultLocale    = "en_US"
	defaultSeed      = 12345
	defaultBatchSize = 10
)

type Server struct {
	store   locale.Store
	gen     *persona.Generator
	exports *bulk.Manager
	router  *chi.Mux
}

func NewServer(store locale.Store, exportDir string) (*Server, error) {
	gen := persona.New(store)

	exports, err := bulk.NewManager(gen, bulk.Config{Dir: exportDir})
	if err != nil {
		return nil, fmt.Errorf("failed to create export manager: %w", err)
	}

	s := &Server{
		store:   store,
		gen:     gen,
		exports: exports,
	}

	s.setupRoutes()

	return s, nil
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// Health check
	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/generate", s.handleGenerate)
		r.Get("/locales", s.handleLocales)

		r.Route("/exports", func(r chi.Router) {
			r.Post("/", s.handleCreateExport)
			r.Get("/", s.handleListExports)
			r.Get("/{jobID}", s.handleGetExport)
			r.Delete("/{jobID}", s.handleCancelExport)
		})
	})

	s.router = r
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Close stops the export workers and releases the locale store.
func (s *Server) Close() error {
	s.exports.Close()
	return s.store.Close()
}

// Health check handler
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(); err != nil {
		respondJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "unhealthy",
			"error":  err.Error(),
		})
		return
	}

	infos, err := s.store.Locales()
	if err != nil {
		respondJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "unhealthy",
			"error":  err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"status":  "healthy",
		"locales": len(infos),
	})
}

// Generation handler
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	loc := req.Locale
	if loc == "" {
		loc = defaultLocale
	}
	seed := int64(defaultSeed)
	if req.Seed != nil {
		seed = *req.Seed
	}
	batchIndex := 0
	if req.BatchIndex != nil {
		batchIndex = *req.BatchIndex
	}
	batchSize := defaultBatchSize
	if req.BatchSize != nil {
		batchSize = *req.BatchSize
	}

	if batchSize < persona.MinBatchSize || batchSize > persona.MaxBatchSize {
		respondError(w, http.StatusBadRequest, "Batch size must be between 1 and 100", nil)
		return
	}
	if seed < 0 || seed > persona.MaxSeed {
		respondError(w, http.StatusBadRequest, "Seed must be between 0 and 2147483647", nil)
		return
	}
	if batchIndex < 0 {
		respondError(w, http.StatusBadRequest, "Batch index must not be negative", nil)
		return
	}

	var flt *filter.Filter
	if req.Filter != "" {
		var err error
		flt, err = filter.Compile(req.Filter)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid filter expression", err)
			return
		}
	}

	records, err := s.gen.Batch(loc, seed, batchIndex, batchSize)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	records, err = flt.Apply(records)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "filter evaluation failed", err)
		return
	}

	users := make([]userView, 0, len(records))
	for _, rec := range records {
		users = append(users, viewOf(rec))
	}

	respondJSON(w, http.StatusOK, generateResponse{
		Users:      users,
		Locale:     loc,
		Seed:       seed,
		BatchIndex: batchIndex,
		BatchSize:  batchSize,
		Count:      len(users),
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	})
}

// Locale listing handler
func (s *Server) handleLocales(w http.ResponseWriter, r *http.Request) {
	infos, err := s.store.Locales()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list locales", err)
		return
	}

	views := make([]localeView, 0, len(infos))
	for _, info := range infos {
		views = append(views, localeView{Code: info.Code, Name: info.Name})
	}

	respondJSON(w, http.StatusOK, localesResponse{Locales: views})
}

// Export handlers
func (s *Server) handleCreateExport(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	loc := req.Locale
	if loc == "" {
		loc = defaultLocale
	}
	seed := int64(defaultSeed)
	if req.Seed != nil {
		seed = *req.Seed
	}

	if req.Count < 1 {
		respondError(w, http.StatusBadRequest, "Count must be at least 1", nil)
		return
	}

	var flt *filter.Filter
	if req.Filter != "" {
		var err error
		flt, err = filter.Compile(req.Filter)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid filter expression", err)
			return
		}
	}

	job, err := s.exports.Submit(bulk.Request{
		Locale: loc,
		Seed:   seed,
		Start:  req.Start,
		Count:  req.Count,
		Filter: flt,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusAccepted, job)
}

func (s *Server) handleListExports(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"exports": s.exports.Jobs(),
	})
}

func (s *Server) handleGetExport(w http.ResponseWriter, r *http.Request) {
	job, err := s.exports.Job(chi.URLParam(r, "jobID"))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, job)
}

func (s *Server) handleCancelExport(w http.ResponseWriter, r *http.Request) {
	if err := s.exports.Cancel(chi.URLParam(r, "jobID")); err != nil {
		respondDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Helper functions
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string, err error) {
	response := map[string]string{
		"error": message,
	}
	if err != nil {
		response["details"] = err.Error()
	}
	respondJSON(w, status, response)
}

// respondDomainError maps engine and export errors onto HTTP status
// codes in one place.
func respondDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, locale.ErrNotFound):
		respondError(w, http.StatusNotFound, "locale not found", err)
	case errors.Is(err, persona.ErrInvalidSeed) || errors.Is(err, persona.ErrInvalidBatch):
		respondError(w, http.StatusBadRequest, "invalid generation parameters", err)
	case errors.Is(err, bulk.ErrNotFound):
		respondError(w, http.StatusNotFound, "export job not found", err)
	case errors.Is(err, bulk.ErrFinished):
		respondError(w, http.StatusConflict, "export job already finished", err)
	default:
		respondError(w, http.StatusInternalServerError, "internal error", err)
	}
}

// openStore builds the locale store selected by LOCALE_STORE and wraps
// it in the read-through cache. CACHE_TTL accepts a Go duration.
func openStore() (locale.Store, error) {
	kind := os.Getenv("LOCALE_STORE")

	var dsn string
	switch kind {
	case "postgres":
		dsn = os.Getenv("DATABASE_URL")
		if dsn == "" {
			return nil, errors.New("DATABASE_URL is required for the postgres store")
		}
	case "bolt":
		dsn = os.Getenv("LOCALE_DB")
		if dsn == "" {
			return nil, errors.New("LOCALE_DB is required for the bolt store")
		}
	}

	inner, err := locale.Open(kind, dsn)
	if err != nil {
		return nil, err
	}

	cfg := locale.DefaultCacheConfig()
	if ttl := os.Getenv("CACHE_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			inner.Close()
			return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
		}
		cfg.TTL = d
	}

	return locale.NewCachedStore(inner, cfg), nil
}

func main() {
	store, err := openStore()
	if err != nil {
		logger.Fatal("failed to open locale store", "error", err)
	}

	exportDir := os.Getenv("EXPORT_DIR")
	if exportDir == "" {
		exportDir = "exports"
	}

	server, err := NewServer(store, exportDir)
	if err != nil {
		logger.Fatal("failed to create server", "error", err)
	}
	defer server.Close()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	httpServer := &http.Server{
		Addr:         ":" + port,
		Handler:      server,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown handling
	go func() {
		logger.Info("server starting", "port", port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed to start", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	logger.Info("server stopped")
}
