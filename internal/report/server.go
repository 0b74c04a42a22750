// Package report serves generated artifacts over HTTP: a browsable artifact
// index, the raw files, an analysis trigger endpoint and Prometheus metrics.
package report

import (
	"context"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/scaffoldhq/scaffold/internal/analyzer"
	"github.com/scaffoldhq/scaffold/internal/config"
	"github.com/scaffoldhq/scaffold/internal/domain"
	"github.com/scaffoldhq/scaffold/internal/generator"
	"github.com/scaffoldhq/scaffold/internal/observability"
	"github.com/scaffoldhq/scaffold/pkg/httputil"
)

// Analyzer analyzes one page
type Analyzer interface {
	Analyze(ctx context.Context, url string, auth analyzer.AuthFunc) (*domain.PageInfo, error)
}

// Generator produces the artifact set for an analyzed page
type Generator interface {
	GenerateAll(info *domain.PageInfo) (*generator.ArtifactSet, error)
}

// Server serves generated artifacts and runs on-demand analyses
type Server struct {
	cfg       config.ReportConfig
	outputDir string
	analyzer  Analyzer
	generator Generator
	metrics   *observability.Metrics
	logger    *zap.Logger
	router    chi.Router
}

// NewServer creates a report server rooted at outputDir. The analyzer and
// generator may be nil, which disables the analysis endpoint.
func NewServer(cfg config.ReportConfig, outputDir string, an Analyzer, gen Generator, metrics *observability.Metrics, logger *zap.Logger) *Server {
	s := &Server{
		cfg:       cfg,
		outputDir: outputDir,
		analyzer:  an,
		generator: gen,
		metrics:   metrics,
		logger:    logger,
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()

	r.Use(recoveryMiddleware(s.logger))
	r.Use(loggingMiddleware(s.logger))
	if s.metrics != nil {
		r.Use(s.metrics.HTTPMiddleware)
	}
	if s.cfg.RateLimitEnabled {
		r.Use(rateLimitMiddleware(s.cfg.RequestsPerSec, s.cfg.BurstSize))
	}
	if s.cfg.CORSEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: s.cfg.CORSAllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
	}

	r.Get("/healthz", s.handleHealth)
	if s.metrics != nil {
		r.Handle("/metrics", s.metrics.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/artifacts", s.handleListArtifacts)
		r.Post("/analyses", s.handleCreateAnalysis)
	})

	fileServer := http.StripPrefix("/artifacts/", http.FileServer(http.Dir(s.outputDir)))
	r.Get("/artifacts/*", fileServer.ServeHTTP)

	return r
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start runs the server until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("report server listening",
			zap.String("addr", s.cfg.Addr()),
			zap.String("output_dir", s.outputDir))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		s.logger.Info("report server shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ArtifactEntry is one row of the artifact index
type ArtifactEntry struct {
	Path       string    `json:"path"`
	Size       int64     `json:"size"`
	ModifiedAt time.Time `json:"modified_at"`
	Kind       string    `json:"kind"`
}

func (s *Server) handleListArtifacts(w http.ResponseWriter, r *http.Request) {
	entries := []ArtifactEntry{}

	err := filepath.WalkDir(s.outputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(s.outputDir, path)
		if err != nil {
			return err
		}
		entries = append(entries, ArtifactEntry{
			Path:       filepath.ToSlash(rel),
			Size:       info.Size(),
			ModifiedAt: info.ModTime(),
			Kind:       artifactKind(rel),
		})
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			httputil.JSON(w, http.StatusOK, entries)
			return
		}
		s.logger.Error("artifact walk failed", zap.Error(err))
		httputil.JSONError(w, http.StatusInternalServerError,
			domain.ErrCodeInternal, "failed to index artifacts", nil)
		return
	}

	httputil.JSON(w, http.StatusOK, entries)
}

// artifactKind guesses what an artifact is from its path
func artifactKind(rel string) string {
	rel = filepath.ToSlash(rel)
	switch {
	case strings.HasSuffix(rel, "_data.json"):
		return "test-data"
	case strings.HasSuffix(rel, "_page.py"):
		return "page-object"
	case strings.HasSuffix(rel, ".py"):
		return "test-suite"
	case strings.HasSuffix(rel, ".md"):
		return "test-plan"
	default:
		return "file"
	}
}

type createAnalysisRequest struct {
	URL string `json:"url"`
}

type createAnalysisResponse struct {
	RunID    string          `json:"run_id"`
	Page     string          `json:"page"`
	PageType domain.PageType `json:"page_type"`
	Files    []string        `json:"files"`
}

func (s *Server) handleCreateAnalysis(w http.ResponseWriter, r *http.Request) {
	if s.analyzer == nil || s.generator == nil {
		httputil.JSONError(w, http.StatusNotFound,
			domain.ErrCodeNotFound, "analysis is not enabled on this server", nil)
		return
	}

	var req createAnalysisRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.ErrorFromDomain(w, err)
		return
	}
	if req.URL == "" {
		httputil.ErrorFromDomain(w, domain.ValidationError("url", "url is required"))
		return
	}

	start := time.Now()
	info, err := s.analyzer.Analyze(r.Context(), req.URL, nil)
	if err != nil {
		if s.metrics != nil {
			s.metrics.RecordAnalysis("", "error", 0, time.Since(start))
		}
		s.logger.Error("analysis failed", zap.String("url", req.URL), zap.Error(err))
		httputil.ErrorFromDomain(w, err)
		return
	}
	if s.metrics != nil {
		s.metrics.RecordAnalysis(string(info.PageType), "success", len(info.Elements), time.Since(start))
	}

	genStart := time.Now()
	set, err := s.generator.GenerateAll(info)
	if err != nil {
		httputil.ErrorFromDomain(w, err)
		return
	}
	if err := set.WriteFiles(s.outputDir); err != nil {
		s.logger.Error("artifact write failed", zap.Error(err))
		httputil.ErrorFromDomain(w, domain.GenerationError("artifact files", err))
		return
	}
	if s.metrics != nil {
		s.metrics.RecordGeneration(set.Paths(), time.Since(genStart))
	}

	httputil.JSON(w, http.StatusCreated, createAnalysisResponse{
		RunID:    set.RunID.String(),
		Page:     set.PageName,
		PageType: info.PageType,
		Files:    set.Paths(),
	})
}
