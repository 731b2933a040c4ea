package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/rpgo/dividend-projector/internal/calculation"
	"github.com/rpgo/dividend-projector/internal/config"
	"github.com/rs/cors"
)

// Options configures a Server.
type Options struct {
	CORSOrigins []string
	CacheTTL    time.Duration
	Logger      *slog.Logger
}

// Server exposes the projection engine over HTTP.
type Server struct {
	engine *calculation.CalculationEngine
	parser *config.InputParser
	cache  *cache.Cache
	logger *slog.Logger
	router *gin.Engine
	cors   *cors.Cors
}

// NewServer builds the router and its middleware.
func NewServer(engine *calculation.CalculationEngine, opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	s := &Server{
		engine: engine,
		parser: &config.InputParser{Catalog: engine.Catalog},
		cache:  cache.New(ttl, 2*ttl),
		logger: logger,
		cors: cors.New(cors.Options{
			AllowedOrigins: opts.CORSOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type"},
		}),
	}
	s.router = s.buildRouter()
	return s
}

// Handler returns the HTTP handler with CORS applied.
func (s *Server) Handler() http.Handler {
	return s.cors.Handler(s.router)
}

func (s *Server) buildRouter() *gin.Engine {
	router := gin.New()
	router.Use(requestLogger(s.logger))
	router.Use(errorHandler(s.logger))

	router.GET("/health", s.health)

	api := router.Group("/api/v1")
	{
		api.POST("/projections", s.project)
		api.POST("/projections/compare", s.compare)

		api.GET("/funds", s.listFunds)
		api.GET("/funds/:ticker", s.getFund)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: ErrorDetail{Code: "NOT_FOUND", Message: "Not found"}})
	})
	return router
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	httpSrv := &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting API server", "addr", addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down API server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return httpSrv.Shutdown(shutdownCtx)
}
