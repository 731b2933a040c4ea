package api

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/rpgo/dividend-projector/internal/calculation"
	"github.com/rpgo/dividend-projector/internal/domain"
	"github.com/rpgo/dividend-projector/internal/output"
)

const cacheHeader = "X-Cache"

var contentTypes = map[string]string{
	"json":         "application/json; charset=utf-8",
	"csv":          "text/csv; charset=utf-8",
	"detailed-csv": "text/csv; charset=utf-8",
	"html":         "text/html; charset=utf-8",
	"markdown":     "text/markdown; charset=utf-8",
	"console":      "text/plain; charset=utf-8",
}

// health handles GET /health
func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "cached_results": s.cache.ItemCount()})
}

// project handles POST /api/v1/projections
func (s *Server) project(c *gin.Context) {
	var req ProjectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if req.Name == "" {
		req.Name = "projection"
	}
	config := &domain.Configuration{Scenarios: []domain.Scenario{{
		Name:       req.Name,
		Fund:       req.Fund,
		Parameters: req.Parameters,
	}}}

	result, ok := s.run(c, "projection", config)
	if !ok {
		return
	}
	if c.Query("format") == "" {
		c.JSON(http.StatusOK, result.Scenarios[0])
		return
	}
	s.render(c, result)
}

// compare handles POST /api/v1/projections/compare
func (s *Server) compare(c *gin.Context) {
	var req CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	result, ok := s.run(c, "compare", &domain.Configuration{Scenarios: req.Scenarios})
	if !ok {
		return
	}
	if c.Query("format") == "" {
		c.JSON(http.StatusOK, result)
		return
	}
	s.render(c, result)
}

// run validates and projects the configuration, serving repeated requests
// from the cache. It writes the error response itself and reports false.
func (s *Server) run(c *gin.Context, kind string, config *domain.Configuration) (*domain.ScenarioComparison, bool) {
	key, err := cacheKey(kind, config)
	if err == nil {
		if cached, found := s.cache.Get(key); found {
			c.Header(cacheHeader, "HIT")
			return cached.(*domain.ScenarioComparison), true
		}
	}
	c.Header(cacheHeader, "MISS")

	if err := s.parser.ValidateConfiguration(config); err != nil {
		writeEngineError(c, err, http.StatusBadRequest)
		return nil, false
	}
	result, err := s.engine.RunScenarios(c.Request.Context(), config)
	if err != nil {
		s.logger.Error("projection failed", "error", err)
		writeEngineError(c, err, http.StatusInternalServerError)
		return nil, false
	}
	if key != "" {
		s.cache.Set(key, result, cache.DefaultExpiration)
	}
	return result, true
}

// render writes the comparison in the formatter named by ?format=.
func (s *Server) render(c *gin.Context, result *domain.ScenarioComparison) {
	format := output.NormalizeFormatName(c.Query("format"))
	var buf bytes.Buffer
	if err := output.WriteReport(&buf, result, format); err != nil {
		if errors.Is(err, output.ErrUnsupportedFormat) {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: ErrorDetail{
					Code:    "UNSUPPORTED_FORMAT",
					Message: err.Error(),
					Details: map[string]any{"formats": output.AvailableFormatterNames()},
				},
			})
			return
		}
		s.logger.Error("failed to render report", "format", format, "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: ErrorDetail{Code: "RENDER_ERROR", Message: err.Error()},
		})
		return
	}
	c.Data(http.StatusOK, contentTypes[format], buf.Bytes())
}

// listFunds handles GET /api/v1/funds
func (s *Server) listFunds(c *gin.Context) {
	catalog := s.engine.Catalog
	if catalog == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Error: ErrorDetail{Code: "CATALOG_UNAVAILABLE", Message: "no fund catalog is loaded"},
		})
		return
	}
	c.JSON(http.StatusOK, FundsResponse{
		Source:     catalog.Source,
		Funds:      catalog.Funds(),
		Statistics: catalog.Statistics(),
	})
}

// getFund handles GET /api/v1/funds/:ticker
func (s *Server) getFund(c *gin.Context) {
	catalog := s.engine.Catalog
	if catalog == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Error: ErrorDetail{Code: "CATALOG_UNAVAILABLE", Message: "no fund catalog is loaded"},
		})
		return
	}
	fund, err := catalog.Lookup(c.Param("ticker"))
	if err != nil {
		writeEngineError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, fund)
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error: ErrorDetail{Code: "INVALID_REQUEST", Message: err.Error()},
	})
}

// writeEngineError maps engine and validation errors to HTTP responses.
// Errors with no specific mapping get the fallback status.
func writeEngineError(c *gin.Context, err error, fallback int) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: ErrorDetail{
				Code:    "INVALID_CONFIGURATION",
				Message: err.Error(),
				Details: map[string]any{"field": verr.Field, "reason": verr.Reason},
			},
		})
	case errors.Is(err, calculation.ErrFundNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error: ErrorDetail{Code: "FUND_NOT_FOUND", Message: err.Error()},
		})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Error: ErrorDetail{Code: "CANCELLED", Message: err.Error()},
		})
	case fallback == http.StatusBadRequest:
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: ErrorDetail{Code: "INVALID_CONFIGURATION", Message: err.Error()},
		})
	default:
		c.JSON(fallback, ErrorResponse{
			Error: ErrorDetail{Code: "INTERNAL_ERROR", Message: err.Error()},
		})
	}
}

// cacheKey hashes the canonical JSON encoding of the request.
func cacheKey(kind string, config *domain.Configuration) (string, error) {
	b, err := json.Marshal(config)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(append([]byte(kind+":"), b...))
	return hex.EncodeToString(sum[:]), nil
}
