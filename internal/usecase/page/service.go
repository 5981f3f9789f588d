// Package page assembles the data each page of the village website needs.
// Loaders fetch from the village API through the repository interfaces and
// return either page data or a *Error naming the status to respond with.
package page

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"butuhkidul/internal/common/pagination"
	"butuhkidul/internal/config"
	"butuhkidul/internal/observability/logging"
	"butuhkidul/internal/observability/metrics"
	"butuhkidul/internal/repository"
	"butuhkidul/internal/utils/markdown"
)

// Service provides the page loaders.
type Service struct {
	VillageRepo    repository.VillageRepository
	ArticleRepo    repository.ArticleRepository
	UnitRepo       repository.UnitRepository
	PopulationRepo repository.PopulationRepository

	// Site is the public site metadata used by the feed and the site loader.
	Site config.Site
	// Pagination configures the article listing. Zero value means
	// pagination.DefaultConfig().
	Pagination pagination.Config
	// Renderer converts markdown content. Nil uses the package default.
	Renderer *markdown.Renderer
	// Logger is the base logger. Nil uses slog.Default().
	Logger *slog.Logger
}

// log returns s.Logger annotated with the request ID carried by ctx.
func (s *Service) log(ctx context.Context) *slog.Logger {
	base := s.Logger
	if base == nil {
		base = slog.Default()
	}
	return logging.WithRequestID(ctx, base)
}

func (s *Service) renderHTML(src string) string {
	if s.Renderer != nil {
		return s.Renderer.Parse(src)
	}
	return markdown.Parse(src)
}

func (s *Service) excerpt(src string) string {
	if s.Renderer != nil {
		return s.Renderer.Excerpt(src, markdown.DefaultExcerptLength)
	}
	return markdown.Excerpt(src, markdown.DefaultExcerptLength)
}

func (s *Service) paginationConfig() pagination.Config {
	if s.Pagination == (pagination.Config{}) {
		return pagination.DefaultConfig()
	}
	return s.Pagination
}

// finish records the outcome of a loader and converts err into a *Error.
// Unexpected errors are logged here; 4xx outcomes are not.
func (s *Service) finish(ctx context.Context, name string, err error) error {
	if err == nil {
		metrics.RecordPageLoad(name, "ok")
		return nil
	}
	pe := AsError(err)
	metrics.RecordPageLoad(name, strconv.Itoa(pe.Status))
	if pe.Status >= http.StatusInternalServerError {
		s.log(ctx).ErrorContext(ctx, "page load failed",
			slog.String("page", name),
			slog.String("message", pe.Message),
			slog.Any("error", errors.Unwrap(pe)))
	}
	return pe
}
