package page

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"butuhkidul/internal/domain/entity"
	"butuhkidul/internal/observability/metrics"
	"butuhkidul/internal/repository"
)

// HomeArticlesLimit is the number of latest articles shown on the home page.
const HomeArticlesLimit = 3

// HomePage is the data of the landing page. Each section is loaded on its
// own: a failed section has nil data and a message, the other is unaffected.
type HomePage struct {
	VillageData   *entity.VillagesResponse `json:"village_data"`
	ArticlesData  *entity.ArticlesResponse `json:"articles_data"`
	VillageError  *string                  `json:"village_error"`
	ArticlesError *string                  `json:"articles_error"`
}

// Home loads the village record and the latest active articles
// concurrently. It never fails: section failures are reported in the
// *Error fields of the result.
func (s *Service) Home(ctx context.Context) *HomePage {
	var (
		g        errgroup.Group
		panicked atomic.Bool

		villages    *entity.VillagesResponse
		villagesErr error
		articles    *entity.ArticlesResponse
		articlesErr error
	)

	// Goroutines never return an error so that one failing section does
	// not affect the other.
	g.Go(s.guard(ctx, &panicked, func() {
		villages, villagesErr = s.VillageRepo.List(ctx)
	}))
	g.Go(s.guard(ctx, &panicked, func() {
		articles, articlesErr = s.ArticleRepo.List(ctx, repository.ArticleListParams{
			Active: ptr(true),
			Limit:  ptr(HomeArticlesLimit),
			Page:   ptr(1),
		})
	}))
	_ = g.Wait()

	if panicked.Load() {
		metrics.RecordPageLoad("home", "panic")
		return &HomePage{
			VillageError:  ptr(msgVillageUnexpected),
			ArticlesError: ptr(msgArticlesUnexpected),
		}
	}

	page := &HomePage{}
	if villagesErr != nil {
		page.VillageError = ptr(sectionMessage(villagesErr, msgVillageFallback))
		s.sectionFailed(ctx, "village", villagesErr)
	} else {
		page.VillageData = villages
	}
	if articlesErr != nil {
		page.ArticlesError = ptr(sectionMessage(articlesErr, msgArticlesFallback))
		s.sectionFailed(ctx, "articles", articlesErr)
	} else {
		page.ArticlesData = articles
	}

	if page.VillageError != nil || page.ArticlesError != nil {
		metrics.RecordPageLoad("home", "degraded")
	} else {
		metrics.RecordPageLoad("home", "ok")
	}
	return page
}

// guard wraps fn for errgroup.Group.Go and turns a panic into a flag.
func (s *Service) guard(ctx context.Context, panicked *atomic.Bool, fn func()) func() error {
	return func() error {
		defer func() {
			if r := recover(); r != nil {
				panicked.Store(true)
				s.log(ctx).ErrorContext(ctx, "panic while loading home page",
					slog.String("panic", fmt.Sprint(r)))
			}
		}()
		fn()
		return nil
	}
}

func (s *Service) sectionFailed(ctx context.Context, section string, err error) {
	metrics.RecordSectionFailure("home", section)
	s.log(ctx).WarnContext(ctx, "home page section failed",
		slog.String("section", section),
		slog.Any("error", err))
}

// sectionMessage returns err's message, or fallback when it is empty.
func sectionMessage(err error, fallback string) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}

func ptr[T any](v T) *T {
	return &v
}
