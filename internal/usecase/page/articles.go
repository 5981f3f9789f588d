package page

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"butuhkidul/internal/common/pagination"
	"butuhkidul/internal/domain/entity"
	"butuhkidul/internal/repository"
)

// ArticleSummary is an article card: the article plus a plain-text excerpt.
type ArticleSummary struct {
	entity.Article
	Excerpt string `json:"excerpt"`
}

// ArticlesPage is one page of the active article listing.
type ArticlesPage struct {
	Articles   []ArticleSummary    `json:"articles"`
	Pagination pagination.Metadata `json:"pagination"`
}

// Articles loads one page of active articles. An invalid page or limit is a 400.
func (s *Service) Articles(ctx context.Context, params pagination.Params) (*ArticlesPage, error) {
	p, err := s.articles(ctx, params)
	return p, s.finish(ctx, "articles", err)
}

func (s *Service) articles(ctx context.Context, params pagination.Params) (*ArticlesPage, error) {
	cfg := s.paginationConfig()
	if params.Limit == 0 {
		params.Limit = cfg.DefaultLimit
	}
	if err := params.Validate(cfg); err != nil {
		if params.Page < 1 {
			return nil, newError(http.StatusBadRequest, msgInvalidPage, err)
		}
		return nil, newError(http.StatusBadRequest, msgInvalidLimit, err)
	}

	resp, err := s.ArticleRepo.List(ctx, repository.ArticleListParams{
		Active: ptr(true),
		Page:   ptr(params.Page),
		Limit:  ptr(params.Limit),
	})
	if err != nil {
		return nil, err
	}
	if resp == nil || resp.Data == nil {
		return nil, newError(http.StatusInternalServerError, msgArticlesFallback, nil)
	}

	data := resp.Data
	out := &ArticlesPage{
		Articles:   make([]ArticleSummary, 0, len(data.Articles)),
		Pagination: pagination.NewMetadata(params, data.TotalData, data.TotalPage),
	}
	for _, a := range data.Articles {
		out.Articles = append(out.Articles, ArticleSummary{Article: a, Excerpt: s.excerpt(a.Content)})
	}
	return out, nil
}

// ArticlePage is the article detail page.
type ArticlePage struct {
	Article     entity.Article `json:"article"`
	ContentHTML string         `json:"content_html"`
	Excerpt     string         `json:"excerpt"`
}

// Article loads an article by slug and renders its markdown content.
// Unknown and inactive articles are a 404.
func (s *Service) Article(ctx context.Context, slug string) (*ArticlePage, error) {
	p, err := s.article(ctx, slug)
	return p, s.finish(ctx, "article", err)
}

func (s *Service) article(ctx context.Context, slug string) (*ArticlePage, error) {
	if strings.TrimSpace(slug) == "" {
		return nil, newError(http.StatusNotFound, msgArticleNotFound, nil)
	}

	resp, err := s.ArticleRepo.GetBySlug(ctx, slug)
	if errors.Is(err, entity.ErrNotFound) {
		return nil, newError(http.StatusNotFound, msgArticleNotFound, err)
	}
	if err != nil {
		return nil, err
	}
	if resp == nil || resp.Data == nil {
		return nil, newError(http.StatusInternalServerError, msgLoadArticle, nil)
	}
	if !resp.Data.Active {
		return nil, newError(http.StatusNotFound, msgArticleNotFound, nil)
	}

	a := *resp.Data
	return &ArticlePage{
		Article:     a,
		ContentHTML: s.renderHTML(a.Content),
		Excerpt:     s.excerpt(a.Content),
	}, nil
}
