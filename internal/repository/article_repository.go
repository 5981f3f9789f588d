package repository

import (
	"context"

	"butuhkidul/internal/domain/entity"
)

// ArticleListParams contains optional filters for listing articles.
// A nil field is left out of the upstream query.
type ArticleListParams struct {
	Title   *string
	Content *string
	Active  *bool
	Page    *int
	Limit   *int
}

// ArticleRepository reads articles from the village API.
type ArticleRepository interface {
	List(ctx context.Context, params ArticleListParams) (*entity.ArticlesResponse, error)
	GetByID(ctx context.Context, id string) (*entity.ArticleResponse, error)
	// GetBySlug looks an article up by its URL slug.
	GetBySlug(ctx context.Context, slug string) (*entity.ArticleResponse, error)
}
