package villageapi

import (
	"context"
	"net/url"

	"butuhkidul/internal/domain/entity"
	"butuhkidul/internal/repository"
)

// ArticlesAPI implements repository.ArticleRepository against /v1/articles.
type ArticlesAPI struct {
	Client *Client
}

var _ repository.ArticleRepository = (*ArticlesAPI)(nil)

// List calls GET /v1/articles with the filters that are set.
func (a *ArticlesAPI) List(ctx context.Context, params repository.ArticleListParams) (*entity.ArticlesResponse, error) {
	q := &query{}
	q.addString("title", params.Title)
	q.addString("content", params.Content)
	q.addBool("active", params.Active)
	q.addInt("page", params.Page)
	q.addInt("limit", params.Limit)

	var out entity.ArticlesResponse
	if err := a.Client.get(ctx, "articles.list", withQuery("/v1/articles", q), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetByID calls GET /v1/articles/id/{id}.
func (a *ArticlesAPI) GetByID(ctx context.Context, id string) (*entity.ArticleResponse, error) {
	var out entity.ArticleResponse
	if err := a.Client.get(ctx, "articles.get_by_id", "/v1/articles/id/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetBySlug calls GET /v1/articles/{slug}.
func (a *ArticlesAPI) GetBySlug(ctx context.Context, slug string) (*entity.ArticleResponse, error) {
	var out entity.ArticleResponse
	if err := a.Client.get(ctx, "articles.get_by_slug", "/v1/articles/"+url.PathEscape(slug), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
