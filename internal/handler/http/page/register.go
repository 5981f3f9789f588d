// Package page exposes the page loaders over HTTP. Each route returns the
// JSON a front end needs to render one page of the village site.
package page

import (
	"context"
	"net/http"

	"butuhkidul/internal/common/pagination"
	"butuhkidul/internal/config"
	"butuhkidul/internal/usecase/organization"
	pageUC "butuhkidul/internal/usecase/page"
)

// Loader is the set of page loaders served by this package.
// *pageUC.Service implements it.
type Loader interface {
	Home(ctx context.Context) *pageUC.HomePage
	Organizations(ctx context.Context) (*pageUC.OrganizationsPage, error)
	Organization(ctx context.Context, slug string) (*organization.Resolution, error)
	Articles(ctx context.Context, params pagination.Params) (*pageUC.ArticlesPage, error)
	Article(ctx context.Context, slug string) (*pageUC.ArticlePage, error)
	Histories(ctx context.Context) (*pageUC.HistoriesPage, error)
	Population(ctx context.Context) (*pageUC.PopulationPage, error)
	Feed(ctx context.Context) (string, error)
	SiteInfo() config.Site
}

// Cache-Control values per route.
const (
	cacheHome    = "public, max-age=300, s-maxage=600"
	cachePage    = "public, max-age=60, s-maxage=300"
	cacheFeed    = "public, max-age=900"
	cacheNoStore = "no-store"
)

// Register registers the page routes with mux.
func Register(mux *http.ServeMux, loader Loader, paginationCfg pagination.Config) {
	mux.Handle("GET /pages/home", HomeHandler{Loader: loader})
	mux.Handle("GET /pages/organizations", OrganizationsHandler{Loader: loader})
	mux.Handle("GET /pages/organizations/{slug}", OrganizationHandler{Loader: loader})
	mux.Handle("GET /pages/articles", ArticlesHandler{Loader: loader, PaginationCfg: paginationCfg})
	mux.Handle("GET /pages/articles/{slug}", ArticleHandler{Loader: loader})
	mux.Handle("GET /pages/histories", HistoriesHandler{Loader: loader})
	mux.Handle("GET /pages/population", PopulationHandler{Loader: loader})
	mux.Handle("GET /site", SiteHandler{Loader: loader})
	mux.Handle("GET /feed.xml", FeedHandler{Loader: loader})
}
