package page

import (
	"net/http"

	"butuhkidul/internal/common/pagination"
	"butuhkidul/internal/handler/http/respond"
)

// ArticlesHandler serves one page of active articles.
type ArticlesHandler struct {
	Loader        Loader
	PaginationCfg pagination.Config
}

// ServeHTTP reads ?page and ?limit. Malformed values are a 400.
func (h ArticlesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	params, err := pagination.ParseQuery(r.URL.Query(), h.PaginationCfg)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	out, err := h.Loader.Articles(r.Context(), params)
	if err != nil {
		writeLoaderError(w, err)
		return
	}
	writePage(w, cachePage, out)
}

// ArticleHandler serves a single article by slug.
type ArticleHandler struct{ Loader Loader }

func (h ArticleHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	out, err := h.Loader.Article(r.Context(), r.PathValue("slug"))
	if err != nil {
		writeLoaderError(w, err)
		return
	}
	writePage(w, cachePage, out)
}
