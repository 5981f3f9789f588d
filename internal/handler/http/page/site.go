package page

import (
	"log/slog"
	"net/http"

	"butuhkidul/internal/observability/logging"
)

// SiteHandler serves site metadata and navigation.
type SiteHandler struct{ Loader Loader }

func (h SiteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writePage(w, cacheHome, h.Loader.SiteInfo())
}

// FeedHandler serves the RSS feed of the latest articles.
type FeedHandler struct{ Loader Loader }

func (h FeedHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rss, err := h.Loader.Feed(r.Context())
	if err != nil {
		writeLoaderError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	w.Header().Set("Cache-Control", cacheFeed)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(rss)); err != nil {
		logging.FromContext(r.Context()).Warn("feed: failed to write response", slog.Any("error", err))
	}
}
