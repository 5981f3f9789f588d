package page

import (
	"net/http"
)

// HistoriesHandler serves the village history timeline.
type HistoriesHandler struct{ Loader Loader }

func (h HistoriesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	out, err := h.Loader.Histories(r.Context())
	if err != nil {
		writeLoaderError(w, err)
		return
	}
	writePage(w, cachePage, out)
}

// PopulationHandler serves population statistics.
type PopulationHandler struct{ Loader Loader }

func (h PopulationHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	out, err := h.Loader.Population(r.Context())
	if err != nil {
		writeLoaderError(w, err)
		return
	}
	writePage(w, cachePage, out)
}
