package page

import (
	"net/http"

	"butuhkidul/internal/handler/http/respond"
	pageUC "butuhkidul/internal/usecase/page"
)

// writeLoaderError writes err with the status and message of its page error.
func writeLoaderError(w http.ResponseWriter, err error) {
	w.Header().Set("Cache-Control", cacheNoStore)
	pe := pageUC.AsError(err)
	respond.WriteError(w, pe.Status, respond.NewAppError(pe.Status, pe.Message, pe.Err))
}

// writePage writes v as JSON with the given Cache-Control.
func writePage(w http.ResponseWriter, cacheControl string, v any) {
	w.Header().Set("Cache-Control", cacheControl)
	respond.JSON(w, http.StatusOK, v)
}
