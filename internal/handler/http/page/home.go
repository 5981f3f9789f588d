package page

import (
	"net/http"
)

// HomeHandler serves the landing page data.
type HomeHandler struct{ Loader Loader }

// ServeHTTP always answers 200; failed sections carry their own error
// message in the body.
func (h HomeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writePage(w, cacheHome, h.Loader.Home(r.Context()))
}
