package page

import (
	"net/http"
)

// OrganizationsHandler lists every organization with its members.
type OrganizationsHandler struct{ Loader Loader }

func (h OrganizationsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	out, err := h.Loader.Organizations(r.Context())
	if err != nil {
		writeLoaderError(w, err)
		return
	}
	writePage(w, cachePage, out)
}

// OrganizationHandler resolves a member or organization slug.
type OrganizationHandler struct{ Loader Loader }

func (h OrganizationHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	out, err := h.Loader.Organization(r.Context(), r.PathValue("slug"))
	if err != nil {
		writeLoaderError(w, err)
		return
	}
	writePage(w, cachePage, out)
}
