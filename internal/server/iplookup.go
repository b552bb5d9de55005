package server

import (
	"html/template"
	"net/http"

	"github.com/routerlogin/routerlogin/internal/render"
)

// ipLookup renders the loading state only. The browser then
// requests the address and details from ipLookupDetails.
func (h *handlers) ipLookup(_ *http.Request, doc *render.Document, _ *collections) (
	status int, err error) {
	if h.widget == nil {
		return http.StatusOK, h.replaceError(doc, render.ContainerIPDetails,
			render.MessageIPLookupFailed)
	}

	err = h.widget.Loading(doc)
	if err != nil {
		return 0, err
	}
	return http.StatusOK, nil
}

type ipLookupResponse struct {
	Address template.HTML `json:"address"`
	Details template.HTML `json:"details"`
}

// ipLookupDetails responds with the IP address line and the details
// table fragments of the IP lookup page.
func (h *handlers) ipLookupDetails(w http.ResponseWriter, r *http.Request) {
	if h.widget == nil {
		httpError(w, http.StatusNotFound, "IP lookup is disabled")
		return
	}

	address, details, err := h.widget.Details(r.Context(), visitorIP(r))
	if err != nil {
		h.logger.Error(err.Error())
		httpError(w, http.StatusInternalServerError, "")
		return
	}
	h.writeJSON(w, ipLookupResponse{Address: address, Details: details})
}

func (h *handlers) ipQuickFragment(w http.ResponseWriter, r *http.Request) {
	if h.widget == nil {
		httpError(w, http.StatusNotFound, "IP lookup is disabled")
		return
	}
	fragment, err := h.widget.QuickLookup(r.Context(), visitorIP(r))
	h.writeFragment(w, fragment, err)
}
