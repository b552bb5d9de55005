package server

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/routerlogin/routerlogin/internal/render"
	"github.com/routerlogin/routerlogin/internal/theme"
)

func (h *handlers) themeToggle(w http.ResponseWriter, r *http.Request) {
	doc := render.NewDocument(render.PageNone, r.URL.Path)
	controller := h.initTheme(w, r, doc)
	err := controller.Toggle()
	if err != nil {
		h.logger.Error("toggling theme: " + err.Error())
		httpError(w, http.StatusInternalServerError, "")
		return
	}
	http.Redirect(w, r, h.backPath(r), http.StatusSeeOther)
}

func (h *handlers) themeSet(w http.ResponseWriter, r *http.Request) {
	value, err := theme.Parse(chi.URLParam(r, "theme"))
	if err != nil {
		httpError(w, http.StatusBadRequest, err.Error())
		return
	}

	doc := render.NewDocument(render.PageNone, r.URL.Path)
	controller := h.initTheme(w, r, doc)
	if controller.Current() != value {
		err = controller.Set(value)
		if err != nil {
			h.logger.Error("setting theme: " + err.Error())
			httpError(w, http.StatusInternalServerError, "")
			return
		}
	}
	http.Redirect(w, r, h.backPath(r), http.StatusSeeOther)
}

// backPath returns the path of the referring page if it is a page
// of this site, and the site root path otherwise.
func (h *handlers) backPath(r *http.Request) string {
	rootPath := h.rootPath + "/"
	referer, err := url.Parse(r.Referer())
	if err != nil || referer.Path == "" {
		return rootPath
	}
	if referer.Host != "" && referer.Host != r.Host {
		return rootPath
	}
	if referer.Path != h.rootPath && !strings.HasPrefix(referer.Path, rootPath) {
		return rootPath
	}
	if referer.RawQuery != "" {
		return referer.Path + "?" + referer.RawQuery
	}
	return referer.Path
}
