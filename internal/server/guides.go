package server

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/routerlogin/routerlogin/internal/filter"
	"github.com/routerlogin/routerlogin/internal/render"
)

func (h *handlers) guides(r *http.Request, doc *render.Document, data *collections) (
	status int, err error) {
	brand := r.URL.Query().Get("brand")

	routers, err := data.Routers(r.Context())
	if err != nil {
		h.logger.Error("loading routers: " + err.Error())
		err = h.replaceError(doc, render.ContainerRouterList, render.MessageRoutersLoadFailed)
		if err != nil {
			return 0, err
		}
	} else {
		list, err := h.renderer.RouterList(filter.Routers(routers, doc.Search, brand))
		if err != nil {
			return 0, fmt.Errorf("rendering router list: %w", err)
		}
		doc.Replace(render.ContainerRouterList, list)
	}

	options, err := h.renderer.BrandOptions(filter.Brands(routers), brand)
	if err != nil {
		return 0, fmt.Errorf("rendering brand options: %w", err)
	}
	doc.Replace(render.ContainerBrandFilter, options)

	return http.StatusOK, nil
}

func (h *handlers) routerDetail(r *http.Request, doc *render.Document, data *collections) (
	status int, err error) {
	key := chi.URLParam(r, "key")

	routers, err := data.Routers(r.Context())
	if err != nil {
		h.logger.Error("loading routers: " + err.Error())
		return http.StatusOK, h.replaceError(doc, render.ContainerRouterDetail,
			render.MessageRoutersLoadFailed)
	}

	router, ok := filter.FindRouter(routers, key)
	if !ok {
		fragment, err := h.renderer.RouterNotFound()
		if err != nil {
			return 0, fmt.Errorf("rendering router not found: %w", err)
		}
		doc.Replace(render.ContainerRouterDetail, fragment)
		return http.StatusNotFound, nil
	}

	doc.SetTitle(router.IP + " - Router Login Guide")
	fragment, err := h.renderer.RouterDetail(router)
	if err != nil {
		return 0, fmt.Errorf("rendering router detail: %w", err)
	}
	doc.Replace(render.ContainerRouterDetail, fragment)
	return http.StatusOK, nil
}

// routersFragment responds with the router list only, for the live search
// of the guides page.
func (h *handlers) routersFragment(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	routers, err := h.loader.Routers(r.Context())
	if err != nil {
		h.logger.Error("loading routers: " + err.Error())
		fragment, err := h.renderer.Error(render.MessageRoutersLoadFailed)
		h.writeFragment(w, fragment, err)
		return
	}
	filtered := filter.Routers(routers, query.Get("search"), query.Get("brand"))
	fragment, err := h.renderer.RouterList(filtered)
	h.writeFragment(w, fragment, err)
}
