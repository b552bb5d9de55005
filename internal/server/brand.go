package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/routerlogin/routerlogin/internal/filter"
	"github.com/routerlogin/routerlogin/internal/render"
)

const brandSlugSuffix = "-router-login"

// brandFromSlug returns the brand of a brand page URL path segment
// such as tp-link-router-login.
func brandFromSlug(slug string) (brand string, ok bool) {
	brand, ok = strings.CutSuffix(slug, brandSlugSuffix)
	return brand, ok && brand != ""
}

func (h *handlers) brand(w http.ResponseWriter, r *http.Request) {
	brand, ok := brandFromSlug(chi.URLParam(r, "slug"))
	if !ok {
		h.page(render.PageNotFound, h.notFound)(w, r)
		return
	}

	h.page(render.PageBrand, func(r *http.Request, doc *render.Document,
		data *collections) (status int, err error) {
		return h.fillBrand(r, doc, data, brand)
	})(w, r)
}

func (h *handlers) fillBrand(r *http.Request, doc *render.Document,
	data *collections, brand string) (status int, err error) {
	doc.Brand = render.BrandName(brand)
	doc.BrandSlug = brand
	doc.SetTitle(doc.Brand + " Router Login - Default IP, Username & Password")

	routers, err := data.Routers(r.Context())
	if err != nil {
		h.logger.Error("loading routers: " + err.Error())
		for _, container := range []string{
			render.ContainerBrandRouterList, render.ContainerBrandIPList, render.ContainerDirectLogin,
		} {
			err = h.replaceError(doc, container, render.MessageRoutersLoadFailed)
			if err != nil {
				return 0, err
			}
		}
		return http.StatusOK, nil
	}

	brandRouters := filter.ByBrand(routers, brand)
	filtered := filter.BrandRouters(brandRouters, brand, doc.Search)
	list, err := h.renderer.BrandRouterList(brand, brandRouters, filtered)
	if err != nil {
		return 0, fmt.Errorf("rendering brand router list: %w", err)
	}
	doc.Replace(render.ContainerBrandRouterList, list)

	ips := filter.UniqueIPs(brandRouters)
	ipList, err := h.renderer.BrandIPList(ips)
	if err != nil {
		return 0, fmt.Errorf("rendering brand IP list: %w", err)
	}
	doc.Replace(render.ContainerBrandIPList, ipList)

	buttons, err := h.renderer.DirectLoginButtons(ips)
	if err != nil {
		return 0, fmt.Errorf("rendering direct login buttons: %w", err)
	}
	doc.Replace(render.ContainerDirectLogin, buttons)

	defaultIP, err := h.renderer.DefaultIP(ips)
	if err != nil {
		return 0, fmt.Errorf("rendering default IP address: %w", err)
	}
	doc.Replace(render.ContainerDefaultIP, defaultIP)

	return http.StatusOK, nil
}

// brandFragment responds with the brand router list only, for the live
// search of brand pages.
func (h *handlers) brandFragment(w http.ResponseWriter, r *http.Request) {
	brand := chi.URLParam(r, "brand")
	routers, err := h.loader.Routers(r.Context())
	if err != nil {
		h.logger.Error("loading routers: " + err.Error())
		fragment, err := h.renderer.Error(render.MessageRoutersLoadFailed)
		h.writeFragment(w, fragment, err)
		return
	}
	brandRouters := filter.ByBrand(routers, brand)
	filtered := filter.BrandRouters(brandRouters, brand, r.URL.Query().Get("search"))
	fragment, err := h.renderer.BrandRouterList(brand, brandRouters, filtered)
	h.writeFragment(w, fragment, err)
}
