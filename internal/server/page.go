package server

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/routerlogin/routerlogin/internal/filter"
	"github.com/routerlogin/routerlogin/internal/render"
	"github.com/routerlogin/routerlogin/internal/theme"
	"golang.org/x/sync/errgroup"
)

// fillFunc fills the page containers of the document and returns
// the HTTP status code of the page. A non nil error means the page
// cannot be rendered at all.
type fillFunc func(r *http.Request, doc *render.Document, data *collections) (
	status int, err error)

const popularRoutersCount = 4

func (h *handlers) page(page render.Page, fill fillFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc := render.NewDocument(page, r.URL.Path)
		doc.Search = r.URL.Query().Get("search")

		h.initTheme(w, r, doc)

		data := newCollections(h.loader)
		status := http.StatusOK
		var group errgroup.Group
		group.Go(func() (err error) {
			status, err = fill(r, doc, data)
			return err
		})
		group.Go(func() error {
			return h.popularRouters(r, doc, data)
		})
		err := group.Wait()
		if err == nil && h.widget != nil {
			err = h.widget.QuickDisplay(doc, visitorIP(r))
		}
		if err != nil {
			h.logger.Error(err.Error())
			httpError(w, http.StatusInternalServerError, "")
			return
		}

		h.writePage(w, status, doc)
	}
}

func (h *handlers) writePage(w http.ResponseWriter, status int, doc *render.Document) {
	var buffer bytes.Buffer
	err := h.renderer.Page(&buffer, doc)
	if err != nil {
		h.logger.Error(err.Error())
		httpError(w, http.StatusInternalServerError, "")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buffer.WriteTo(w)
}

// initTheme sets the theme of the document. It must be called
// before anything is written to w, since it may set a cookie.
func (h *handlers) initTheme(w http.ResponseWriter, r *http.Request,
	root theme.Root) *theme.Controller {
	w.Header().Set("Accept-CH", "Sec-CH-Prefers-Color-Scheme")
	w.Header().Add("Vary", "Sec-CH-Prefers-Color-Scheme")

	storage, err := theme.NewSessionStorage(h.sessionStore, w, r)
	if err != nil {
		h.logger.Warn(err.Error())
	}
	ambient := theme.Ambient(r.Header.Get("Sec-CH-Prefers-Color-Scheme"), h.defaultTheme)
	controller := theme.New(storage, root, ambient)
	err = controller.Init()
	if err != nil {
		h.logger.Error("initializing theme: " + err.Error())
	}
	return controller
}

// popularRouters fills the footer links. A load failure is only logged.
func (h *handlers) popularRouters(r *http.Request, doc *render.Document,
	data *collections) (err error) {
	routers, err := data.Routers(r.Context())
	if err != nil {
		h.logger.Error("loading popular routers: " + err.Error())
		return nil
	}

	fragment, err := h.renderer.PopularRouters(filter.Popular(routers, popularRoutersCount))
	if err != nil {
		return fmt.Errorf("rendering popular routers: %w", err)
	}
	doc.Replace(render.ContainerPopularRouters, fragment)
	return nil
}

// replaceError replaces the container content with an error alert.
func (h *handlers) replaceError(doc *render.Document, container, message string) (err error) {
	fragment, err := h.renderer.Error(message)
	if err != nil {
		return fmt.Errorf("rendering error alert: %w", err)
	}
	doc.Replace(container, fragment)
	return nil
}

func (h *handlers) home(*http.Request, *render.Document, *collections) (status int, err error) {
	return http.StatusOK, nil
}

func (h *handlers) notFound(*http.Request, *render.Document, *collections) (status int, err error) {
	return http.StatusNotFound, nil
}
