package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/routerlogin/routerlogin/internal/filter"
	"github.com/routerlogin/routerlogin/internal/loader"
	"github.com/routerlogin/routerlogin/internal/models"
)

func (h *handlers) apiRouters(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	routers, err := h.loader.Routers(r.Context())
	if err != nil {
		h.logger.Error("loading routers: " + err.Error())
		httpError(w, loadErrorStatus(err), "failed loading routers")
		return
	}

	filtered := filter.Routers(routers, query.Get("search"), query.Get("brand"))
	h.writeJSON(w, models.JSONRouters{
		Routers: filtered,
		Count:   len(filtered),
	})
}

func (h *handlers) apiArticles(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	articles, err := h.loader.Articles(r.Context())
	if err != nil {
		h.logger.Error("loading articles: " + err.Error())
		httpError(w, loadErrorStatus(err), "failed loading articles")
		return
	}

	filtered := filter.Articles(articles, query.Get("search"), query.Get("category"))
	jsonArticles := models.JSONArticles{
		Articles: make([]models.JSONArticle, len(filtered)),
		Count:    len(filtered),
	}
	for i, article := range filtered {
		jsonArticles.Articles[i] = article.JSON()
	}
	h.writeJSON(w, jsonArticles)
}

func (h *handlers) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		h.logger.Error("encoding JSON response: " + err.Error())
	}
}

// loadErrorStatus returns 502 if the collection source failed
// and 500 otherwise.
func loadErrorStatus(err error) (status int) {
	if errors.Is(err, loader.ErrFetch) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
