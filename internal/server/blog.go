package server

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/routerlogin/routerlogin/internal/filter"
	"github.com/routerlogin/routerlogin/internal/render"
)

func (h *handlers) blog(r *http.Request, doc *render.Document, data *collections) (
	status int, err error) {
	category := r.URL.Query().Get("category")

	articles, err := data.Articles(r.Context())
	if err != nil {
		h.logger.Error("loading articles: " + err.Error())
		err = h.replaceError(doc, render.ContainerArticleList, render.MessageArticlesLoadFailed)
		if err != nil {
			return 0, err
		}
	} else {
		list, err := h.renderer.ArticleList(filter.Articles(articles, doc.Search, category))
		if err != nil {
			return 0, fmt.Errorf("rendering article list: %w", err)
		}
		doc.Replace(render.ContainerArticleList, list)
	}

	options, err := h.renderer.CategoryOptions(filter.Categories(articles), category)
	if err != nil {
		return 0, fmt.Errorf("rendering category options: %w", err)
	}
	doc.Replace(render.ContainerCategoryFilter, options)

	return http.StatusOK, nil
}

func (h *handlers) articleDetail(r *http.Request, doc *render.Document, data *collections) (
	status int, err error) {
	id := chi.URLParam(r, "id")

	articles, err := data.Articles(r.Context())
	if err != nil {
		h.logger.Error("loading articles: " + err.Error())
		return http.StatusOK, h.replaceError(doc, render.ContainerArticleDetail,
			render.MessageArticleLoadFailed)
	}

	article, ok := filter.FindArticle(articles, id)
	if !ok {
		fragment, err := h.renderer.ArticleNotFound()
		if err != nil {
			return 0, fmt.Errorf("rendering article not found: %w", err)
		}
		doc.Replace(render.ContainerArticleDetail, fragment)
		return http.StatusNotFound, nil
	}

	doc.SetTitle(article.Title + " - Router Login Guide")
	fragment, err := h.renderer.ArticleDetail(article, articles)
	if err != nil {
		// a malformed article content only affects its own page
		h.logger.Error("rendering article detail: " + err.Error())
		return http.StatusOK, h.replaceError(doc, render.ContainerArticleDetail,
			render.MessageArticleLoadFailed)
	}
	doc.Replace(render.ContainerArticleDetail, fragment)
	return http.StatusOK, nil
}

// articlesFragment responds with the article list only, for the live
// search of the blog page.
func (h *handlers) articlesFragment(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	articles, err := h.loader.Articles(r.Context())
	if err != nil {
		h.logger.Error("loading articles: " + err.Error())
		fragment, err := h.renderer.Error(render.MessageArticlesLoadFailed)
		h.writeFragment(w, fragment, err)
		return
	}
	filtered := filter.Articles(articles, query.Get("search"), query.Get("category"))
	fragment, err := h.renderer.ArticleList(filtered)
	h.writeFragment(w, fragment, err)
}
