package server

import (
	"context"
	"sync"

	"github.com/routerlogin/routerlogin/internal/models"
)

// collections loads each collection at most once for a page view,
// so concurrent components of the page share the same records.
type collections struct {
	loader Loader

	routersOnce sync.Once
	routers     []models.Router
	routersErr  error

	articlesOnce sync.Once
	articles     []models.Article
	articlesErr  error
}

func newCollections(loader Loader) *collections {
	return &collections{loader: loader}
}

func (c *collections) Routers(ctx context.Context) (routers []models.Router, err error) {
	c.routersOnce.Do(func() {
		c.routers, c.routersErr = c.loader.Routers(ctx)
	})
	return c.routers, c.routersErr
}

func (c *collections) Articles(ctx context.Context) (articles []models.Article, err error) {
	c.articlesOnce.Do(func() {
		c.articles, c.articlesErr = c.loader.Articles(ctx)
	})
	return c.articles, c.articlesErr
}
