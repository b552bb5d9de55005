// Package loader loads the static JSON collections of the site.
package loader

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/routerlogin/routerlogin/internal/models"
)

type Loader struct {
	fetcher      Fetcher
	routersPath  string
	articlesPath string
}

func New(fetcher Fetcher, routersPath, articlesPath string) *Loader {
	return &Loader{
		fetcher:      fetcher,
		routersPath:  routersPath,
		articlesPath: articlesPath,
	}
}

// Load fetches the JSON document at path and decodes it into v.
// Data after the document is a decoding error. It does not retry on failure.
func (l *Loader) Load(ctx context.Context, path string, v any) (err error) {
	body, err := l.fetcher.Fetch(ctx, path)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrFetch, path, err)
	}
	defer body.Close()

	decoder := json.NewDecoder(body)
	err = decoder.Decode(v)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrDecode, path, err)
	}

	_, err = decoder.Token()
	if !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w %s: %w", ErrDecode, path, ErrTrailingData)
	}

	return nil
}

func (l *Loader) Routers(ctx context.Context) (routers []models.Router, err error) {
	err = l.Load(ctx, l.routersPath, &routers)
	if err != nil {
		return nil, err
	}
	if routers == nil {
		routers = []models.Router{}
	}
	return routers, nil
}

func (l *Loader) Articles(ctx context.Context) (articles []models.Article, err error) {
	err = l.Load(ctx, l.articlesPath, &articles)
	if err != nil {
		return nil, err
	}
	if articles == nil {
		articles = []models.Article{}
	}
	return articles, nil
}
