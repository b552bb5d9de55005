package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

// Data contains settings to locate the static JSON collections.
type Data struct {
	// Source is either a directory or an http(s) base URL.
	Source       string
	RoutersPath  string
	ArticlesPath string
}

func (d *Data) setDefaults() {
	d.Source = gosettings.DefaultComparable(d.Source, ".")
	d.RoutersPath = gosettings.DefaultComparable(d.RoutersPath, "/static/data/routers.json")
	d.ArticlesPath = gosettings.DefaultComparable(d.ArticlesPath, "/static/data/articles.json")
}

// IsRemote returns true if the data source is an HTTP base URL.
func (d Data) IsRemote() bool {
	return strings.HasPrefix(d.Source, "http://") ||
		strings.HasPrefix(d.Source, "https://")
}

func (d Data) Validate() (err error) {
	if d.IsRemote() {
		_, err = url.ParseRequestURI(d.Source)
		if err != nil {
			return fmt.Errorf("%w: data source: %w", ErrURLNotValid, err)
		}
	}

	paths := map[string]string{
		"routers":  d.RoutersPath,
		"articles": d.ArticlesPath,
	}
	for name, path := range paths {
		switch {
		case !strings.HasPrefix(path, "/"):
			return fmt.Errorf("%w: %s path %q must start with /",
				ErrDataPathNotValid, name, path)
		case strings.Contains(path, ".."):
			return fmt.Errorf("%w: %s path %q must not contain ..",
				ErrDataPathNotValid, name, path)
		}
	}

	return nil
}

func (d Data) String() string {
	return d.toLinesNode().String()
}

func (d Data) toLinesNode() *gotree.Node {
	node := gotree.New("Data")
	node.Appendf("Source: %s", d.Source)
	node.Appendf("Routers path: %s", d.RoutersPath)
	node.Appendf("Articles path: %s", d.ArticlesPath)
	return node
}

func (d *Data) read(r *reader.Reader) {
	d.Source = r.String("DATA_SOURCE", reader.ForceLowercase(false))
	d.RoutersPath = r.String("ROUTERS_PATH", reader.ForceLowercase(false))
	d.ArticlesPath = r.String("ARTICLES_PATH", reader.ForceLowercase(false))
}
