// Package render turns site records into HTML fragments and pages.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

//go:embed templates
var templatesFS embed.FS

type Renderer struct {
	fragments *template.Template
	pages     map[Page]*template.Template
	markdown  goldmark.Markdown
}

// New parses the embedded templates. rootPath is the path prefix,
// without trailing slash, prepended to every site link.
func New(rootPath string) (renderer *Renderer, err error) {
	rootPath = strings.TrimSuffix(rootPath, "/")
	funcs := template.FuncMap{
		"url": func(path string) string {
			return rootPath + path
		},
		"navClass": func(currentPath, href string) string {
			if currentPath == rootPath+href {
				return "nav-link active"
			}
			return "nav-link"
		},
		"message": message,
	}

	base, err := template.New("base").Funcs(funcs).
		ParseFS(templatesFS, "templates/layout.html", "templates/fragments.html")
	if err != nil {
		return nil, fmt.Errorf("parsing base templates: %w", err)
	}

	pages := make(map[Page]*template.Template, len(pageContainers))
	for page := range pageContainers {
		if page == PageNone {
			continue
		}
		pageTemplate, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("cloning base template for page %s: %w", page, err)
		}
		_, err = pageTemplate.ParseFS(templatesFS, "templates/pages/"+string(page)+".html")
		if err != nil {
			return nil, fmt.Errorf("parsing page %s template: %w", page, err)
		}
		pages[page] = pageTemplate
	}

	return &Renderer{
		fragments: base,
		pages:     pages,
		markdown: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				highlighting.NewHighlighting(
					highlighting.WithStyle("github"),
				),
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
			goldmark.WithRendererOptions(
				html.WithUnsafe(),
			),
		),
	}, nil
}

func (r *Renderer) fragment(name string, data any) (fragment template.HTML, err error) {
	var buffer strings.Builder
	err = r.fragments.ExecuteTemplate(&buffer, name, data)
	if err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}
	return template.HTML(buffer.String()), nil //nolint:gosec
}

// Page writes the whole document using its page template and the layout.
// Nothing is written to w if the execution fails.
func (r *Renderer) Page(w io.Writer, doc *Document) (err error) {
	page := doc.Page()
	if page == PageNone {
		page = PageNotFound
	}
	pageTemplate, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("%w: %q", ErrPageUnknown, page)
	}

	var buffer bytes.Buffer
	err = pageTemplate.ExecuteTemplate(&buffer, "layout", doc)
	if err != nil {
		return fmt.Errorf("executing page %s template: %w", page, err)
	}

	_, err = buffer.WriteTo(w)
	if err != nil {
		return fmt.Errorf("writing page: %w", err)
	}
	return nil
}

// Error returns an error alert fragment.
func (r *Renderer) Error(message string) (fragment template.HTML, err error) {
	return r.fragment("alert-danger", message)
}

// Info returns an informational alert fragment.
func (r *Renderer) Info(message string) (fragment template.HTML, err error) {
	return r.fragment("alert-info", message)
}
