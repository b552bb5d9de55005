package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/routerlogin/routerlogin/internal/filter"
	"github.com/routerlogin/routerlogin/internal/models"
)

// ArticleList renders the blog listing cards, or an informational
// message if there is no article.
func (r *Renderer) ArticleList(articles []models.Article) (fragment template.HTML, err error) {
	if len(articles) == 0 {
		return r.Info(MessageNoArticles)
	}
	cards := make([]ArticleCard, len(articles))
	for i, article := range articles {
		cards[i] = ArticleCard{
			ID:       article.ID,
			Title:    article.Title,
			Category: article.Category,
			Preview:  article.Preview,
			Date:     article.Date,
		}
	}
	return r.fragment("article-list", cards)
}

func (r *Renderer) CategoryOptions(categories []string, selected string) (fragment template.HTML, err error) {
	return r.fragment("options", newOptions("All Categories", categories, selected))
}

// ArticleDetail renders the article with its content, its related
// articles found in articles, and its tag links.
func (r *Renderer) ArticleDetail(article models.Article, articles []models.Article) (
	fragment template.HTML, err error) {
	content, err := r.articleContent(article)
	if err != nil {
		return "", fmt.Errorf("article %s: %w", article.ID, err)
	}

	view := ArticleView{
		Title:    article.Title,
		Category: article.Category,
		Date:     article.Date,
		Content:  content,
		Related:  make([]ArticleLink, 0, len(article.Related)),
		Tags:     article.Tags,
	}
	for _, relatedID := range article.Related {
		related, ok := filter.FindArticle(articles, relatedID)
		if !ok {
			continue
		}
		view.Related = append(view.Related, ArticleLink{ID: related.ID, Title: related.Title})
	}

	return r.fragment("article-detail", view)
}

func (r *Renderer) ArticleNotFound() (fragment template.HTML, err error) {
	return r.fragment("not-found", notFound{
		Message:  "Article not found.",
		LinkText: "Return to blog",
		Path:     "/blog",
	})
}

func (r *Renderer) articleContent(article models.Article) (content template.HTML, err error) {
	switch article.Format {
	case "", models.ArticleFormatHTML:
		return template.HTML(article.Content), nil //nolint:gosec
	case models.ArticleFormatMarkdown:
		var buffer bytes.Buffer
		err = r.markdown.Convert([]byte(article.Content), &buffer)
		if err != nil {
			return "", fmt.Errorf("converting markdown: %w", err)
		}
		return template.HTML(buffer.String()), nil //nolint:gosec
	default:
		return "", fmt.Errorf("%w: %q", ErrArticleFormatUnknown, article.Format)
	}
}
