package filter

import (
	"sort"

	"github.com/routerlogin/routerlogin/internal/models"
)

// Articles filters articles for the blog listing. The term is matched
// against the title, category and preview. If category is not empty,
// only articles with exactly this category are kept.
func Articles(articles []models.Article, term, category string) []models.Article {
	var keep func(models.Article) bool
	if category != "" {
		keep = func(article models.Article) bool {
			return article.Category == category
		}
	}
	return match(articles, term, keep, func(article models.Article) []string {
		return []string{article.Title, article.Category, article.Preview}
	})
}

// Categories returns the sorted unique categories of the articles.
func Categories(articles []models.Article) (categories []string) {
	seen := make(map[string]struct{}, len(articles))
	categories = make([]string, 0, len(articles))
	for _, article := range articles {
		if _, ok := seen[article.Category]; ok {
			continue
		}
		seen[article.Category] = struct{}{}
		categories = append(categories, article.Category)
	}
	sort.Strings(categories)
	return categories
}

func FindArticle(articles []models.Article, id string) (article models.Article, ok bool) {
	for _, article := range articles {
		if article.ID == id {
			return article, true
		}
	}
	return article, false
}
