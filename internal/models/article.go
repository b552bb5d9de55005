package models

type ArticleFormat string

const (
	ArticleFormatHTML     ArticleFormat = "html"
	ArticleFormatMarkdown ArticleFormat = "markdown"
)

// Article is a blog article as stored in the articles JSON collection.
type Article struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Category string   `json:"category"`
	Preview  string   `json:"preview"`
	Date     string   `json:"date"`
	Content  string   `json:"content"`
	Tags     []string `json:"tags"`
	Related  []string `json:"related"`
	// Format is the format of Content. It defaults to HTML when empty.
	Format ArticleFormat `json:"format,omitempty"`
}
