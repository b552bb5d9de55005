package models

// JSONRouters is the root structure for the routers API response.
type JSONRouters struct {
	Routers []Router `json:"routers"`
	Count   int      `json:"count"`
}

// JSONArticle is an article without its content, for listings.
type JSONArticle struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Category string   `json:"category"`
	Preview  string   `json:"preview"`
	Date     string   `json:"date"`
	Tags     []string `json:"tags"`
}

// JSONArticles is the root structure for the articles API response.
type JSONArticles struct {
	Articles []JSONArticle `json:"articles"`
	Count    int           `json:"count"`
}

func (a Article) JSON() JSONArticle {
	return JSONArticle{
		ID:       a.ID,
		Title:    a.Title,
		Category: a.Category,
		Preview:  a.Preview,
		Date:     a.Date,
		Tags:     a.Tags,
	}
}
