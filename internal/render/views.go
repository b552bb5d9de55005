package render

import (
	"html/template"
	"unicode"
	"unicode/utf8"

	"github.com/routerlogin/routerlogin/internal/models"
)

// RouterView is a router record with its display defaults applied.
type RouterView struct {
	IP       string
	Key      string
	Brand    string
	Model    string
	Username string
	Password string
}

// ModelOrGeneric returns the model, or a generic label if it is empty.
func (r RouterView) ModelOrGeneric() string {
	if r.Model == "" {
		return GenericModel
	}
	return r.Model
}

func NewRouterView(router models.Router) RouterView {
	return RouterView{
		IP:       router.IP,
		Key:      router.Key(),
		Brand:    router.Brand,
		Model:    router.Model,
		Username: orDefault(router.Username, DefaultCredential),
		Password: orDefault(router.Password, DefaultCredential),
	}
}

func newRouterViews(routers []models.Router) (views []RouterView) {
	views = make([]RouterView, len(routers))
	for i, router := range routers {
		views[i] = NewRouterView(router)
	}
	return views
}

type ArticleCard struct {
	ID       string
	Title    string
	Category string
	Preview  string
	Date     string
}

type ArticleLink struct {
	ID    string
	Title string
}

type ArticleView struct {
	Title    string
	Category string
	Date     string
	Content  template.HTML
	Related  []ArticleLink
	Tags     []string
}

// IPDetails holds the display values of the IP information table.
type IPDetails struct {
	IP        string
	Type      string
	Location  string
	Latitude  string
	Longitude string
	Org       string
	Hostname  string
	Timezone  string
}

type option struct {
	Value    string
	Selected bool
}

type notFound struct {
	Message  string
	LinkText string
	Path     string
}

type brandEmpty struct {
	Brand string
}

// BrandName returns the brand from a brand page URL segment
// with its first letter upper cased.
func BrandName(urlBrand string) string {
	r, size := utf8.DecodeRuneInString(urlBrand)
	if r == utf8.RuneError {
		return urlBrand
	}
	return string(unicode.ToUpper(r)) + urlBrand[size:]
}

func orDefault(s, defaultValue string) string {
	if s == "" {
		return defaultValue
	}
	return s
}
