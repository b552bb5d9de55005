package render

import (
	"html/template"
	"sync"
)

type Page string

const (
	PageNone     Page = ""
	PageHome     Page = "home"
	PageGuides   Page = "guides"
	PageRouter   Page = "router"
	PageBrand    Page = "brand"
	PageBlog     Page = "blog"
	PageArticle  Page = "article"
	PageIPLookup Page = "iplookup"
	PageNotFound Page = "notfound"
)

const (
	ContainerIPQuickDisplay  = "ip-quick-display"
	ContainerPopularRouters  = "popular-routers-list"
	ContainerRouterList      = "router-list"
	ContainerBrandFilter     = "brand-filter"
	ContainerRouterDetail    = "router-detail"
	ContainerBrandRouterList = "brand-router-list"
	ContainerBrandIPList     = "brand-ip-list"
	ContainerDirectLogin     = "direct-ip-login-buttons"
	ContainerDefaultIP       = "default-ip-address"
	ContainerArticleList     = "article-list"
	ContainerCategoryFilter  = "category-filter"
	ContainerArticleDetail   = "article-detail"
	ContainerIPAddress       = "ip-address"
	ContainerIPDetails       = "ip-details"
)

const (
	IconThemeToggle      = "theme-toggle"
	IconThemeToggleFloat = "theme-toggle-float"
	IconThemeDropdown    = "themeDropdown"
)

//nolint:gochecknoglobals
var (
	layoutContainers = []string{ContainerIPQuickDisplay, ContainerPopularRouters}
	pageContainers   = map[Page][]string{
		PageNone:     {},
		PageHome:     {},
		PageGuides:   {ContainerRouterList, ContainerBrandFilter},
		PageRouter:   {ContainerRouterDetail},
		PageBrand:    {ContainerBrandRouterList, ContainerBrandIPList, ContainerDirectLogin, ContainerDefaultIP},
		PageBlog:     {ContainerArticleList, ContainerCategoryFilter},
		PageArticle:  {ContainerArticleDetail},
		PageIPLookup: {ContainerIPAddress, ContainerIPDetails},
		PageNotFound: {},
	}
)

// Document is the page being built for a single page view. It holds the
// root element attributes, the icon and navbar classes and the content
// of each named container declared by the page and its layout.
// It is safe for concurrent use.
type Document struct {
	page Page
	// Path is the request URL path, used to highlight the active
	// navigation link.
	Path string
	// Search is the search term pre-filled in the search inputs.
	Search string
	// Brand is the brand name shown on brand pages.
	Brand string
	// BrandSlug is the brand as found in the brand page URL.
	BrandSlug string

	mutex       sync.RWMutex
	title       string
	attributes  map[string]string
	iconClasses map[string]string
	navbarClass string
	containers  map[string]template.HTML
}

func NewDocument(page Page, path string) *Document {
	containers := make(map[string]template.HTML)
	for _, name := range layoutContainers {
		containers[name] = ""
	}
	for _, name := range pageContainers[page] {
		containers[name] = ""
	}

	return &Document{
		page:        page,
		Path:        path,
		title:       "Router Login - Find Your Router's Login Information",
		attributes:  make(map[string]string),
		iconClasses: make(map[string]string),
		containers:  containers,
	}
}

func (d *Document) Page() Page { return d.page }

func (d *Document) Title() string {
	d.mutex.RLock()
	defer d.mutex.RUnlock()
	return d.title
}

func (d *Document) SetTitle(title string) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.title = title
}

func (d *Document) Attribute(name string) string {
	d.mutex.RLock()
	defer d.mutex.RUnlock()
	return d.attributes[name]
}

func (d *Document) SetAttribute(name, value string) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.attributes[name] = value
}

func (d *Document) IconClass(id string) string {
	d.mutex.RLock()
	defer d.mutex.RUnlock()
	return d.iconClasses[id]
}

func (d *Document) SetIconClass(id, class string) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.iconClasses[id] = class
}

func (d *Document) NavbarClass() string {
	d.mutex.RLock()
	defer d.mutex.RUnlock()
	return d.navbarClass
}

func (d *Document) SetNavbarClass(class string) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.navbarClass = class
}

// Has returns true if the container is declared by the page.
func (d *Document) Has(container string) bool {
	d.mutex.RLock()
	defer d.mutex.RUnlock()
	_, ok := d.containers[container]
	return ok
}

// Replace replaces the whole content of the container with the fragment.
// It does nothing if the container is not declared by the page.
func (d *Document) Replace(container string, fragment template.HTML) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	if _, ok := d.containers[container]; !ok {
		return
	}
	d.containers[container] = fragment
}

func (d *Document) Container(name string) template.HTML {
	d.mutex.RLock()
	defer d.mutex.RUnlock()
	return d.containers[name]
}
