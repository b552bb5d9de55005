package render

import (
	"html/template"

	"github.com/routerlogin/routerlogin/internal/models"
)

// RouterList renders the router guides listing cards,
// or an informational message if there is no router.
func (r *Renderer) RouterList(routers []models.Router) (fragment template.HTML, err error) {
	if len(routers) == 0 {
		return r.fragment("col-alert-info", MessageNoRouters)
	}
	return r.fragment("router-list", newRouterViews(routers))
}

// BrandOptions renders the brand dropdown options, with the
// selected brand marked as selected.
func (r *Renderer) BrandOptions(brands []string, selected string) (fragment template.HTML, err error) {
	return r.fragment("options", newOptions("All Brands", brands, selected))
}

// RouterDetail renders the detailed login guide of a router.
func (r *Renderer) RouterDetail(router models.Router) (fragment template.HTML, err error) {
	return r.fragment("router-detail", NewRouterView(router))
}

func (r *Renderer) RouterNotFound() (fragment template.HTML, err error) {
	return r.fragment("not-found", notFound{
		Message:  "Router information not found.",
		LinkText: "Return to router guides",
		Path:     "/router-guides",
	})
}

// BrandRouterList renders the cards of a brand page. brandRouters are all the
// routers of the brand and filtered are the ones matching the search term.
func (r *Renderer) BrandRouterList(brand string, brandRouters, filtered []models.Router) (
	fragment template.HTML, err error) {
	switch {
	case len(brandRouters) == 0:
		return r.fragment("brand-empty", brandEmpty{Brand: BrandName(brand)})
	case len(filtered) == 0:
		return r.fragment("col-alert-info", MessageNoBrandRouterMatch)
	default:
		return r.fragment("brand-router-list", newRouterViews(filtered))
	}
}

// BrandIPList renders the sidebar list of unique IP addresses of a brand,
// each with a details link and a direct login button.
func (r *Renderer) BrandIPList(ips []string) (fragment template.HTML, err error) {
	if len(ips) == 0 {
		return r.fragment("list-group-item", MessageNoBrandIPs)
	}
	return r.fragment("brand-ip-list", newIPLinks(ips))
}

// DirectLoginButtons renders one direct login button per IP address.
func (r *Renderer) DirectLoginButtons(ips []string) (fragment template.HTML, err error) {
	if len(ips) == 0 {
		return r.Info(MessageNoBrandIPs)
	}
	return r.fragment("direct-login-buttons", ips)
}

// DefaultIP renders the default IP address link used in the brand
// login instructions, which is the first IP address.
// It returns an empty fragment if there is no IP address.
func (r *Renderer) DefaultIP(ips []string) (fragment template.HTML, err error) {
	if len(ips) == 0 {
		return "", nil
	}
	return r.fragment("external-ip-link", ips[0])
}

// PopularRouters renders the footer list items linking to the given routers.
func (r *Renderer) PopularRouters(routers []models.Router) (fragment template.HTML, err error) {
	return r.fragment("popular-routers", newRouterViews(routers))
}

type ipLink struct {
	IP  string
	Key string
}

func newIPLinks(ips []string) (links []ipLink) {
	links = make([]ipLink, len(ips))
	for i, ip := range ips {
		links[i] = ipLink{IP: ip, Key: models.IPToKey(ip)}
	}
	return links
}

type options struct {
	AllLabel string
	AllValue bool
	Options  []option
}

func newOptions(allLabel string, values []string, selected string) options {
	o := options{
		AllLabel: allLabel,
		AllValue: selected == "",
		Options:  make([]option, len(values)),
	}
	for i, value := range values {
		o.Options[i] = option{Value: value, Selected: value == selected}
	}
	return o
}
