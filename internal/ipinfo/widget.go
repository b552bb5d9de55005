package ipinfo

import (
	"context"
	"html/template"
	"net/netip"
	"strings"
	"time"

	"github.com/routerlogin/routerlogin/internal/render"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . Lookuper,Logger

type Lookuper interface {
	Lookup(ctx context.Context, ip netip.Addr) (result Result, err error)
}

type Logger interface {
	Warn(s string)
	Error(s string)
}

type Renderer interface {
	IPAddress(ip string) (fragment template.HTML, err error)
	IPQuickDisplay(ip string) (fragment template.HTML, err error)
	IPDetails(details render.IPDetails) (fragment template.HTML, err error)
	IPLoading() (fragment template.HTML, err error)
	IPQuickPending() (fragment template.HTML, err error)
	Error(message string) (fragment template.HTML, err error)
}

const quickLookupTimeout = 3 * time.Second

// Widget fills the IP lookup containers of a page.
type Widget struct {
	lookuper Lookuper
	renderer Renderer
	logger   Logger
}

func NewWidget(lookuper Lookuper, renderer Renderer, logger Logger) *Widget {
	return &Widget{
		lookuper: lookuper,
		renderer: renderer,
		logger:   logger,
	}
}

// Loading sets the loading state of the IP lookup containers.
func (w *Widget) Loading(doc *render.Document) (err error) {
	if !doc.Has(render.ContainerIPAddress) {
		return nil
	}

	address, err := w.renderer.IPAddress(render.MessageLoading)
	if err != nil {
		return err
	}
	spinner, err := w.renderer.IPLoading()
	if err != nil {
		return err
	}

	doc.Replace(render.ContainerIPAddress, address)
	doc.Replace(render.ContainerIPDetails, spinner)
	return nil
}

// Details returns the rendered IP address line and details table.
// A failed lookup is logged and rendered as error messages.
func (w *Widget) Details(ctx context.Context, ip netip.Addr) (
	address, details template.HTML, err error) {
	result, lookupErr := w.lookuper.Lookup(ctx, ip)
	if lookupErr != nil {
		w.logger.Error("looking up IP information: " + lookupErr.Error())
		address, err = w.renderer.IPAddress(render.MessageIPAddressLoadFailed)
		if err != nil {
			return "", "", err
		}
		details, err = w.renderer.Error(render.MessageIPLookupFailed)
		if err != nil {
			return "", "", err
		}
		return address, details, nil
	}

	address, err = w.renderer.IPAddress(orDefault(result.IP, render.Unknown))
	if err != nil {
		return "", "", err
	}
	details, err = w.renderer.IPDetails(MakeDetails(result))
	if err != nil {
		return "", "", err
	}
	return address, details, nil
}

// QuickDisplay fills the navigation bar IP address without blocking.
// A public visitor IP address is shown as is, otherwise a placeholder
// is rendered for the browser to replace with the QuickLookup fragment.
func (w *Widget) QuickDisplay(doc *render.Document, ip netip.Addr) (err error) {
	if !doc.Has(render.ContainerIPQuickDisplay) {
		return nil
	}

	var fragment template.HTML
	if IsPublic(ip) {
		fragment, err = w.renderer.IPQuickDisplay(ip.String())
	} else {
		fragment, err = w.renderer.IPQuickPending()
	}
	if err != nil {
		return err
	}
	doc.Replace(render.ContainerIPQuickDisplay, fragment)
	return nil
}

// QuickLookup looks up the public IP address for the navigation bar.
// The lookup is bounded by quickLookupTimeout and a failure renders
// the undetected message.
func (w *Widget) QuickLookup(ctx context.Context, ip netip.Addr) (
	fragment template.HTML, err error) {
	ctx, cancel := context.WithTimeout(ctx, quickLookupTimeout)
	defer cancel()

	result, lookupErr := w.lookuper.Lookup(ctx, ip)
	if lookupErr != nil {
		w.logger.Warn("looking up public IP address: " + lookupErr.Error())
	}
	return w.renderer.IPQuickDisplay(result.IP)
}

// MakeDetails converts a lookup result to its display values.
func MakeDetails(result Result) render.IPDetails {
	ipType := "IPv4"
	if strings.Contains(result.IP, ":") {
		ipType = "IPv6"
	}

	latitude, longitude, _ := strings.Cut(result.Loc, ",")

	return render.IPDetails{
		IP:        orDefault(result.IP, render.NotAvailable),
		Type:      ipType,
		Location:  result.City + ", " + result.Region + ", " + result.Country,
		Latitude:  orDefault(latitude, render.Unknown),
		Longitude: orDefault(longitude, render.Unknown),
		Org:       orDefault(result.Org, render.Unknown),
		Hostname:  orDefault(result.Hostname, render.Unknown),
		Timezone:  orDefault(result.Timezone, render.Unknown),
	}
}

func orDefault(s, defaultValue string) string {
	if s == "" {
		return defaultValue
	}
	return s
}
