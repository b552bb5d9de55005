package server

import (
	"context"
	"html/template"
	"net/netip"

	"github.com/routerlogin/routerlogin/internal/models"
	"github.com/routerlogin/routerlogin/internal/render"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . Loader,IPWidget,Logger

type Loader interface {
	Routers(ctx context.Context) (routers []models.Router, err error)
	Articles(ctx context.Context) (articles []models.Article, err error)
}

type IPWidget interface {
	Loading(doc *render.Document) (err error)
	Details(ctx context.Context, ip netip.Addr) (address, details template.HTML, err error)
	QuickDisplay(doc *render.Document, ip netip.Addr) (err error)
	QuickLookup(ctx context.Context, ip netip.Addr) (fragment template.HTML, err error)
}

type Logger interface {
	Debug(s string)
	Info(s string)
	Warn(s string)
	Error(s string)
}
