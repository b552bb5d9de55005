// Package server is the HTTP front end serving the site pages,
// their live search fragments and the JSON API.
package server

import (
	"time"

	"github.com/gorilla/sessions"
	"github.com/qdm12/goservices/httpserver"
	"github.com/routerlogin/routerlogin/internal/render"
	"github.com/routerlogin/routerlogin/internal/theme"
)

type Settings struct {
	Address            string
	RootPath           string
	StaticDir          string
	CORSAllowedOrigins []string
	DefaultTheme       theme.Theme
	SessionStore       sessions.Store
	// IPWidget is nil if the IP lookup is disabled.
	IPWidget IPWidget
}

func New(settings Settings, loader Loader, renderer *render.Renderer,
	logger Logger, timeNow func() time.Time) (
	server *httpserver.Server, err error) {
	handler := newHandler(settings, loader, renderer, logger, timeNow)
	name := "http"
	return httpserver.New(httpserver.Settings{
		Handler: handler,
		Name:    &name,
		Address: &settings.Address,
		Logger:  logger,
	})
}
