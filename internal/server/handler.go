package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/gorilla/sessions"
	"github.com/routerlogin/routerlogin/internal/httplog"
	"github.com/routerlogin/routerlogin/internal/render"
	"github.com/routerlogin/routerlogin/internal/theme"
)

type handlers struct {
	rootPath string
	// Objects
	loader       Loader
	renderer     *render.Renderer
	widget       IPWidget
	sessionStore sessions.Store
	defaultTheme theme.Theme
	logger       Logger
}

func newHandler(settings Settings, loader Loader, renderer *render.Renderer,
	logger Logger, timeNow func() time.Time) http.Handler {
	handlers := &handlers{
		rootPath:     settings.RootPath,
		loader:       loader,
		renderer:     renderer,
		widget:       settings.IPWidget,
		sessionStore: settings.SessionStore,
		defaultTheme: settings.DefaultTheme,
		logger:       logger,
	}

	rootPath := settings.RootPath
	router := chi.NewRouter()
	router.Use(middleware.RealIP, middleware.CleanPath, httplog.Middleware(logger, timeNow))

	home := handlers.page(render.PageHome, handlers.home)
	router.Get(rootPath+"/", home)
	if rootPath != "" {
		// the clean path middleware removes the trailing slash
		router.Get(rootPath, home)
	}

	router.Get(rootPath+"/router-guides", handlers.page(render.PageGuides, handlers.guides))
	router.Get(rootPath+"/router-guides/{key}", handlers.page(render.PageRouter, handlers.routerDetail))
	router.Get(rootPath+"/blog", handlers.page(render.PageBlog, handlers.blog))
	router.Get(rootPath+"/blog/{id}", handlers.page(render.PageArticle, handlers.articleDetail))
	router.Get(rootPath+"/ip-lookup", handlers.page(render.PageIPLookup, handlers.ipLookup))
	router.Get(rootPath+"/ip-lookup/details", handlers.ipLookupDetails)
	router.Get(rootPath+"/{slug}", handlers.brand)

	router.Get(rootPath+"/fragments/routers", handlers.routersFragment)
	router.Get(rootPath+"/fragments/brand/{brand}", handlers.brandFragment)
	router.Get(rootPath+"/fragments/articles", handlers.articlesFragment)
	router.Get(rootPath+"/fragments/ip-quick", handlers.ipQuickFragment)

	router.Route(rootPath+"/api/v1", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: settings.CORSAllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300, //nolint:mnd
		}))
		r.Get("/routers", handlers.apiRouters)
		r.Get("/articles", handlers.apiArticles)
	})

	router.Post(rootPath+"/theme/toggle", handlers.themeToggle)
	router.Post(rootPath+"/theme/{theme}", handlers.themeSet)

	fileServer(router, rootPath+"/static", http.Dir(settings.StaticDir))

	router.NotFound(handlers.page(render.PageNotFound, handlers.notFound))

	return router
}
