package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"rolsa.tech/web/internal/cms"
	"rolsa.tech/web/internal/config"
	"rolsa.tech/web/internal/handlers"
	"rolsa.tech/web/internal/layout"
	custommw "rolsa.tech/web/internal/middleware"
	"rolsa.tech/web/public"
)

const requestTimeout = 30 * time.Second

// Dependencies collects collaborators the server needs.
type Dependencies struct {
	Pages  *cms.Library
	Logger *zap.Logger
}

// routes maps public paths to content slugs.
var routes = []struct {
	Path string
	Slug string
}{
	{Path: "/", Slug: "home"},
	{Path: "/privacy-policy", Slug: "privacy-policy"},
	{Path: "/accessibility-statement", Slug: "accessibility-statement"},
}

// New constructs the HTTP server with its middleware stack and embedded assets.
func New(cfg config.ServerConfig, deps Dependencies) (*http.Server, error) {
	router, err := NewRouter(deps)
	if err != nil {
		return nil, err
	}
	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}, nil
}

// NewRouter builds the routing tree.
func NewRouter(deps Dependencies) (http.Handler, error) {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(custommw.RequestLogger(logger))
	r.Use(custommw.Recovery(logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(requestTimeout))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	staticContent, err := public.StaticFS(layout.StylesheetName)
	if err != nil {
		return nil, err
	}
	r.Handle("/assets/*", http.StripPrefix("/assets", custommw.AssetsWithCache(staticContent)))

	h := handlers.New(deps.Pages, logger)
	for _, route := range routes {
		r.Get(route.Path, h.Page(route.Slug))
	}
	r.NotFound(h.NotFound)

	return r, nil
}
