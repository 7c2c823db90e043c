// Package server is the HTTP front of the salon site.
//
// Every visitor gets a random id in a cookie. Their layout profile and
// colour palette live in the shared [storage.Storage] under a
// visitor-scoped prefix, and each request builds fresh preference cells
// over it, so visitors never share state. Pages are rendered by a
// [page.Composer] and optionally cached per (profile, palette, content
// version, footer year); concurrent misses for one key render once.
//
// Routes:
//
//	GET  /                       the page
//	POST /layout, /palette       form switchers, 303 back to /
//	POST /contact                mocked contact form, 303 to /?sent=1#contact
//	GET  /api/profiles[/{id}]    profile catalogue
//	GET  /api/layout             current visitor snapshot
//	PUT  /api/layout             {"profile": "..."}
//	GET  /api/palettes           palette catalogue
//	GET  /api/palette            current visitor palette
//	PUT  /api/palette            {"palette": "..."}
//	GET  /sitemap.xml, /robots.txt, /healthz, /static/*
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/singleflight"

	"github.com/petspa/salonsite/pkg/cache"
	"github.com/petspa/salonsite/pkg/components"
	"github.com/petspa/salonsite/pkg/content"
	"github.com/petspa/salonsite/pkg/errors"
	"github.com/petspa/salonsite/pkg/page"
	"github.com/petspa/salonsite/pkg/storage"
)

const shutdownTimeout = 10 * time.Second

// Cookie controls the visitor cookie.
type Cookie struct {
	Name   string
	Secure bool
	MaxAge time.Duration
}

// Options configures a Server. Storage and Content are required.
type Options struct {
	Storage  storage.Storage
	Content  *content.Provider
	Composer *page.Composer

	// Cache defaults to a null cache. CacheTTL of zero keeps entries until
	// the backend evicts them.
	Cache    cache.Cache
	Keyer    cache.Keyer
	CacheTTL time.Duration

	Sections components.Sections
	BaseURL  string
	Cookie   Cookie
	Logger   *log.Logger
	// Clock dates the footer year and defaults to time.Now.
	Clock func() time.Time
}

// Server handles site requests.
type Server struct {
	storage  storage.Storage
	content  *content.Provider
	composer *page.Composer
	cache    cache.Cache
	keyer    cache.Keyer
	ttl      time.Duration
	sections components.Sections
	baseURL  string
	cookie   Cookie
	logger   *log.Logger
	now      func() time.Time
	started  time.Time
	group    singleflight.Group
}

// New validates opts and builds a Server.
func New(opts Options) (*Server, error) {
	if opts.Storage == nil {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "server: storage is required")
	}
	if opts.Content == nil {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "server: content provider is required")
	}
	s := &Server{
		storage:  opts.Storage,
		content:  opts.Content,
		composer: opts.Composer,
		cache:    opts.Cache,
		keyer:    opts.Keyer,
		ttl:      opts.CacheTTL,
		sections: opts.Sections,
		baseURL:  opts.BaseURL,
		cookie:   opts.Cookie,
		logger:   opts.Logger,
		now:      opts.Clock,
		started:  time.Now().UTC(),
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	if s.composer == nil {
		s.composer = page.New(page.WithBaseURL(s.baseURL), page.WithLogger(s.logger))
	}
	if s.cache == nil {
		s.cache = cache.NewNullCache()
	}
	if s.keyer == nil {
		s.keyer = cache.NewDefaultKeyer()
	}
	if s.cookie.Name == "" {
		s.cookie.Name = "salonsite_visitor"
	}
	return s, nil
}

// Handler returns the chi router serving every route.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/robots.txt", s.handleRobots)
	r.Get("/sitemap.xml", s.handleSitemap)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(components.Assets())))

	r.Group(func(r chi.Router) {
		r.Use(s.visitor)

		r.Get("/", s.handlePage)
		r.Post("/layout", s.handleLayoutForm)
		r.Post("/palette", s.handlePaletteForm)
		r.Post("/contact", s.handleContact)

		r.Route("/api", func(r chi.Router) {
			r.Get("/profiles", s.handleProfiles)
			r.Get("/profiles/{profile}", s.handleProfile)
			r.Get("/layout", s.handleGetLayout)
			r.Put("/layout", s.handlePutLayout)
			r.Get("/palettes", s.handlePalettes)
			r.Get("/palette", s.handleGetPalette)
			r.Put("/palette", s.handlePutPalette)
		})
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(errors.ErrCodeTimeout, err, "shutdown")
	}
	return nil
}
