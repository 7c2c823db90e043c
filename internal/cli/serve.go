package cli

import (
	"context"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/petspa/salonsite/pkg/cache"
	"github.com/petspa/salonsite/pkg/components"
	"github.com/petspa/salonsite/pkg/config"
	"github.com/petspa/salonsite/pkg/content"
	"github.com/petspa/salonsite/pkg/errors"
	"github.com/petspa/salonsite/pkg/layout"
	"github.com/petspa/salonsite/pkg/page"
	"github.com/petspa/salonsite/pkg/resolver"
	"github.com/petspa/salonsite/pkg/server"
	"github.com/petspa/salonsite/pkg/storage"
)

type serveOptions struct {
	configPath string
	addr       string
	strict     bool
}

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOptions

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the website",
		Long: `Run the website over HTTP.

Configuration comes from a TOML file (--config) merged over the defaults,
then from SALONSITE_* environment variables. With --strict the server
refuses to start when any configured variant lacks a renderer; otherwise
those variants fall back to their family default and are logged.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "config file (TOML)")
	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address (overrides config)")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "fail on registry inconsistencies")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts serveOptions) error {
	logger := loggerFromContext(ctx)

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.addr != "" {
		cfg.Addr = opts.addr
	}
	cfg.Strict = cfg.Strict || opts.strict
	if !c.verbose {
		logger.SetLevel(parseLevel(cfg.LogLevel))
	}

	if err := checkRegistry(logger, cfg.Strict); err != nil {
		return err
	}

	st, err := openStorage(ctx, cfg.Storage)
	if err != nil {
		return err
	}
	defer st.Close()

	pc, err := openCache(ctx, cfg.Cache)
	if err != nil {
		return err
	}
	defer pc.Close()

	prov, err := content.NewProvider(cfg.ContentFile, content.WithLogger(logger))
	if err != nil {
		return err
	}
	prov.OnChange(func(doc *content.Document) {
		logger.Info("content reloaded", "source", doc.Source, "version", doc.Version)
	})

	srv, err := server.New(server.Options{
		Storage:  st,
		Content:  prov,
		Composer: page.New(page.WithBaseURL(cfg.BaseURL), page.WithLogger(logger)),
		Cache:    pc,
		Keyer:    pageKeyer(cfg.Cache),
		CacheTTL: cfg.Cache.TTL.Std(),
		Sections: components.Sections{FAQ: cfg.Sections.FAQ, Pricing: cfg.Sections.Pricing},
		BaseURL:  cfg.BaseURL,
		Cookie: server.Cookie{
			Name:   cfg.Cookie.Name,
			Secure: cfg.Cookie.Secure,
			MaxAge: cfg.Cookie.MaxAge.Std(),
		},
		Logger: logger,
	})
	if err != nil {
		return err
	}

	logger.Info("starting",
		"addr", cfg.Addr,
		"storage", cfg.Storage.Backend,
		"cache", cfg.Cache.Backend,
		"content", prov.Current().Source,
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.ListenAndServe(gctx, cfg.Addr) })
	if cfg.WatchContent && cfg.ContentFile != "" {
		g.Go(func() error { return prov.Watch(gctx) })
	}
	return g.Wait()
}

// checkRegistry validates the registry and the resolver. Inconsistencies
// are fatal in strict mode and warnings otherwise; an incomplete registry
// is always fatal.
func checkRegistry(logger *log.Logger, strict bool) error {
	if err := layout.Validate(); err != nil {
		return err
	}
	problems := resolver.CheckConsistency(resolver.Default())
	if len(problems) == 0 {
		return nil
	}
	if strict {
		return errors.Join(problems...)
	}
	for _, p := range problems {
		logger.Warn("registry inconsistency, family default will render", "err", p)
	}
	return nil
}

// openStorage builds the preference backend named by cfg.
func openStorage(ctx context.Context, cfg config.Storage) (storage.Storage, error) {
	switch cfg.Backend {
	case "memory":
		return storage.NewMemory(), nil
	case "file":
		dir := cfg.Dir
		if dir == "" {
			base, err := configDir()
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "resolve storage dir")
			}
			dir = filepath.Join(base, "visitors")
		}
		return storage.NewFile(dir)
	case "redis":
		return storage.NewRedis(ctx, storage.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			TTL:      cfg.TTL.Std(),
		})
	case "mongo":
		return storage.NewMongo(ctx, storage.MongoConfig{
			URI:        cfg.MongoURI,
			Database:   cfg.MongoDatabase,
			Collection: cfg.MongoCollection,
			TTL:        cfg.TTL.Std(),
		})
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown storage backend %q", cfg.Backend)
	}
}

// pageKeyer returns the default keyer, scoped by the configured prefix.
func pageKeyer(cfg config.Cache) cache.Keyer {
	if cfg.Prefix == "" {
		return cache.NewDefaultKeyer()
	}
	return cache.NewScopedKeyer(cache.NewDefaultKeyer(), cfg.Prefix)
}

// openCache builds the page cache named by cfg, instrumented for hooks.
func openCache(ctx context.Context, cfg config.Cache) (cache.Cache, error) {
	switch cfg.Backend {
	case "none":
		return cache.NewNullCache(), nil
	case "file":
		dir := cfg.Dir
		if dir == "" {
			var err error
			if dir, err = pageCacheDir(); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "resolve cache dir")
			}
		}
		fc, err := cache.NewFileCache(dir)
		if err != nil {
			return nil, err
		}
		return cache.Instrument(fc), nil
	case "redis":
		rc, err := cache.NewRedisCache(ctx, cache.RedisOptions{Addr: cfg.RedisAddr, Namespace: cfg.Namespace})
		if err != nil {
			return nil, err
		}
		return cache.Instrument(rc), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend %q", cfg.Backend)
	}
}
