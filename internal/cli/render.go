package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/petspa/salonsite/pkg/cache"
	"github.com/petspa/salonsite/pkg/components"
	"github.com/petspa/salonsite/pkg/content"
	"github.com/petspa/salonsite/pkg/errors"
	"github.com/petspa/salonsite/pkg/layout"
	"github.com/petspa/salonsite/pkg/page"
	"github.com/petspa/salonsite/pkg/palette"
	"github.com/petspa/salonsite/pkg/profile"
)

const (
	defaultBaseURL = "https://petspa2.ro"
	exportTTL      = 24 * time.Hour
	exportWorkers  = 4
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	palette     string // palette id; empty uses the picked palette
	output      string // output file, or directory with --all
	all         bool   // export every profile
	baseURL     string // canonical site URL for links and structured data
	contentFile string // content override; empty uses the embedded copy
	faq         bool   // include the FAQ section
	pricing     bool   // include the pricing section
	noCache     bool   // bypass the page cache
}

// renderCommand creates the render command for static export.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{baseURL: defaultBaseURL}

	cmd := &cobra.Command{
		Use:   "render [profile]",
		Short: "Export the site as static HTML",
		Long: `Export the site as static HTML.

Without a profile argument the profile chosen with "salonsite pick" is used.
With --all every profile is written to <dir>/<profile>.html alongside the
stylesheet, and <dir>/index.html holds the default profile.`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return profileNames(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.all && len(args) > 0 {
				return errors.New(errors.ErrCodeInvalidInput, "--all cannot be combined with a profile argument")
			}
			return runRender(cmd.Context(), cmd.OutOrStdout(), args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.palette, "palette", "p", "", "colour palette (default: picked palette)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout), or directory with --all")
	cmd.Flags().BoolVar(&opts.all, "all", false, "export every profile into the output directory")
	cmd.Flags().StringVar(&opts.baseURL, "base-url", opts.baseURL, "canonical site URL")
	cmd.Flags().StringVar(&opts.contentFile, "content", "", "content file (TOML) overriding the embedded copy")
	cmd.Flags().BoolVar(&opts.faq, "faq", false, "include the FAQ section")
	cmd.Flags().BoolVar(&opts.pricing, "pricing", false, "include the pricing section")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the page cache")

	return cmd
}

func runRender(ctx context.Context, stdout io.Writer, args []string, opts renderOpts) error {
	logger := loggerFromContext(ctx)

	doc := content.Default()
	if opts.contentFile != "" {
		var err error
		if doc, err = content.Load(opts.contentFile); err != nil {
			return err
		}
	}
	pal, err := resolvePalette(ctx, opts.palette)
	if err != nil {
		return err
	}

	exp := &exporter{
		composer: page.New(page.WithBaseURL(opts.baseURL), page.WithLogger(logger)),
		cache:    newPageCache(opts.noCache),
		keyer:    cache.NewDefaultKeyer(),
		doc:      doc,
		palette:  pal,
		sections: components.Sections{FAQ: opts.faq, Pricing: opts.pricing},
		baseURL:  opts.baseURL,
		year:     time.Now().Year(),
	}
	defer exp.cache.Close()

	if opts.all {
		if opts.output == "" {
			return errors.New(errors.ErrCodeInvalidInput, "--all requires an output directory (-o)")
		}
		return exp.exportAll(ctx, opts.output)
	}

	p := pickedProfile(ctx)
	if len(args) == 1 {
		if p, err = layout.ParseProfile(args[0]); err != nil {
			return err
		}
	}
	data, cached, err := exp.render(ctx, p)
	if err != nil {
		return err
	}
	logger.Debug("rendered", "profile", p, "palette", pal.ID, "bytes", len(data), "cached", cached)

	if opts.output == "" || opts.output == "-" {
		_, err := stdout.Write(data)
		return err
	}
	if err := writeFile(opts.output, data); err != nil {
		return err
	}
	printSuccess("Rendered %s with %s", StyleHighlight.Render(string(p)), pal.Name)
	printFile(opts.output)
	return nil
}

// resolvePalette parses flag, or falls back to the picked palette.
func resolvePalette(ctx context.Context, flag string) (palette.Palette, error) {
	if flag != "" {
		id, err := palette.Parse(flag)
		if err != nil {
			return palette.Palette{}, err
		}
		return palette.Lookup(id)
	}
	prefs, err := openPreferences()
	if err != nil {
		return palette.Lookup(palette.DefaultID)
	}
	defer prefs.Close()
	s := palette.NewStore(prefs, nil, loggerFromContext(ctx))
	s.Rehydrate(ctx)
	return s.Current(), nil
}

// exporter renders standalone pages for one palette and content document.
type exporter struct {
	composer *page.Composer
	cache    cache.Cache
	keyer    cache.Keyer
	doc      *content.Document
	palette  palette.Palette
	sections components.Sections
	baseURL  string
	year     int
}

func (e *exporter) key(p layout.Profile) string {
	var sections []string
	if e.sections.FAQ {
		sections = append(sections, page.SectionFAQ)
	}
	if e.sections.Pricing {
		sections = append(sections, page.SectionPricing)
	}
	return e.keyer.ExportKey(cache.PageKeyOpts{
		Profile:        string(p),
		Palette:        string(e.palette.ID),
		ContentVersion: e.doc.Version,
		Sections:       sections,
		Year:           e.year,
	}, e.baseURL)
}

// render returns the page for p and whether it came from the cache.
func (e *exporter) render(ctx context.Context, p layout.Profile) ([]byte, bool, error) {
	key := e.key(p)
	if data, hit, err := e.cache.Get(ctx, key); err == nil && hit {
		return data, true, nil
	}

	cfg, err := layout.Lookup(p)
	if err != nil {
		return nil, false, err
	}
	var buf bytes.Buffer
	err = e.composer.Render(ctx, &buf, page.State{
		Snapshot: profile.Snapshot{Profile: p, Config: cfg},
		Palette:  e.palette,
		Content:  e.doc.Site,
		Sections: e.sections,
		Year:     e.year,
	})
	if err != nil {
		return nil, false, err
	}
	if err := e.cache.Set(ctx, key, buf.Bytes(), exportTTL); err != nil {
		loggerFromContext(ctx).Debug("export cache write failed", "err", err)
	}
	return buf.Bytes(), false, nil
}

// exportAll writes every profile plus the stylesheet into dir.
func (e *exporter) exportAll(ctx context.Context, dir string) error {
	prog := newProgress(loggerFromContext(ctx))
	spinner := newSpinnerWithContext(ctx, "Rendering profiles...")
	spinner.Start()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(exportWorkers)
	for _, p := range layout.Profiles() {
		g.Go(func() error {
			data, _, err := e.render(gctx, p)
			if err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "render %s", p)
			}
			if err := writeFile(filepath.Join(dir, string(p)+".html"), data); err != nil {
				return err
			}
			if p == layout.DefaultProfile {
				return writeFile(filepath.Join(dir, "index.html"), data)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		spinner.StopWithError("Export failed")
		return err
	}
	if err := copyAssets(filepath.Join(dir, "static")); err != nil {
		spinner.StopWithError("Copying assets failed")
		return err
	}

	spinner.StopWithSuccess(fmt.Sprintf("Exported %d profiles", len(layout.Profiles())))
	printFile(dir)
	prog.done("export complete")
	return nil
}

// copyAssets writes the embedded static files under dir.
func copyAssets(dir string) error {
	assets := components.Assets()
	return fs.WalkDir(assets, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(assets, path)
		if err != nil {
			return err
		}
		return writeFile(filepath.Join(dir, filepath.FromSlash(path)), data)
	})
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", filepath.Dir(path))
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
	}
	return nil
}
