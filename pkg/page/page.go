// Package page is the composition root: it turns a visitor's active
// profile and palette plus the shared content into one HTML document.
//
// The section order is fixed. Only the variant rendered for each slot
// depends on the profile:
//
//	navigation, hero, services, about, gallery, comparison, team,
//	testimonials, [pricing], [faq], contact, footer, sticky-cta
//
// Pricing and FAQ are optional and appear only when enabled. Every unit
// receives the same [components.Props].
//
// Composition never fails on lookups: variants resolve through the
// resolver's fallback. Only template execution and writer errors surface.
package page

import (
	"bytes"
	"context"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/petspa/salonsite/pkg/components"
	"github.com/petspa/salonsite/pkg/content"
	"github.com/petspa/salonsite/pkg/errors"
	"github.com/petspa/salonsite/pkg/layout"
	"github.com/petspa/salonsite/pkg/observability"
	"github.com/petspa/salonsite/pkg/palette"
	"github.com/petspa/salonsite/pkg/profile"
	"github.com/petspa/salonsite/pkg/resolver"
	"github.com/petspa/salonsite/pkg/seo"
)

// Section names in render order.
const (
	SectionNavigation   = "navigation"
	SectionHero         = "hero"
	SectionServices     = "services"
	SectionAbout        = "about"
	SectionGallery      = "gallery"
	SectionComparison   = "comparison"
	SectionTeam         = "team"
	SectionTestimonials = "testimonials"
	SectionPricing      = "pricing"
	SectionFAQ          = "faq"
	SectionContact      = "contact"
	SectionFooter       = "footer"
	SectionStickyCTA    = "sticky-cta"
)

// Order returns the section sequence for the enabled optional sections.
func Order(opt components.Sections) []string {
	out := []string{
		SectionNavigation, SectionHero, SectionServices, SectionAbout,
		SectionGallery, SectionComparison, SectionTeam, SectionTestimonials,
	}
	if opt.Pricing {
		out = append(out, SectionPricing)
	}
	if opt.FAQ {
		out = append(out, SectionFAQ)
	}
	return append(out, SectionContact, SectionFooter, SectionStickyCTA)
}

// State is everything one render depends on.
type State struct {
	Snapshot profile.Snapshot
	Palette  palette.Palette

	// Presentation holds the side-channel values for the <html> element.
	// When nil they are derived from Snapshot and Palette.
	Presentation *profile.Attributes

	Content  *content.Site
	Sections components.Sections

	// Sent renders the contact section in its submitted state.
	Sent bool
	// Year stamps the footer. Zero takes the year from the composer's clock.
	Year int
}

// Composer renders pages.
type Composer struct {
	resolver *resolver.Resolver
	baseURL  string
	logger   *log.Logger
	now      func() time.Time
}

// Option configures a Composer.
type Option func(*Composer)

// WithResolver replaces the process-wide resolver.
func WithResolver(r *resolver.Resolver) Option {
	return func(c *Composer) { c.resolver = r }
}

// WithBaseURL sets the canonical site URL used in the head and JSON-LD.
func WithBaseURL(u string) Option {
	return func(c *Composer) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(c *Composer) { c.logger = l }
}

// WithClock sets the time source for the footer year.
func WithClock(now func() time.Time) Option {
	return func(c *Composer) { c.now = now }
}

// New returns a composer.
func New(opts ...Option) *Composer {
	c := &Composer{
		resolver: resolver.Default(),
		logger:   log.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Render writes the full document for st to w. Output is buffered, so w
// receives nothing when rendering fails.
func (c *Composer) Render(ctx context.Context, w io.Writer, st State) (err error) {
	prof, pal := string(st.Snapshot.Profile), string(st.Palette.ID)
	start := time.Now()
	observability.Render().OnRenderStart(ctx, prof, pal)

	var size int
	defer func() {
		observability.Render().OnRenderComplete(ctx, prof, pal, size, time.Since(start), err)
	}()

	data, err := c.Bytes(st)
	if err != nil {
		return err
	}
	size = len(data)
	_, err = w.Write(data)
	return err
}

// Bytes renders st into memory.
func (c *Composer) Bytes(st State) ([]byte, error) {
	if st.Content == nil {
		return nil, errors.New(errors.ErrCodeInternal, "render: no content")
	}
	year := st.Year
	if year == 0 {
		year = c.now().Year()
	}
	props := components.Props{
		Site:     st.Content,
		Config:   st.Snapshot.Config,
		Profile:  st.Snapshot.Profile,
		Sections: st.Sections,
		Sent:     st.Sent,
		Year:     year,
	}

	var body bytes.Buffer
	wrapper := components.WrapperUnit(string(props.Config.Wrapper))
	if err := wrapper.RenderOpen(&body, props); err != nil {
		return nil, err
	}
	for _, name := range Order(st.Sections) {
		if err := c.unit(name, props.Config).Render(&body, props); err != nil {
			return nil, err
		}
		body.WriteByte('\n')
	}
	if err := wrapper.RenderClose(&body, props); err != nil {
		return nil, err
	}

	doc, err := c.document(st, body.String())
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := components.RenderDocument(&out, doc); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func (c *Composer) unit(name string, cfg layout.Configuration) *components.Unit {
	r := c.resolver
	switch name {
	case SectionNavigation:
		return r.ResolveNavigation(cfg.Navigation)
	case SectionHero:
		return r.ResolveHero(cfg.Hero)
	case SectionServices:
		return r.ResolveServices(cfg.Services)
	case SectionGallery:
		return r.ResolveGallery(cfg.Gallery)
	case SectionComparison:
		return r.ResolveComparison(cfg.Comparison)
	case SectionTeam:
		return r.ResolveTeam(cfg.Team)
	case SectionPricing:
		return r.ResolvePricing(cfg.Pricing)
	case SectionFAQ:
		return r.ResolveFAQ(cfg.FAQ)
	case SectionAbout:
		return components.About
	case SectionTestimonials:
		return components.Testimonials
	case SectionContact:
		return components.Contact
	case SectionFooter:
		return components.Footer
	default:
		return components.StickyCTA
	}
}

func (c *Composer) document(st State, body string) (components.Document, error) {
	site := st.Content
	attrs := st.Presentation
	if attrs == nil {
		attrs = profile.NewAttributes()
		profile.Write(attrs, st.Snapshot.Profile)
		palette.Write(attrs, st.Palette)
	}

	jsonld, err := seo.JSONLD(site, seo.Options{BaseURL: c.baseURL, FAQ: st.Sections.FAQ})
	if err != nil {
		return components.Document{}, err
	}

	canonical := c.baseURL
	if canonical == "" {
		canonical = site.Business.URL
	}

	doc := components.Document{
		Lang:        site.Meta.Lang,
		Title:       site.Meta.Title,
		Description: site.Meta.Description,
		Keywords:    strings.Join(site.Meta.Keywords, ", "),
		Canonical:   canonical,
		Locale:      site.Meta.Locale,
		Attrs:       attrs.HTMLAttrs(),
		JSONLD:      jsonld,
		Body:        template.HTML(body),
	}
	for _, e := range layout.All() {
		doc.Profiles = append(doc.Profiles, components.Option{
			Value:    string(e.Profile),
			Label:    e.Config.Name,
			Selected: e.Profile == st.Snapshot.Profile,
		})
	}
	for _, p := range palette.All() {
		doc.Palettes = append(doc.Palettes, components.Option{
			Value:    string(p.ID),
			Label:    p.Name,
			Selected: p.ID == st.Palette.ID,
		})
	}
	return doc, nil
}
