package components

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"sync"
	"sync/atomic"
)

//go:embed templates
var templates embed.FS

const partials = "templates/partials.gohtml"

// Unit is a lazily parsed template for one section variant.
type Unit struct {
	family string
	name   string
	file   string

	once sync.Once
	tmpl *template.Template
	err  error

	parses atomic.Int32
}

// NewUnit returns a handle for templates/<family>/<name>.gohtml. Nothing is
// read until the first render.
func NewUnit(family, name string) *Unit {
	return &Unit{
		family: family,
		name:   name,
		file:   path.Join("templates", family, name+".gohtml"),
	}
}

// Family returns the section family the unit belongs to.
func (u *Unit) Family() string { return u.family }

// Name returns the variant name, which is also the template name.
func (u *Unit) Name() string { return u.name }

// Loaded reports whether the template has been parsed.
func (u *Unit) Loaded() bool { return u.parses.Load() > 0 }

func (u *Unit) load() (*template.Template, error) {
	u.once.Do(func() {
		u.parses.Add(1)
		u.tmpl, u.err = template.New(u.name).Funcs(funcs).ParseFS(templates, partials, u.file)
		if u.err != nil {
			u.err = fmt.Errorf("parse %s: %w", u.file, u.err)
		}
	})
	return u.tmpl, u.err
}

// Render executes the unit against p. The template is parsed on the first
// call; a parse error is returned on every call after that.
func (u *Unit) Render(w io.Writer, p Props) error {
	return u.execute(w, p)
}

func (u *Unit) execute(w io.Writer, data any) error {
	t, err := u.load()
	if err != nil {
		return err
	}
	if err := t.ExecuteTemplate(w, path.Base(u.file), data); err != nil {
		return fmt.Errorf("render %s/%s: %w", u.family, u.name, err)
	}
	return nil
}

// Exists reports whether the template file for family/name is embedded.
func Exists(family, name string) bool {
	_, err := fs.Stat(templates, path.Join("templates", family, name+".gohtml"))
	return err == nil
}

// Fixed section units. They have a single variant each.
var (
	About        = NewUnit("sections", "About")
	Testimonials = NewUnit("sections", "Testimonials")
	Contact      = NewUnit("sections", "Contact")
	Footer       = NewUnit("sections", "Footer")
	StickyCTA    = NewUnit("sections", "StickyCTA")
)

// Wrapper units open and close the layout wrapper around the sections.
// Each file defines "open" and "close".
func WrapperUnit(name string) *Unit {
	wrapperOnce.Do(func() {
		wrappers = make(map[string]*Unit)
		for _, n := range []string{"default", "sidebar", "fullscreen", "horizontal", "masonry"} {
			wrappers[n] = NewUnit("wrappers", n)
		}
	})
	if u, ok := wrappers[name]; ok {
		return u
	}
	return wrappers["default"]
}

var (
	wrapperOnce sync.Once
	wrappers    map[string]*Unit
)

// RenderOpen writes the opening half of a wrapper unit.
func (u *Unit) RenderOpen(w io.Writer, p Props) error { return u.executeNamed(w, "open", p) }

// RenderClose writes the closing half of a wrapper unit.
func (u *Unit) RenderClose(w io.Writer, p Props) error { return u.executeNamed(w, "close", p) }

func (u *Unit) executeNamed(w io.Writer, name string, data any) error {
	t, err := u.load()
	if err != nil {
		return err
	}
	if err := t.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("render %s/%s %s: %w", u.family, u.name, name, err)
	}
	return nil
}

//go:embed static
var static embed.FS

// Assets returns the embedded static files (stylesheet), rooted so that
// "site.css" is at the top level.
func Assets() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
