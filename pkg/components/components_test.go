package components

import (
	"bytes"
	"html/template"
	"strings"
	"sync"
	"testing"

	"github.com/petspa/salonsite/pkg/content"
	"github.com/petspa/salonsite/pkg/layout"
)

func names[V ~string](vs []V) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = string(v)
	}
	return out
}

var families = map[string][]string{
	"hero":       names(layout.HeroVariants),
	"services":   names(layout.ServicesVariants),
	"gallery":    names(layout.GalleryVariants),
	"team":       names(layout.TeamVariants),
	"comparison": names(layout.ComparisonVariants),
	"navigation": names(layout.NavigationVariants),
	"faq":        names(layout.FAQVariants),
	"pricing":    names(layout.PricingVariants),
}

func TestEveryVariantHasTemplate(t *testing.T) {
	for family, variants := range families {
		for _, v := range variants {
			if !Exists(family, v) {
				t.Errorf("no template for %s/%s", family, v)
			}
		}
	}
}

func TestExistsUnknown(t *testing.T) {
	if Exists("hero", "HeroNope") {
		t.Error("Exists(hero, HeroNope) = true")
	}
}

func props(t *testing.T, p layout.Profile) Props {
	t.Helper()
	cfg, err := layout.Lookup(p)
	if err != nil {
		t.Fatalf("Lookup(%s): %v", p, err)
	}
	return Props{
		Site:     content.Default().Site,
		Config:   cfg,
		Profile:  p,
		Sections: Sections{FAQ: true, Pricing: true},
		Year:     2026,
	}
}

func TestRenderEveryVariant(t *testing.T) {
	p := props(t, layout.Classic)
	for family, variants := range families {
		for _, v := range variants {
			t.Run(family+"/"+v, func(t *testing.T) {
				var buf bytes.Buffer
				if err := NewUnit(family, v).Render(&buf, p); err != nil {
					t.Fatalf("Render: %v", err)
				}
				if buf.Len() == 0 {
					t.Error("empty output")
				}
			})
		}
	}
}

func TestRenderFixedSectionsEveryProfile(t *testing.T) {
	for _, prof := range layout.Profiles() {
		p := props(t, prof)
		for _, u := range []*Unit{About, Testimonials, Contact, Footer, StickyCTA} {
			var buf bytes.Buffer
			if err := u.Render(&buf, p); err != nil {
				t.Fatalf("%s with %s: %v", u.Name(), prof, err)
			}
		}
	}
}

func TestUnitParsesOnce(t *testing.T) {
	u := NewUnit("hero", "HeroMinimal")
	if u.Loaded() {
		t.Fatal("unit loaded before first render")
	}

	p := props(t, layout.Minimal)
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var buf bytes.Buffer
			if err := u.Render(&buf, p); err != nil {
				t.Errorf("Render: %v", err)
			}
		}()
	}
	wg.Wait()

	if got := u.parses.Load(); got != 1 {
		t.Errorf("parses = %d, want 1", got)
	}
	if !u.Loaded() {
		t.Error("Loaded() = false after render")
	}
}

func TestUnitMissingTemplate(t *testing.T) {
	u := NewUnit("hero", "HeroNope")
	p := props(t, layout.Classic)

	var buf bytes.Buffer
	err1 := u.Render(&buf, p)
	err2 := u.Render(&buf, p)
	if err1 == nil || err2 == nil {
		t.Fatal("expected parse error")
	}
	if err1 != err2 {
		t.Errorf("parse error not cached: %v vs %v", err1, err2)
	}
	if got := u.parses.Load(); got != 1 {
		t.Errorf("parses = %d, want 1", got)
	}
}

func TestRenderEscapesContent(t *testing.T) {
	p := props(t, layout.Classic)
	site := *p.Site
	site.Hero.Headline = `<script>alert(1)</script>`
	p.Site = &site

	var buf bytes.Buffer
	if err := NewUnit("hero", "HeroCentered").Render(&buf, p); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "<script>") {
		t.Errorf("headline not escaped:\n%s", buf.String())
	}
}

func TestRenderUsesConfigStyles(t *testing.T) {
	p := props(t, layout.Bento)
	var buf bytes.Buffer
	if err := NewUnit("services", "ServicesGrid").Render(&buf, p); err != nil {
		t.Fatal(err)
	}
	want := cardClass(p.Config)
	if !strings.Contains(buf.String(), want) {
		t.Errorf("output missing card class %q", want)
	}
}

func TestContactSent(t *testing.T) {
	p := props(t, layout.Classic)
	p.Sent = true
	var buf bytes.Buffer
	if err := Contact.Render(&buf, p); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "<form") {
		t.Error("form rendered after submit")
	}
	if !strings.Contains(buf.String(), template.HTMLEscapeString(p.Site.Contact.SuccessMessage)) {
		t.Error("success message missing")
	}
}

func TestWrappers(t *testing.T) {
	p := props(t, layout.Horizontal)
	for _, w := range []layout.Wrapper{
		layout.WrapperDefault, layout.WrapperSidebar, layout.WrapperFullscreen,
		layout.WrapperHorizontal, layout.WrapperMasonry,
	} {
		u := WrapperUnit(string(w))
		var buf bytes.Buffer
		if err := u.RenderOpen(&buf, p); err != nil {
			t.Fatalf("%s open: %v", w, err)
		}
		if err := u.RenderClose(&buf, p); err != nil {
			t.Fatalf("%s close: %v", w, err)
		}
		out := buf.String()
		if strings.Count(out, "<div") != strings.Count(out, "</div>") {
			t.Errorf("%s: unbalanced wrapper %q", w, out)
		}
		if !strings.Contains(out, "layout-"+string(w)+"-wrapper") {
			t.Errorf("%s: missing wrapper class in %q", w, out)
		}
	}
	if WrapperUnit("nope") != WrapperUnit("default") {
		t.Error("unknown wrapper did not fall back to default")
	}
}

func TestRenderDocument(t *testing.T) {
	var buf bytes.Buffer
	err := RenderDocument(&buf, Document{
		Lang:     "ro",
		Title:    "PetSPA2",
		Attrs:    template.HTMLAttr(` data-layout="bento"`),
		JSONLD:   template.JS(`{"@type":"Organization"}`),
		Profiles: []Option{{Value: "classic", Label: "Classic"}, {Value: "bento", Label: "Bento", Selected: true}},
		Palettes: []Option{{Value: "fresh-clean", Label: "Fresh & Clean", Selected: true}},
		Body:     template.HTML(`<main id="body"></main>`),
	})
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		`<html lang="ro" data-layout="bento">`,
		`<main id="body"></main>`,
		`{"@type":"Organization"}`,
		`<option value="bento" selected>Bento</option>`,
		`action="/layout"`,
		`action="/palette"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("document missing %q", want)
		}
	}
}

func TestAssets(t *testing.T) {
	f, err := Assets().Open("site.css")
	if err != nil {
		t.Fatalf("open site.css: %v", err)
	}
	f.Close()
}

func TestFuncs(t *testing.T) {
	if got := cls("a", "", " b ", "c"); got != "a b c" {
		t.Errorf("cls = %q", got)
	}
	if _, err := dict("a"); err == nil {
		t.Error("dict with odd args did not fail")
	}
	if _, err := dict(1, 2); err == nil {
		t.Error("dict with non-string key did not fail")
	}
	for name, want := range map[string]string{
		"Ana Maria Pop":  "AMP",
		"Ștefan Ionescu": "ȘI",
		"élise țurcanu":  "ÉȚ",
		"  ":             "",
	} {
		if got := initials(name); got != want {
			t.Errorf("initials(%q) = %q, want %q", name, got, want)
		}
	}
	if icon("nope") != "" {
		t.Error("unknown icon rendered")
	}
	if !strings.Contains(string(icon("star")), "<svg") {
		t.Error("star icon missing svg")
	}
}
