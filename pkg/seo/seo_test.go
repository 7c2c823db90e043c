package seo

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/petspa/salonsite/pkg/content"
)

func TestGraph(t *testing.T) {
	site := content.Default().Site
	nodes := Graph(site, Options{})
	if len(nodes) != 3 {
		t.Fatalf("Graph returned %d nodes, want 3", len(nodes))
	}
	org := nodes[0].(Organization)
	if org.Name != site.Business.Name || org.URL != site.Business.URL {
		t.Errorf("organization = %+v", org)
	}
	lb := nodes[2].(LocalBusiness)
	if lb.Address == nil || lb.Address.AddressCountry != site.Business.Address.Country {
		t.Errorf("local business address = %+v", lb.Address)
	}
}

func TestGraphOptions(t *testing.T) {
	site := content.Default().Site
	nodes := Graph(site, Options{BaseURL: "https://example.test", FAQ: true})
	if len(nodes) != 4 {
		t.Fatalf("Graph returned %d nodes, want 4", len(nodes))
	}
	if url := nodes[1].(WebSite).URL; url != "https://example.test" {
		t.Errorf("website url = %q", url)
	}
	faq := nodes[3].(FAQPage)
	if len(faq.MainEntity) != len(site.FAQ.Items) {
		t.Errorf("faq entries = %d, want %d", len(faq.MainEntity), len(site.FAQ.Items))
	}
	for _, q := range faq.MainEntity {
		if strings.ContainsAny(q.AcceptedAnswer.Text, "<>") {
			t.Errorf("answer keeps markup: %q", q.AcceptedAnswer.Text)
		}
	}
}

func TestJSONLDEscapes(t *testing.T) {
	site := *content.Default().Site
	site.Business.Name = `</script><script>alert(1)</script>`

	js, err := JSONLD(&site, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(js), "</script>") {
		t.Errorf("JSON-LD can close the script element: %s", js)
	}
	var nodes []map[string]any
	if err := json.Unmarshal([]byte(js), &nodes); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if nodes[0]["@type"] != "Organization" {
		t.Errorf("first node = %v", nodes[0]["@type"])
	}
}

func TestStripTags(t *testing.T) {
	tests := []struct{ in, want string }{
		{"plain", "plain"},
		{`Call <a href="tel:1">us</a> now`, "Call us now"},
		{"<strong>bold</strong>", "bold"},
	}
	for _, tt := range tests {
		if got := stripTags(tt.in); got != tt.want {
			t.Errorf("stripTags(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEntries(t *testing.T) {
	mod := time.Date(2026, 3, 4, 15, 0, 0, 0, time.UTC)
	got := Entries("https://petspa2.ro/", mod)
	want := []URL{
		{"https://petspa2.ro", "2026-03-04", "weekly", 1},
		{"https://petspa2.ro/#services", "2026-03-04", "monthly", 0.8},
		{"https://petspa2.ro/#about", "2026-03-04", "monthly", 0.7},
		{"https://petspa2.ro/#testimonials", "2026-03-04", "monthly", 0.6},
		{"https://petspa2.ro/#contact", "2026-03-04", "monthly", 0.9},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Entries mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteSitemap(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSitemap(&buf, "https://petspa2.ro", time.Now()); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "<?xml") {
		t.Error("missing XML header")
	}
	var doc urlset
	if err := xml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("invalid XML: %v", err)
	}
	if len(doc.URLs) != 5 {
		t.Errorf("urlset has %d urls, want 5", len(doc.URLs))
	}
	if !strings.Contains(buf.String(), `xmlns="`+sitemapNS+`"`) {
		t.Error("missing sitemap namespace")
	}
}

func TestRobots(t *testing.T) {
	got := Robots("https://petspa2.ro/")
	if !strings.Contains(got, "Sitemap: https://petspa2.ro/sitemap.xml") {
		t.Errorf("Robots = %q", got)
	}
}
