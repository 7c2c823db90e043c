package seo

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"time"
)

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

// URL is one sitemap entry.
type URL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod,omitempty"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float64 `xml:"priority"`
}

type urlset struct {
	XMLName xml.Name `xml:"urlset"`
	NS      string   `xml:"xmlns,attr"`
	URLs    []URL    `xml:"url"`
}

type anchor struct {
	fragment string
	freq     string
	priority float64
}

// The page is a single document; its main sections are listed as anchors.
var anchors = []anchor{
	{"", "weekly", 1.0},
	{"#services", "monthly", 0.8},
	{"#about", "monthly", 0.7},
	{"#testimonials", "monthly", 0.6},
	{"#contact", "monthly", 0.9},
}

// Entries returns the sitemap entries for baseURL, stamped with modified.
func Entries(baseURL string, modified time.Time) []URL {
	base := strings.TrimRight(baseURL, "/")
	lastmod := modified.UTC().Format("2006-01-02")
	out := make([]URL, 0, len(anchors))
	for _, a := range anchors {
		loc := base
		if a.fragment != "" {
			loc = base + "/" + a.fragment
		}
		out = append(out, URL{Loc: loc, LastMod: lastmod, ChangeFreq: a.freq, Priority: a.priority})
	}
	return out
}

// WriteSitemap writes the sitemap XML document for baseURL.
func WriteSitemap(w io.Writer, baseURL string, modified time.Time) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(urlset{NS: sitemapNS, URLs: Entries(baseURL, modified)}); err != nil {
		return fmt.Errorf("encode sitemap: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// Robots returns the robots.txt body pointing at the sitemap.
func Robots(baseURL string) string {
	return "User-agent: *\nAllow: /\n\nSitemap: " + strings.TrimRight(baseURL, "/") + "/sitemap.xml\n"
}
