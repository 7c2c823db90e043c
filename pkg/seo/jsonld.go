package seo

import (
	"encoding/json"
	"html/template"
	"strings"

	"github.com/petspa/salonsite/pkg/content"
)

const schemaContext = "https://schema.org"

// Organization is the schema.org Organization node.
type Organization struct {
	Context     string   `json:"@context"`
	Type        string   `json:"@type"`
	Name        string   `json:"name"`
	URL         string   `json:"url"`
	Logo        string   `json:"logo,omitempty"`
	Description string   `json:"description,omitempty"`
	SameAs      []string `json:"sameAs,omitempty"`
}

// WebSite is the schema.org WebSite node.
type WebSite struct {
	Context string `json:"@context"`
	Type    string `json:"@type"`
	Name    string `json:"name"`
	URL     string `json:"url"`
}

// PostalAddress is embedded in LocalBusiness.
type PostalAddress struct {
	Type            string `json:"@type"`
	StreetAddress   string `json:"streetAddress,omitempty"`
	AddressLocality string `json:"addressLocality,omitempty"`
	AddressRegion   string `json:"addressRegion,omitempty"`
	PostalCode      string `json:"postalCode,omitempty"`
	AddressCountry  string `json:"addressCountry,omitempty"`
}

// LocalBusiness is the schema.org LocalBusiness node.
type LocalBusiness struct {
	Context     string         `json:"@context"`
	Type        string         `json:"@type"`
	Name        string         `json:"name"`
	URL         string         `json:"url"`
	Description string         `json:"description,omitempty"`
	Image       string         `json:"image,omitempty"`
	Telephone   string         `json:"telephone,omitempty"`
	Email       string         `json:"email,omitempty"`
	PriceRange  string         `json:"priceRange,omitempty"`
	Address     *PostalAddress `json:"address,omitempty"`
}

// FAQPage is emitted when the FAQ section is on the page.
type FAQPage struct {
	Context    string     `json:"@context"`
	Type       string     `json:"@type"`
	MainEntity []Question `json:"mainEntity"`
}

type Question struct {
	Type           string `json:"@type"`
	Name           string `json:"name"`
	AcceptedAnswer Answer `json:"acceptedAnswer"`
}

type Answer struct {
	Type string `json:"@type"`
	Text string `json:"text"`
}

// Options selects the optional nodes.
type Options struct {
	// BaseURL overrides the business URL from the content.
	BaseURL string
	// FAQ adds a FAQPage node built from the FAQ items.
	FAQ bool
}

// Graph returns the structured-data nodes for site, in the order
// Organization, WebSite, LocalBusiness and (optionally) FAQPage.
func Graph(site *content.Site, opts Options) []any {
	b := site.Business
	url := b.URL
	if opts.BaseURL != "" {
		url = opts.BaseURL
	}

	nodes := []any{
		Organization{
			Context:     schemaContext,
			Type:        "Organization",
			Name:        b.Name,
			URL:         url,
			Description: b.Description,
			SameAs:      b.Social,
		},
		WebSite{Context: schemaContext, Type: "WebSite", Name: b.Name, URL: url},
		localBusiness(site, url),
	}
	if opts.FAQ && len(site.FAQ.Items) > 0 {
		nodes = append(nodes, faqPage(site.FAQ))
	}
	return nodes
}

func localBusiness(site *content.Site, url string) LocalBusiness {
	b := site.Business
	lb := LocalBusiness{
		Context:     schemaContext,
		Type:        "LocalBusiness",
		Name:        b.Name,
		URL:         url,
		Description: b.Description,
		Image:       site.Hero.BackgroundImage,
		Telephone:   b.Telephone,
		Email:       b.Email,
		PriceRange:  b.PriceRange,
	}
	if a := b.Address; a != (content.Address{}) {
		lb.Address = &PostalAddress{
			Type:            "PostalAddress",
			StreetAddress:   a.Street,
			AddressLocality: a.Locality,
			AddressRegion:   a.Region,
			PostalCode:      a.PostalCode,
			AddressCountry:  a.Country,
		}
	}
	return lb
}

func faqPage(f content.FAQ) FAQPage {
	page := FAQPage{Context: schemaContext, Type: "FAQPage"}
	for _, q := range f.Items {
		page.MainEntity = append(page.MainEntity, Question{
			Type:           "Question",
			Name:           q.Question,
			AcceptedAnswer: Answer{Type: "Answer", Text: stripTags(string(q.Answer))},
		})
	}
	return page
}

// JSONLD encodes the graph for a <script type="application/ld+json">
// element. encoding/json escapes <, > and & so the result cannot close the
// script element.
func JSONLD(site *content.Site, opts Options) (template.JS, error) {
	data, err := json.Marshal(Graph(site, opts))
	if err != nil {
		return "", err
	}
	return template.JS(data), nil
}

// stripTags drops markup from sanitized rich text.
func stripTags(s string) string {
	var b strings.Builder
	depth := 0
	for _, r := range s {
		switch {
		case r == '<':
			depth++
		case r == '>' && depth > 0:
			depth--
		case depth == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}
