package components

import (
	"github.com/petspa/salonsite/pkg/content"
	"github.com/petspa/salonsite/pkg/layout"
)

// Props is the data every unit renders against.
type Props struct {
	Site    *content.Site
	Config  layout.Configuration
	Profile layout.Profile

	// Sections lists the optional sections enabled for this page, so
	// navigation can link to them.
	Sections Sections

	// Contact form state after a post-redirect-get round trip.
	Sent bool

	// Year stamps the footer copyright.
	Year int
}

// Sections toggles the optional sections.
type Sections struct {
	FAQ     bool
	Pricing bool
}
