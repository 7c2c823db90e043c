package components

import (
	"html/template"
	"io"
)

// Document is the data for the page shell.
type Document struct {
	Lang        string
	Title       string
	Description string
	Keywords    string
	Canonical   string
	Locale      string

	// Attrs are the layout and palette side-channel values rendered onto
	// the <html> element, each preceded by a space.
	Attrs template.HTMLAttr

	// JSONLD is the structured data block, already encoded.
	JSONLD template.JS

	Profiles []Option
	Palettes []Option

	Body template.HTML
}

// Option is one entry of a switcher form.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// Shell is the document template.
var Shell = NewUnit("", "shell")

// RenderDocument writes the full HTML document.
func RenderDocument(w io.Writer, d Document) error {
	return Shell.execute(w, d)
}
