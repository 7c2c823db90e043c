package content

import (
	"bytes"
	_ "embed"
	"os"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"

	"github.com/petspa/salonsite/pkg/cache"
	"github.com/petspa/salonsite/pkg/errors"
)

//go:embed default.toml
var defaultTOML []byte

var (
	validate = sync.OnceValue(func() *validator.Validate {
		return validator.New(validator.WithRequiredStructEnabled())
	})

	// richText allows the inline subset used by about paragraphs and FAQ
	// answers. Links get rel="nofollow noopener".
	richText = sync.OnceValue(func() *bluemonday.Policy {
		p := bluemonday.NewPolicy()
		p.AllowElements("strong", "em", "b", "i", "br", "span")
		p.AllowAttrs("href").OnElements("a")
		p.AllowURLSchemes("http", "https", "mailto", "tel")
		p.RequireParseableURLs(true)
		p.RequireNoFollowOnLinks(true)
		p.AddTargetBlankToFullyQualifiedLinks(true)
		return p
	})
)

// Document is a decoded content payload plus the version of the bytes it
// came from. Version changes whenever the source changes and is used in
// page cache keys.
type Document struct {
	Site    *Site
	Version string
	Source  string
}

// Default decodes the embedded content. It panics if the embedded copy is
// invalid, which the package tests rule out.
func Default() *Document {
	doc, err := Decode(defaultTOML, "embedded")
	if err != nil {
		panic(err)
	}
	return doc
}

// Load reads and decodes a TOML content file.
func Load(path string) (*Document, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidContent, err, "read content file")
	}
	return Decode(data, path)
}

// Decode parses TOML content, rejects unknown keys, validates the result
// and sanitizes every rich-text field.
func Decode(data []byte, source string) (*Document, error) {
	var site Site
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&site)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidContent, err, "decode %s", source)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidContent, "%s: unknown key %q", source, undecoded[0].String())
	}
	if err := validate().Struct(&site); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidContent, err, "validate %s", source)
	}
	Sanitize(&site)
	return &Document{Site: &site, Version: cache.Digest(data)[:16], Source: source}, nil
}

// Sanitize cleans every rich-text field in place.
func Sanitize(site *Site) {
	p := richText()
	for i, para := range site.About.Paragraphs {
		site.About.Paragraphs[i] = RichText(p.Sanitize(string(para)))
	}
	for i, q := range site.FAQ.Items {
		site.FAQ.Items[i].Answer = RichText(p.Sanitize(string(q.Answer)))
	}
}
