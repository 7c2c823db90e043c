package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"slices"
	"strconv"
)

// Keyer builds cache keys from render inputs.
type Keyer interface {
	// PageKey is the key for a full rendered page.
	PageKey(opts PageKeyOpts) string
	// ExportKey is the key for a static export written by the CLI.
	ExportKey(opts PageKeyOpts, baseURL string) string
}

// PageKeyOpts are the inputs a rendered page depends on.
type PageKeyOpts struct {
	Profile        string
	Palette        string
	ContentVersion string
	// Sections lists the optional sections on the page, in any order.
	Sections []string
	// Sent marks the post-submit variant of the contact section.
	Sent bool
	// Year is the footer copyright year baked into the page.
	Year int
}

func (o PageKeyOpts) normalized() PageKeyOpts {
	o.Sections = slices.Clone(o.Sections)
	slices.Sort(o.Sections)
	o.Sections = slices.Compact(o.Sections)
	return o
}

// DefaultKeyer hashes the options under a fixed prefix per key kind.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// PageKey returns page:<hash>.
func (DefaultKeyer) PageKey(opts PageKeyOpts) string {
	o := opts.normalized()
	return digestKey("page", o, "")
}

// ExportKey returns export:<hash>.
func (DefaultKeyer) ExportKey(opts PageKeyOpts, baseURL string) string {
	o := opts.normalized()
	return digestKey("export", o, baseURL)
}

// digestKey returns prefix:sha256 over the length-prefixed inputs, so that
// no two distinct input lists share a key.
func digestKey(prefix string, o PageKeyOpts, baseURL string) string {
	h := sha256.New()
	field := func(s string) {
		h.Write(strconv.AppendInt(nil, int64(len(s)), 10))
		h.Write([]byte{':'})
		h.Write([]byte(s))
	}
	field(o.Profile)
	field(o.Palette)
	field(o.ContentVersion)
	field(strconv.Itoa(len(o.Sections)))
	for _, s := range o.Sections {
		field(s)
	}
	field(strconv.FormatBool(o.Sent))
	field(strconv.Itoa(o.Year))
	field(baseURL)
	return prefix + ":" + hex.EncodeToString(h.Sum(nil))
}

// Digest returns the hex SHA-256 of data.
func Digest(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
