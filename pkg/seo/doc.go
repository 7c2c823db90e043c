// Package seo builds the search-engine facing output of the site: the
// JSON-LD structured data embedded in the page head, the sitemap and the
// robots file.
//
// Everything is derived from the content payload's meta and business
// sections plus the public base URL, so an operator changing the content
// file changes the structured data with it.
package seo
