// Package diagram draws the mapping from layout profiles to the section
// variants they select.
//
// # Overview
//
// Each profile is a node on the left. Every variant family (hero, services,
// gallery and so on) is a cluster of variant nodes, and an edge joins a
// profile to each variant its configuration names. Variants no profile
// selects are drawn dashed and grey, which makes dead templates easy to
// spot.
//
// # Usage
//
//	dot := diagram.ToDOT(diagram.Options{})
//	svg, err := diagram.RenderSVG(dot)
//
// PDF and PNG go through SVG:
//
//	pdf, err := diagram.RenderPDF(dot)
//	png, err := diagram.RenderPNG(dot, 2.0)
//
// # Dependencies
//
// SVG rendering runs in-process with [github.com/goccy/go-graphviz]. PDF and
// PNG conversion requires librsvg (rsvg-convert).
package diagram
