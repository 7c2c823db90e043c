package diagram

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	"github.com/petspa/salonsite/pkg/layout"
)

// Options configures diagram generation.
type Options struct {
	// Profiles limits the diagram to these profiles. Empty means all.
	Profiles []layout.Profile

	// Families limits the diagram to these variant families, by name
	// ("hero", "services", ...). Empty means all.
	Families []string

	// Detailed adds each profile's description to its label.
	Detailed bool
}

// family describes one variant family: its members and how a
// configuration selects one.
type family struct {
	name     string
	variants []string
	pick     func(layout.Configuration) string
}

func strs[V ~string](vs []V) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = string(v)
	}
	return out
}

var families = []family{
	{"navigation", strs(layout.NavigationVariants), func(c layout.Configuration) string { return string(c.Navigation) }},
	{"hero", strs(layout.HeroVariants), func(c layout.Configuration) string { return string(c.Hero) }},
	{"services", strs(layout.ServicesVariants), func(c layout.Configuration) string { return string(c.Services) }},
	{"gallery", strs(layout.GalleryVariants), func(c layout.Configuration) string { return string(c.Gallery) }},
	{"comparison", strs(layout.ComparisonVariants), func(c layout.Configuration) string { return string(c.Comparison) }},
	{"team", strs(layout.TeamVariants), func(c layout.Configuration) string { return string(c.Team) }},
	{"pricing", strs(layout.PricingVariants), func(c layout.Configuration) string { return string(c.Pricing) }},
	{"faq", strs(layout.FAQVariants), func(c layout.Configuration) string { return string(c.FAQ) }},
}

// Families returns the family names in drawing order.
func Families() []string {
	out := make([]string, len(families))
	for i, f := range families {
		out[i] = f.name
	}
	return out
}

// ToDOT converts the profile registry to Graphviz DOT. The result can be
// rendered with [RenderSVG], [RenderPDF] or [RenderPNG].
func ToDOT(opts Options) string {
	entries := layout.All()
	if len(opts.Profiles) > 0 {
		entries = slices.DeleteFunc(entries, func(e layout.Entry) bool {
			return !slices.Contains(opts.Profiles, e.Profile)
		})
	}
	fams := families
	if len(opts.Families) > 0 {
		fams = slices.DeleteFunc(slices.Clone(families), func(f family) bool {
			return !slices.Contains(opts.Families, f.name)
		})
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=1.5;\n")
	buf.WriteString("  nodesep=0.2;\n")
	buf.WriteString("\n")

	for _, e := range entries {
		fmt.Fprintf(&buf, "  %q [label=%q, fillcolor=\"#e0f2f1\"];\n", profileID(e.Profile), profileLabel(e, opts.Detailed))
	}

	for _, f := range fams {
		used := make(map[string]bool)
		for _, e := range entries {
			used[f.pick(e.Config)] = true
		}

		buf.WriteString("\n")
		fmt.Fprintf(&buf, "  subgraph %q {\n", "cluster_"+f.name)
		fmt.Fprintf(&buf, "    label=%q;\n", f.name)
		buf.WriteString("    style=\"rounded,dashed\";\n")
		for _, v := range f.variants {
			attrs := []string{fmt.Sprintf("label=%q", v)}
			if !used[v] {
				attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey", "fontcolor=grey30")
			}
			fmt.Fprintf(&buf, "    %q [%s];\n", variantID(f.name, v), strings.Join(attrs, ", "))
		}
		buf.WriteString("  }\n")

		for _, e := range entries {
			fmt.Fprintf(&buf, "  %q -> %q;\n", profileID(e.Profile), variantID(f.name, f.pick(e.Config)))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func profileID(p layout.Profile) string { return "profile:" + string(p) }

func variantID(fam, v string) string { return fam + ":" + v }

func profileLabel(e layout.Entry, detailed bool) string {
	if !detailed {
		return string(e.Profile)
	}
	return e.Config.Name + "\n" + e.Config.Description
}
