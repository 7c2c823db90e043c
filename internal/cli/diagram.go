package cli

import (
	"context"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/petspa/salonsite/pkg/diagram"
	"github.com/petspa/salonsite/pkg/errors"
	"github.com/petspa/salonsite/pkg/layout"
)

type diagramOpts struct {
	output   string
	profiles []string
	families []string
	detailed bool
	scale    float64
}

// diagramCommand creates the diagram command.
func (c *CLI) diagramCommand() *cobra.Command {
	opts := diagramOpts{scale: 2.0}

	cmd := &cobra.Command{
		Use:   "diagram",
		Short: "Draw which variants each profile selects",
		Long: `Draw the mapping from layout profiles to section variants.

The output format follows the -o extension: .dot, .svg, .pdf or .png.
Without -o the DOT source is printed. Variants no profile selects are
drawn dashed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiagram(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (.dot, .svg, .pdf, .png)")
	cmd.Flags().StringSliceVar(&opts.profiles, "profile", nil, "only these profiles (repeatable)")
	cmd.Flags().StringSliceVar(&opts.families, "family", nil, "only these variant families: "+strings.Join(diagram.Families(), ", "))
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "label profiles with their descriptions")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor")

	return cmd
}

func runDiagram(ctx context.Context, stdout io.Writer, opts diagramOpts) error {
	dopts := diagram.Options{Families: opts.families, Detailed: opts.detailed}
	for _, raw := range opts.profiles {
		p, err := layout.ParseProfile(raw)
		if err != nil {
			return err
		}
		dopts.Profiles = append(dopts.Profiles, p)
	}
	for _, f := range opts.families {
		if !slices.Contains(diagram.Families(), f) {
			return errors.New(errors.ErrCodeInvalidInput, "unknown family %q (want one of %s)", f, strings.Join(diagram.Families(), ", "))
		}
	}
	dot := diagram.ToDOT(dopts)

	if opts.output == "" {
		_, err := io.WriteString(stdout, dot)
		return err
	}

	var (
		data []byte
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(opts.output)); ext {
	case ".dot", ".gv":
		data = []byte(dot)
	case ".svg":
		data, err = diagram.RenderSVG(ctx, dot)
	case ".pdf":
		data, err = diagram.RenderPDF(ctx, dot)
	case ".png":
		data, err = diagram.RenderPNG(ctx, dot, opts.scale)
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported diagram format %q (want .dot, .svg, .pdf or .png)", ext)
	}
	if err != nil {
		return err
	}
	if err := writeFile(opts.output, data); err != nil {
		return err
	}
	printSuccess("Diagram written")
	printFile(opts.output)
	return nil
}
