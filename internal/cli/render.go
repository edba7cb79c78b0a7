package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/supertile/pkg/pipeline"
	"github.com/matzehuels/supertile/pkg/render/nodelink"
)

// renderCommand creates the render command, which draws a layout as a
// Graphviz graph.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output  string
		format  string
		noCache bool
	)
	opts := pipeline.RenderOptions{}

	cmd := &cobra.Command{
		Use:   "render KIND INPUTS [OUTPUTS]",
		Short: "Draw a layout as DOT, SVG or PNG",
		Long: `Draw a layout as a node-link graph: the core in the middle, the six slots
around it and every used sub-port as an edge.

The output file defaults to KIND_KEY.FORMAT, e.g. OR_305.svg. Use "-o -" to
write to stdout.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := nodelink.ParseFormat(format)
			if err != nil {
				return err
			}
			opts.Format = f
			return c.runRender(cmd, args, output, noCache, opts)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file")
	cmd.Flags().StringVarP(&format, "format", "f", string(pipeline.DefaultFormat), "output format: dot, svg, png")
	cmd.Flags().BoolVarP(&opts.Paths, "paths", "p", false, "colour edges by the signal they carry")
	cmd.Flags().BoolVar(&opts.Detailed, "detailed", false, "label slots with their wire codes and ports")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "re-render a cached image")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, args []string, output string, noCache bool, opts pipeline.RenderOptions) error {
	runner, cat, err := c.newRunner(noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	req, err := requestFromArgs(cat, args)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	res, err := runner.Layout(ctx, req, pipeline.LayoutOptions{Paths: opts.Paths})
	if err != nil {
		return err
	}

	spinner := newSpinner(ctx, fmt.Sprintf("Rendering %s...", opts.Format))
	spinner.Start()
	data, cacheHit, err := runner.Render(ctx, res.Supertile, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	if output == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if output == "" {
		output = fmt.Sprintf("%s_%s.%s", res.Supertile.Kind, req.Key(), opts.Format)
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	printSuccess("Rendered %s", output)
	printFile(output)
	if cacheHit {
		printDetail("from cache")
	}
	return nil
}
