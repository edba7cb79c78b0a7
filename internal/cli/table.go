package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/supertile/pkg/pipeline"
)

// tableCommand creates the table command, which exports every request of a
// kind as a JSON lookup table.
func (c *CLI) tableCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)
	opts := pipeline.TableOptions{}

	cmd := &cobra.Command{
		Use:   "table KIND",
		Short: "Export the lookup table of a kind as JSON",
		Long: `Export the lookup table of a kind as JSON.

Every distinct request of the kind is computed: 60 for two-input kinds, 15 for
wire-through kinds and 6 for sinks. Positions are named by compass direction
and wires by the sides they join, e.g. NORTH_EAST_WEST_WIRE. Requests without
a layout are listed under "failures" with their error code.

Tables are cached; use --refresh to recompute.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTable(cmd, args[0], output, noCache, opts)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompute a cached table")
	cmd.Flags().IntVar(&opts.Workers, "workers", c.Config.Workers, "concurrent layouts (0: one per CPU)")

	return cmd
}

func (c *CLI) runTable(cmd *cobra.Command, kind, output string, noCache bool, opts pipeline.TableOptions) error {
	runner, _, err := c.newRunner(noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	res, err := runner.Table(ctx, kind, opts)
	if err != nil {
		return err
	}
	logger.Debug("table ready", "name", res.Table.Name, "cached", res.CacheHit, "duration", res.Duration)

	if output == "" || output == "-" {
		return res.Table.WriteJSON(cmd.OutOrStdout())
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}
	if err := res.Table.WriteJSON(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", output, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	total := len(res.Table.Entries)
	failed := res.Table.Failures()
	printSuccess("Exported %s", res.Table.Name)
	printFile(output)
	printDetail("%d layouts, %d failures", total-failed, failed)
	if res.CacheHit {
		printDetail("from cache")
	}
	return nil
}
