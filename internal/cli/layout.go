package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/supertile/pkg/pipeline"
	"github.com/matzehuels/supertile/pkg/render"
	"github.com/matzehuels/supertile/pkg/server"
)

// layoutFlags holds the output switches of the layout command.
type layoutFlags struct {
	reduced bool // one line: "CORE_3, w0, ..., w5"
	timed   bool // log the computation time
	paths   bool // trace routed signals on the hexagon
	json    bool // print the layout as JSON
}

// layoutCommand creates the layout command, the main entry point.
func (c *CLI) layoutCommand() *cobra.Command {
	var flags layoutFlags

	cmd := &cobra.Command{
		Use:   "layout KIND INPUTS [OUTPUTS]",
		Short: "Compute the layout of one supertile",
		Long: `Compute the layout of one supertile.

INPUTS and OUTPUTS are ring positions 0-5, clockwise from north-east, written
as digits with optional commas: "05", "0,5". Use "-" for none.

Examples:
  supertile layout OR 05 3       # OR with inputs 0 and 5, output 3
  supertile layout WIRE 4 1 -r   # reduced one-line form
  supertile layout AND 12 4 -p   # trace the signal paths`,
		Args: cobra.RangeArgs(2, 3),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			cat, err := c.loadCatalog()
			if err != nil {
				return nil, cobra.ShellCompDirectiveError
			}
			return completeKinds(cat), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.reduced, "reduced", "r", false, "print the reduced one-line form")
	cmd.Flags().BoolVarP(&flags.timed, "time", "t", false, "log the computation time")
	cmd.Flags().BoolVarP(&flags.paths, "paths", "p", false, "trace the routed signals")
	cmd.Flags().BoolVar(&flags.json, "json", false, "print the layout as JSON")

	return cmd
}

func (c *CLI) runLayout(cmd *cobra.Command, args []string, flags layoutFlags) error {
	runner, cat, err := c.newRunner(true)
	if err != nil {
		return err
	}
	defer runner.Close()

	req, err := requestFromArgs(cat, args)
	if err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	res, err := runner.Layout(cmd.Context(), req, pipeline.LayoutOptions{Paths: flags.paths})
	if err != nil {
		return err
	}
	if flags.timed {
		prog.done(fmt.Sprintf("Computed %s %s", req.Kind, req.Key()))
	}

	return writeLayout(cmd.OutOrStdout(), res, flags)
}

// writeLayout prints a computed layout in the form the flags select.
func writeLayout(w io.Writer, res *pipeline.LayoutResult, flags layoutFlags) error {
	st := res.Supertile
	if flags.json {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(server.NewLayoutResponse(res))
	}
	if flags.reduced {
		_, err := fmt.Fprintln(w, render.Reduced(st))
		return err
	}
	if _, err := fmt.Fprintln(w, layoutView(st)); err != nil {
		return err
	}
	if st.Paths != nil {
		if _, err := fmt.Fprintln(w, "\n"+pathsView(render.Paths(st.Paths))); err != nil {
			return err
		}
	}
	return nil
}
