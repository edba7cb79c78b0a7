package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/supertile/pkg/render"
)

// kindsCommand lists the core kinds of the catalog.
func (c *CLI) kindsCommand() *cobra.Command {
	var names bool

	cmd := &cobra.Command{
		Use:   "kinds",
		Short: "List the available core kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := c.loadCatalog()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if names {
				for _, n := range cat.Names() {
					fmt.Fprintln(w, n)
				}
				return nil
			}
			fmt.Fprintln(w, kindsTable(cat.Kinds()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&names, "names", false, "print kind names only")
	return cmd
}

// explainCommand prints the slot numbering and connection naming.
func (c *CLI) explainCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "explain",
		Short: "Explain the slot numbering and connection names",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), render.Explanation())
		},
	}
}
