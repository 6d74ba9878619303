package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bfsroute/components"
)

func newComponentsCmd(gf *globalFlags, stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "components",
		Short: "Print the weakly connected components of the city graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(cmd, *gf, stdout, stderr)
			if err != nil {
				return err
			}
			comps, err := components.Weak(a.graph)
			if err != nil {
				return err
			}
			for _, c := range comps {
				fmt.Fprintln(a.stdout, c)
			}

			return nil
		},
	}
}
