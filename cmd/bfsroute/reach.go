package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/bfsroute/bfs"
)

func newReachCmd(gf *globalFlags, stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "reach",
		Short: "List every city reachable from --start with its hop distance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(cmd, *gf, stdout, stderr)
			if err != nil {
				return err
			}
			return a.runReach()
		},
	}
}

// runReach prints "city<TAB>hops" lines in visit order.
func (a *app) runReach() error {
	res, err := bfs.BFS(a.graph, a.cfg.Start, a.searchOptions()...)
	if err != nil {
		return fmt.Errorf("reach from %s: %w", a.cfg.Start, err)
	}
	for _, id := range res.Order {
		fmt.Fprintf(a.stdout, "%s\t%s\n", id, color.CyanString("%d", res.Depth[id]))
	}
	a.log.Info("reach", "start", a.cfg.Start, "reachable", len(res.Order), "total", a.graph.VertexCount())

	return nil
}
