package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bfsroute/bfs"
	"github.com/katalvlaran/bfsroute/render"
)

func newDotCmd(gf *globalFlags, stdout, stderr io.Writer) *cobra.Command {
	var format, output string

	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Draw the city graph with the found route highlighted",
		Long: `dot writes the city graph in Graphviz DOT form, with the route from
--start to --goal drawn in red. With --format other than dot the graph is laid
out and rendered through Graphviz.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(cmd, *gf, stdout, stderr)
			if err != nil {
				return err
			}
			return a.runDot(format, output)
		},
	}
	cmd.Flags().StringVar(&format, "format", "dot", "output format: "+strings.Join(render.Formats, "|"))
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")

	return cmd
}

func (a *app) runDot(format, output string) (err error) {
	if err := render.CheckFormat(format); err != nil {
		return err
	}
	res, err := bfs.Search(a.graph, bfs.Problem{Initial: a.cfg.Start, Goal: a.cfg.Goal}, a.searchOptions()...)
	if err != nil {
		return err
	}
	title := fmt.Sprintf("%s → %s", a.cfg.Start, a.cfg.Goal)
	dot, err := render.DOT(a.graph, title, res.Path)
	if err != nil {
		return err
	}

	w := a.stdout
	if output != "" {
		f, cerr := os.Create(output)
		if cerr != nil {
			return cerr
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		w = f
	}

	if format == "dot" {
		_, err = w.Write(dot)
		return err
	}
	if err = render.Render(dot, format, w); err != nil {
		return err
	}
	a.log.Info("rendered", "format", format, "output", output)

	return nil
}
