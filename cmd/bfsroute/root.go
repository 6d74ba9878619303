package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/bfsroute/bfs"
	"github.com/katalvlaran/bfsroute/components"
	"github.com/katalvlaran/bfsroute/config"
	"github.com/katalvlaran/bfsroute/core"
	"github.com/katalvlaran/bfsroute/dataset"
)

// app carries what every command needs once flags are resolved.
type app struct {
	cfg    config.Config
	graph  *core.Graph
	log    *slog.Logger
	stdout io.Writer
}

// globalFlags are the persistent flags shared by all commands.
type globalFlags struct {
	configPath string
	start      string
	goal       string
	logLevel   string
	noColor    bool
	maxDepth   int
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var gf globalFlags

	root := &cobra.Command{
		Use:   "bfsroute",
		Short: "Find a fewest-hop route between two cities with breadth-first search",
		Long: `bfsroute searches a fixed graph of 21 cities for the route with the fewest
roads between --start and --goal, then prints the route and its total length.

The length is that of the fewest-hop route found; it is not guaranteed to be
the shortest route by distance.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(cmd, gf, stdout, stderr)
			if err != nil {
				return err
			}
			return a.runSearch()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&gf.configPath, "config", "", "YAML config file")
	pf.StringVar(&gf.start, "start", dataset.DefaultStart, "start city")
	pf.StringVar(&gf.goal, "goal", dataset.DefaultGoal, "goal city")
	pf.StringVar(&gf.logLevel, "log-level", "warn", "log level: debug|info|warn|error")
	pf.BoolVar(&gf.noColor, "no-color", false, "disable colored output")
	pf.IntVar(&gf.maxDepth, "max-depth", 0, "stop exploring beyond this many hops (0 = no limit)")

	root.AddCommand(
		newReachCmd(&gf, stdout, stderr),
		newComponentsCmd(&gf, stdout, stderr),
		newDotCmd(&gf, stdout, stderr),
	)

	return root
}

// setup merges config file, environment and explicitly set flags (in that
// order of precedence, lowest first), validates the merged result once and
// builds the shared app.
func setup(cmd *cobra.Command, gf globalFlags, stdout, stderr io.Writer) (*app, error) {
	cfg, err := config.Read(gf.configPath)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("start") {
		cfg.Start = gf.start
	}
	if flags.Changed("goal") {
		cfg.Goal = gf.goal
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = gf.logLevel
	}
	if flags.Changed("max-depth") {
		cfg.MaxDepth = gf.maxDepth
	}
	if gf.noColor {
		cfg.Color = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !cfg.Color {
		color.NoColor = true
	}

	return &app{
		cfg:    cfg,
		graph:  dataset.Cities(),
		log:    newLogger(stderr, cfg.Level()),
		stdout: stdout,
	}, nil
}

// searchOptions wires config and logging into bfs options.
func (a *app) searchOptions() []bfs.Option {
	return []bfs.Option{
		bfs.WithMaxDepth(a.cfg.MaxDepth),
		bfs.WithOnDequeue(func(id string, depth int) {
			a.log.Debug("dequeue", "state", id, "depth", depth)
		}),
		bfs.WithOnEnqueue(func(id string, depth int) {
			a.log.Debug("enqueue", "state", id, "depth", depth)
		}),
	}
}

// runSearch prints the path (or None) and its cost (or +Inf) on two lines.
func (a *app) runSearch() error {
	problem := bfs.Problem{Initial: a.cfg.Start, Goal: a.cfg.Goal}
	a.log.Info("search", "start", problem.Initial, "goal", problem.Goal, "max_depth", a.cfg.MaxDepth)

	res, err := bfs.Search(a.graph, problem, a.searchOptions()...)
	if err != nil {
		return fmt.Errorf("search %s→%s: %w", problem.Initial, problem.Goal, err)
	}

	if !res.Found() {
		a.explainFailure(problem)
		fmt.Fprintln(a.stdout, color.YellowString("None"))
		fmt.Fprintln(a.stdout, formatCost(res.Cost))
		return nil
	}

	a.log.Info("found", "hops", res.Hops(), "expanded", res.Expanded, "reached", len(res.Reached))
	fmt.Fprintln(a.stdout, color.GreenString("%v", res.Path))
	fmt.Fprintln(a.stdout, color.CyanString("%s", formatCost(res.Cost)))

	return nil
}

// explainFailure logs the likeliest reason no path was found: separate
// components, then the depth limit, then edge direction.
func (a *app) explainFailure(p bfs.Problem) {
	ok, err := components.Connected(a.graph, p.Initial, p.Goal)
	switch {
	case err != nil:
		a.log.Warn("component check failed", "err", err)
	case !ok:
		a.log.Info("no path: start and goal are in different components", "start", p.Initial, "goal", p.Goal)
	case a.cfg.MaxDepth > 0:
		a.log.Info("no path within depth limit; it may lie deeper", "start", p.Initial, "goal", p.Goal, "max_depth", a.cfg.MaxDepth)
	default:
		a.log.Info("no path: goal not reachable along edge directions", "start", p.Initial, "goal", p.Goal)
	}
}

// formatCost prints whole numbers without a fraction and +Inf as such.
func formatCost(c float64) string {
	return strconv.FormatFloat(c, 'f', -1, 64)
}
