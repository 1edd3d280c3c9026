package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/roadgrid/geoexport"
	"github.com/katalvlaran/roadgrid/search"
)

// routeOpts holds the flags of the route command.
type routeOpts struct {
	from      string
	to        string
	tier      string
	strategy  string
	geojson   string
	threshold int
	showPath  bool
}

func newRouteCmd() *cobra.Command {
	var opts routeOpts

	cmd := &cobra.Command{
		Use:   "route <map>",
		Short: "Find a route between two cells",
		Long: `Find a route between two cells of a map.

The strategy comes from --strategy when given, otherwise from the urgency
tier (--tier, or routing.tier in the config): routine uses BFS, standard
uses Dijkstra and urgent uses A*.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoute(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.from, "from", "", "start cell as x,y (required)")
	cmd.Flags().StringVar(&opts.to, "to", "", "target cell as x,y (required)")
	cmd.Flags().StringVar(&opts.tier, "tier", "", "urgency tier: routine, standard, urgent")
	cmd.Flags().StringVar(&opts.strategy, "strategy", "", "search strategy: bfs, dijkstra, astar")
	cmd.Flags().StringVar(&opts.geojson, "geojson", "", "write the route as GeoJSON to this file")
	cmd.Flags().IntVar(&opts.threshold, "threshold", -1, "brightness threshold for image maps (default from config)")
	cmd.Flags().BoolVar(&opts.showPath, "path", false, "print every cell of the route")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	cmd.MarkFlagsMutuallyExclusive("tier", "strategy")

	return cmd
}

// pickStrategy applies flag overrides on top of the config.
func pickStrategy(cmd *cobra.Command, opts routeOpts) (search.Strategy, error) {
	if opts.strategy != "" {
		return search.ParseStrategy(opts.strategy)
	}
	if opts.tier != "" {
		tier, err := search.ParseTier(opts.tier)
		if err != nil {
			return 0, err
		}
		return search.StrategyFor(tier), nil
	}
	return configFromContext(cmd.Context()).Strategy()
}

func runRoute(cmd *cobra.Command, path string, opts routeOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)
	out := printer{w: cmd.OutOrStdout()}

	from, err := parsePoint(opts.from)
	if err != nil {
		return err
	}
	to, err := parsePoint(opts.to)
	if err != nil {
		return err
	}
	st, err := pickStrategy(cmd, opts)
	if err != nil {
		return err
	}
	threshold := cfg.Classifier.Threshold
	if opts.threshold >= 0 {
		threshold = opts.threshold
	}

	_, g, err := loadGraph(ctx, path, threshold)
	if err != nil {
		return err
	}

	logger.Debug("searching", "from", from, "to", to, "algorithm", st.DisplayName())
	prog := newProgress(logger)
	res, err := search.FindPath(g, from, to, st, search.WithContext(ctx))
	if err != nil {
		return err
	}
	prog.done("search finished", "settled", res.Settled)

	if !res.Found {
		out.warning("No route from %v to %v", from, to)
		out.keyValue("algorithm", st.DisplayName())
		out.number("settled", res.Settled)
		return nil
	}

	out.success("Route found with %s", st.DisplayName())
	out.keyValue("from", from.String())
	out.keyValue("to", to.String())
	out.number("cost", fmt.Sprintf("%.4f", res.Cost))
	out.number("hops", res.Hops)
	out.number("settled", res.Settled)
	if opts.showPath {
		out.keyValue("path", fmt.Sprint(res.Path))
	}

	if opts.geojson != "" {
		if err := writeGeoJSON(opts.geojson, res); err != nil {
			return err
		}
		out.file(opts.geojson)
	}
	return nil
}

// writeGeoJSON exports res to path.
func writeGeoJSON(path string, res *search.Result) error {
	fc, err := geoexport.FromResult(res)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := geoexport.Write(f, fc); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
