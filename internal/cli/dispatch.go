package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/roadgrid/config"
	"github.com/katalvlaran/roadgrid/dispatch"
	"github.com/katalvlaran/roadgrid/graph"
	"github.com/katalvlaran/roadgrid/search"
)

// errNoDepotConfigured asks the user for a depot.
var errNoDepotConfigured = errors.New("no depot: set [depot] in the config or pass --depot x,y")

// dispatchOpts holds the flags of the dispatch command.
type dispatchOpts struct {
	depot     string
	nearest   string
	threshold int
	fixed     bool
}

func newDispatchCmd() *cobra.Command {
	var opts dispatchOpts

	cmd := &cobra.Command{
		Use:   "dispatch <map>",
		Short: "Route responders to the incidents listed in the config",
		Long: `Report every [[incidents]] entry of the config and route a responder
from the depot to each one, most urgent first. With --nearest x,y only the
open incident closest to that cell is served.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDispatch(cmd, args[0], opts)
		},
	}
	cmd.Flags().StringVar(&opts.depot, "depot", "", "depot cell as x,y (overrides the config)")
	cmd.Flags().StringVar(&opts.nearest, "nearest", "", "serve only the incident nearest to x,y")
	cmd.Flags().IntVar(&opts.threshold, "threshold", -1, "brightness threshold for image maps (default from config)")
	cmd.Flags().BoolVar(&opts.fixed, "fixed-strategy", false, "use routing.strategy for every incident instead of its tier")

	return cmd
}

// depotFor resolves the depot from the flag or the config.
func depotFor(cfg *config.Config, flag string) (graph.Node, error) {
	if flag != "" {
		return parsePoint(flag)
	}
	if cfg.Depot == nil {
		return graph.Node{}, errNoDepotConfigured
	}
	return cfg.Depot.Node(), nil
}

func runDispatch(cmd *cobra.Command, path string, opts dispatchOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)
	out := printer{w: cmd.OutOrStdout()}

	depot, err := depotFor(cfg, opts.depot)
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

	dopts := []dispatch.Option{dispatch.WithDepot(depot), dispatch.WithLogger(logger)}
	if opts.fixed {
		st, err := cfg.Strategy()
		if err != nil {
			return err
		}
		dopts = append(dopts, dispatch.WithStrategy(st))
	}
	d, err := dispatch.NewDispatcher(g, nil, dopts...)
	if err != nil {
		return err
	}

	for _, inc := range cfg.Incidents {
		tier, err := search.ParseTier(inc.Tier)
		if err != nil {
			return err
		}
		if _, err := d.Report(inc.X, inc.Y, tier, inc.Description); err != nil {
			out.failure("skipped %q: %v", inc.Description, err)
		}
	}

	var assignments []dispatch.Assignment
	if opts.nearest != "" {
		at, err := parsePoint(opts.nearest)
		if err != nil {
			return err
		}
		a, err := d.DispatchNearest(ctx, at)
		if err != nil {
			return err
		}
		assignments = append(assignments, *a)
	} else {
		if assignments, err = d.DispatchAll(ctx); err != nil {
			return err
		}
	}

	out.title(fmt.Sprintf("Dispatch from depot %v", depot))
	resolved := 0
	for _, a := range assignments {
		inc := a.Incident
		label := fmt.Sprintf("[%s] %s at %v", inc.Tier, inc.Description, inc.Location)
		if !a.Result.Found {
			out.warning("%s unreachable (%s)", label, a.Result.Strategy.DisplayName())
			continue
		}
		resolved++
		out.success("%s via %s, cost %.4f, %d hops", label, a.Result.Strategy.DisplayName(), a.Result.Cost, a.Result.Hops)
	}
	out.number("resolved", resolved)
	out.number("open", d.Registry().OpenCount())
	return nil
}
