// Package cli implements the roadgrid command-line interface.
//
// # Commands
//
//   - route: find a route between two cells of a map
//   - stats: print node, edge and component counts of a map
//   - dispatch: report the incidents of a config file and route to them
//
// Maps are either images (PNG, JPEG, GIF, BMP), classified by brightness,
// or text files (.txt, .map) where '.' is road and '#' is obstacle.
//
// # Logging
//
// Logs go to stderr through charmbracelet/log. The config file picks the
// level and format; --verbose (-v) forces debug. Loggers travel through
// context.Context.
package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/roadgrid/config"
)

var (
	version string // semantic version
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// rootOpts holds the persistent flags.
type rootOpts struct {
	verbose    bool
	configPath string
}

// NewRootCommand builds the command tree. Output goes to cmd.OutOrStdout
// and logs to cmd.ErrOrStderr, so callers may redirect both.
func NewRootCommand() *cobra.Command {
	var opts rootOpts

	root := &cobra.Command{
		Use:           "roadgrid",
		Short:         "Roadgrid finds emergency routes on classified road maps",
		Long:          `Roadgrid turns a road/obstacle raster into a weighted grid graph and routes between cells with BFS, Dijkstra or A*, chosen by the urgency of the call.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if opts.configPath != "" {
				var err error
				if cfg, err = config.Load(opts.configPath); err != nil {
					return err
				}
			}
			level, err := cfg.Level()
			if err != nil {
				return err
			}
			if opts.verbose {
				level = log.DebugLevel
			}
			formatter, err := cfg.Formatter()
			if err != nil {
				return err
			}

			logger := newLogger(cmd.ErrOrStderr(), level, formatter)
			ctx := withConfig(withLogger(cmd.Context(), logger), cfg)
			cmd.SetContext(ctx)
			logger.Debug("configuration loaded", "path", opts.configPath, "threshold", cfg.Classifier.Threshold)
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("roadgrid %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "TOML configuration file")

	root.AddCommand(newRouteCmd())
	root.AddCommand(newStatsCmd())
	root.AddCommand(newDispatchCmd())

	return root
}

// Execute runs the CLI with ctx, which main cancels on interrupt.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}
