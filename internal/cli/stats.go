package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	var threshold int

	cmd := &cobra.Command{
		Use:   "stats <map>",
		Short: "Print graph statistics of a map",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if threshold < 0 {
				threshold = configFromContext(ctx).Classifier.Threshold
			}
			gr, g, err := loadGraph(ctx, args[0], threshold)
			if err != nil {
				return err
			}

			comps := gr.ConnectedComponents()
			largest := 0
			for _, c := range comps {
				if len(c) > largest {
					largest = len(c)
				}
			}

			out := printer{w: cmd.OutOrStdout()}
			out.title(args[0])
			out.keyValue("size", fmt.Sprintf("%d×%d", g.Width(), g.Height()))
			out.number("nodes", g.NodeCount())
			out.number("edges", g.EdgeCount())
			out.number("components", len(comps))
			out.number("largest", largest)
			return nil
		},
	}
	cmd.Flags().IntVar(&threshold, "threshold", -1, "brightness threshold for image maps (default from config)")

	return cmd
}
