package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/paulfryers/coronavirus-dashboard/internal/config"
	"github.com/paulfryers/coronavirus-dashboard/internal/ui/state"
	"github.com/paulfryers/coronavirus-dashboard/internal/ui/views"
)

type summaryFlags struct {
	width  int
	charts bool
	tabs   []string
}

func newSummaryCmd(opts *options) *cobra.Command {
	sf := summaryFlags{}
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the headline figures and area tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			return runSummary(cmd, cfg, sf)
		},
	}
	cmd.Flags().IntVarP(&sf.width, "width", "w", 100, "output width in columns")
	cmd.Flags().BoolVar(&sf.charts, "charts", false, "include the chart series as tables")
	cmd.Flags().StringSliceVar(&sf.tabs, "only", nil, "limit the tables to these tabs")
	return cmd
}

func runSummary(cmd *cobra.Command, cfg *config.Config, sf summaryFlags) error {
	var tabs []state.Tab
	for _, id := range sf.tabs {
		tab, ok := state.ParseTab(id)
		if !ok {
			return fmt.Errorf("unknown tab %q", id)
		}
		tabs = append(tabs, tab)
	}

	ds, err := loadOnce(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	out := views.NewRenderer().RenderSummary(ds, views.SummaryOptions{
		Width:  sf.width,
		Tabs:   tabs,
		Charts: sf.charts,
	})
	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}
