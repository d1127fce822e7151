package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/paulfryers/coronavirus-dashboard/internal/export"
)

func newExportCmd(opts *options) *cobra.Command {
	var dir, format string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the charts as SVG or PNG files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("dir") {
				cfg.Export.Dir = dir
			}
			if cmd.Flags().Changed("format") {
				cfg.Export.Format = format
			}

			ds, err := loadOnce(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			paths, err := export.ExportAll(cfg.Export.Dir, cfg.Export.Format, ds)
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "o", "", "output directory (default from config)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "svg or png (default from config)")
	return cmd
}
