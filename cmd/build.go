package cmd

import (
	"github.com/spf13/cobra"

	"devfolio/internal/export"
)

var buildOut string

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Exports the site as static HTML",
	Long: `The build command renders every page of the site into the output
directory, together with static assets and the markdown documents of
published posts. The result can be served by any static file host.
Unpublished posts are not exported.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := appConfig
		if cmd.Flags().Changed("out") {
			cfg.OutputDir = buildOut
		}
		log := newLogger(cfg)

		srv, fsys, err := buildServer(cfg, log)
		if err != nil {
			return err
		}
		return export.Export(srv.Routes(), srv.Site(), fsys, cfg.OutputDir, log)
	},
}

func init() {
	buildCmd.Flags().StringVarP(&buildOut, "out", "o", "public", "Output directory for the static site")
	rootCmd.AddCommand(buildCmd)
}
