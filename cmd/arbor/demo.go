package main

import (
	"github.com/aretw0/arbor"
	"github.com/aretw0/arbor/internal/cli"
	"github.com/aretw0/arbor/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the guided tour of manual and automated construction",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadOptions(cmd)
		if err != nil {
			return err
		}
		if opts.Terminal {
			tui.PrintBanner(opts.Out, arbor.Version, opts.Color)
		}
		return cli.RunDemo(opts)
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
	addTreeFlags(demoCmd)

	// Preserve DX: a bare `arbor` runs the demo.
	rootCmd.RunE = demoCmd.RunE
	addTreeFlags(rootCmd)
}
