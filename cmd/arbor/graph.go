package main

import (
	"github.com/aretw0/arbor/internal/cli"
	"github.com/aretw0/arbor/internal/config"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export a built tree as a Mermaid diagram",
	Long:  `Builds a tree and outputs a Mermaid diagram (graph TD). Nodes whose label matches --highlight are styled.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadOptions(cmd)
		if err != nil {
			return err
		}
		opts.Format = config.FormatMermaid
		opts.Highlight, _ = cmd.Flags().GetStringSlice("highlight")
		return cli.RunBuild(opts)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	addTreeFlags(graphCmd)
	graphCmd.Flags().StringSlice("highlight", nil, "Node labels to highlight")
}
