package main

import (
	"github.com/aretw0/arbor/internal/cli"
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a complete decision tree and print it",
	Long: `Grows a complete binary decision tree with the state machine builder and prints it
as an indented listing (text), a Mermaid flowchart (mermaid) or a Markdown outline (markdown).`,
	Example: `  arbor build --depth 3
  arbor build -d 2 --format markdown`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadOptions(cmd)
		if err != nil {
			return err
		}
		return cli.RunBuild(opts)
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
	addTreeFlags(buildCmd)
	buildCmd.Flags().StringP("format", "f", "", "Output format: text, mermaid or markdown (default from config)")
}
