package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/arbor/internal/cli"
	"github.com/aretw0/arbor/internal/config"
	"github.com/aretw0/arbor/internal/logging"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var rootCmd = &cobra.Command{
	Use:   "arbor",
	Short: "Arbor builds, walks and reports on decision trees",
	Long: `Arbor models binary decision trees: it grows them with a state machine builder,
walks them in pre-order and runs visitors (leaf counting, rule reports) over them.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Path to the arbor config file")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable coloured output")
}

// addTreeFlags registers the flags of commands that build a tree.
func addTreeFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("depth", "d", 0, "Maximum depth of the built tree (default from config)")
}

// loadOptions merges config file, environment and flags, flags winning.
func loadOptions(cmd *cobra.Command) (cli.Options, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path, cmd.Flags().Changed("config"))
	if err != nil {
		return cli.Options{}, err
	}

	if f := cmd.Flags().Lookup("depth"); f != nil && f.Changed {
		cfg.MaxDepth, _ = cmd.Flags().GetInt("depth")
	}
	if f := cmd.Flags().Lookup("format"); f != nil && f.Changed {
		cfg.Format, _ = cmd.Flags().GetString("format")
	}
	if err := cfg.Validate(); err != nil {
		return cli.Options{}, err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return cli.Options{}, fmt.Errorf("%w: %v", config.ErrInvalidConfig, err)
	}
	debug, _ := cmd.Flags().GetBool("debug")
	noColor, _ := cmd.Flags().GetBool("no-color")

	fd := int(os.Stdout.Fd())
	terminal := term.IsTerminal(fd)
	width := 0
	if terminal {
		if w, _, err := term.GetSize(fd); err == nil {
			width = w
		}
	}

	return cli.Options{
		Out:      cmd.OutOrStdout(),
		Err:      cmd.ErrOrStderr(),
		MaxDepth: cfg.MaxDepth,
		Format:   cfg.Format,
		Color:    cfg.Color && !noColor && terminal,
		Debug:    debug || level == slog.LevelDebug,
		Terminal: terminal,
		Width:    width,
	}, nil
}
