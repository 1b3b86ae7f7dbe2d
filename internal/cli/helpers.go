package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aretw0/arbor/internal/logging"
	"github.com/aretw0/arbor/pkg/report"
)

// Options contains the settings shared by every command.
type Options struct {
	Out       io.Writer
	Err       io.Writer
	MaxDepth  int
	Format    string
	Color     bool
	Debug     bool
	// Terminal reports whether Out is an interactive terminal.
	Terminal  bool
	Width     int
	// Highlight lists node labels to mark on Mermaid output.
	Highlight []string
}

// createLogger configures the application logger.
// In debug mode, it writes to Err (to separate from the tree output).
func createLogger(opts Options) *slog.Logger {
	if opts.Debug && opts.Err != nil {
		return logging.NewWithWriter(opts.Err, slog.LevelDebug)
	}
	return logging.NewNop()
}

// createReporter sends events to the console and, in debug mode, to the logger.
func createReporter(opts Options, logger *slog.Logger) report.Reporter {
	console := report.NewConsole(opts.Out, report.WithColor(opts.Color))
	if opts.Debug {
		return report.Multi(console, report.NewLog(logger))
	}
	return console
}

// printSection prints a standardized section header.
func printSection(w io.Writer, format string, args ...any) {
	title := fmt.Sprintf(format, args...)
	fmt.Fprintf(w, "\n%s\n%s\n", title, strings.Repeat("#", 60))
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}
