package cli

import (
	"fmt"
	"strings"

	"github.com/aretw0/arbor/internal/config"
	"github.com/aretw0/arbor/internal/presentation/graph"
	"github.com/aretw0/arbor/internal/presentation/tui"
	"github.com/aretw0/arbor/pkg/builder"
	"github.com/aretw0/arbor/pkg/report"
	"github.com/aretw0/arbor/pkg/tree"
	"github.com/aretw0/arbor/pkg/visitor"
)

// RunBuild builds a tree of opts.MaxDepth levels and prints it in opts.Format.
func RunBuild(opts Options) error {
	logger := createLogger(opts)

	// Only the text format streams events; the others must stay parseable.
	var rep report.Reporter = report.Nop
	if opts.Format == config.FormatText {
		rep = createReporter(opts, logger)
	}

	root, err := builder.New(builder.WithReporter(rep), builder.WithLogger(logger)).BuildTree(opts.MaxDepth)
	if err != nil {
		return err
	}
	logger.Debug("Tree built", "max_depth", opts.MaxDepth, "format", opts.Format)

	switch opts.Format {
	case config.FormatText:
		printTree(opts, root)
	case config.FormatMermaid:
		var overlay *graph.GraphOverlay
		if len(opts.Highlight) > 0 {
			overlay = &graph.GraphOverlay{Highlighted: opts.Highlight}
		}
		fmt.Fprint(opts.Out, graph.GenerateMermaid(root, overlay))
	case config.FormatMarkdown:
		render, err := tui.NewRenderer(opts.Terminal, opts.Width)
		if err != nil {
			return err
		}
		out, err := render(graph.GenerateMarkdown(fmt.Sprintf("Decision tree (depth %d)", opts.MaxDepth), root))
		if err != nil {
			return fmt.Errorf("failed to render markdown: %w", err)
		}
		fmt.Fprint(opts.Out, out)
	default:
		return fmt.Errorf("%w: unknown format %q", config.ErrInvalidConfig, opts.Format)
	}
	return nil
}

// printTree lists every node in pre-order, indented by depth, plus a summary.
func printTree(opts Options, root tree.Node) {
	printSystemMessage(opts.Out, "Tree:")
	for n := range tree.Walk(root) {
		depth := 0
		for p := n.Parent(); p != nil; p = p.Parent() {
			depth++
		}
		fmt.Fprintf(opts.Out, "%s%s\n", strings.Repeat("  ", depth), n)
	}

	s := visitor.Measure(root)
	printSystemMessage(opts.Out, "%d decisions, %d leaves, depth %d", s.Decisions, s.Leaves, s.Depth)
}
