package report

import (
	"fmt"
	"io"
	"sync"

	"github.com/muesli/termenv"
)

// kindColors mirrors the banner palette: calm tones for progress, warm for warnings.
var kindColors = map[EventKind]string{
	EventStateChange:   "#818cf8",
	EventLeafFound:     "#34d399",
	EventRuleFound:     "#c084fc",
	EventChildRejected: "#fb7185",
}

// Console prints one line per event to a writer.
type Console struct {
	mu  sync.Mutex
	out *termenv.Output
}

// ConsoleOption configures a Console.
type ConsoleOption func(*consoleConfig)

type consoleConfig struct {
	color bool
}

// WithColor enables or disables ANSI colours. Colour is on by default and
// downgraded automatically when the writer is not a terminal.
func WithColor(enabled bool) ConsoleOption {
	return func(c *consoleConfig) {
		c.color = enabled
	}
}

// NewConsole creates a Console writing to w.
func NewConsole(w io.Writer, opts ...ConsoleOption) *Console {
	cfg := consoleConfig{color: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	var outOpts []termenv.OutputOption
	if !cfg.color {
		outOpts = append(outOpts, termenv.WithProfile(termenv.Ascii))
	}
	return &Console{out: termenv.NewOutput(w, outOpts...)}
}

// Report writes e.Message, prefixed with a marker for warnings.
func (c *Console) Report(e Event) {
	line := e.Message
	if e.Kind.IsWarning() {
		line = "warning: " + line
	}

	styled := c.out.String(line)
	if hex, ok := kindColors[e.Kind]; ok {
		styled = styled.Foreground(c.out.Color(hex))
	}
	if e.Kind.IsWarning() {
		styled = styled.Bold()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.out, styled.String())
}
