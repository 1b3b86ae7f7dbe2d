package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{`    _         _`, "#818cf8"},
	{`   /_\  _ _ _| |__  ___ _ _`, "#a78bfa"},
	{`  / _ \| '_| '_ \/ _ \ '_|`, "#c084fc"},
	{` /_/ \_\_| |_.__/\___/_|`, "#e879f9"},
}

// PrintBanner writes the arbor banner and version to w.
func PrintBanner(w io.Writer, version string, color bool) {
	var opts []termenv.OutputOption
	if !color {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	out := termenv.NewOutput(w, opts...)

	fmt.Fprintln(out)
	for _, l := range bannerLines {
		fmt.Fprintln(out, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(out, out.String("  v"+version).Faint())
	fmt.Fprintln(out)
}
