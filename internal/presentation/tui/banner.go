package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the navstack banner and version to w.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	lines := []struct {
		text  string
		color string
	}{
		{`                          _             _    `, "#38bdf8"},
		{`  _ __   __ ___   _____| |_ __ _  ___| | __`, "#22d3ee"},
		{` | '_ \ / _' \ \ / / __| __/ _' |/ __| |/ /`, "#2dd4bf"},
		{` | | | | (_| |\ V /\__ \ || (_| | (__|   < `, "#34d399"},
		{` |_| |_|\__,_| \_/ |___/\__\__,_|\___|_|\_\`, "#4ade80"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w, out.String("  version "+version).Faint())
	fmt.Fprintln(w)
}
