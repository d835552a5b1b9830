package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the sprout ASCII banner to w.
func PrintBanner(w io.Writer) {
	p := termenv.ColorProfile()
	// Green-to-teal gradient, one color per line
	s1 := termenv.String("                             _   ").Foreground(p.Color("#4ade80"))
	s2 := termenv.String("  ___ _ __  _ __ ___  _   _| |_ ").Foreground(p.Color("#34d399"))
	s3 := termenv.String(" / __| '_ \\| '__/ _ \\| | | | __|").Foreground(p.Color("#2dd4bf"))
	s4 := termenv.String(" \\__ \\ |_) | | | (_) | |_| | |_ ").Foreground(p.Color("#22d3ee"))
	s5 := termenv.String(" |___/ .__/|_|  \\___/ \\__,_|\\__|").Foreground(p.Color("#38bdf8"))
	s6 := termenv.String("     |_|                        ").Foreground(p.Color("#60a5fa"))

	fmt.Fprintln(w)
	fmt.Fprintln(w, s1)
	fmt.Fprintln(w, s2)
	fmt.Fprintln(w, s3)
	fmt.Fprintln(w, s4)
	fmt.Fprintln(w, s5)
	fmt.Fprintln(w, s6)
	fmt.Fprintln(w)
}
