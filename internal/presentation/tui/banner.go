package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner for reflex.
func PrintBanner() {
	p := termenv.ColorProfile()
	// Subtle gradient across the lines (teal to violet)
	s1 := termenv.String("            __ _           ").Foreground(p.Color("#2dd4bf"))
	s2 := termenv.String("  _ __ ___ / _| | _____  __").Foreground(p.Color("#38bdf8"))
	s3 := termenv.String(" | '__/ _ \\ |_| |/ _ \\ \\/ /").Foreground(p.Color("#818cf8"))
	s4 := termenv.String(" | | |  __/  _| |  __/>  < ").Foreground(p.Color("#a78bfa"))
	s5 := termenv.String(" |_|  \\___|_| |_|\\___/_/\\_\\").Foreground(p.Color("#c084fc"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println()
}
