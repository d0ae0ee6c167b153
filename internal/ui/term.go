package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/javiermolinar/timesynx/internal/overlap"
)

// Color definitions for consistent styling across the UI.
var (
	// Overlap levels, strongest first
	colorHigh   = color.New(color.FgGreen, color.Bold)
	colorMedium = color.New(color.FgYellow, color.Bold)
	colorLow    = color.New(color.FgRed)
	colorNone   = color.New(color.FgWhite, color.Faint)

	// Base card marker
	colorBase = color.New(color.FgCyan, color.Bold)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Frozen time: magenta so it is not mistaken for the live clock
	colorFrozen = color.New(color.FgMagenta, color.Bold)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// EnableColor enables color output (if terminal supports it).
func EnableColor() {
	color.NoColor = false
}

// levelColor returns the color for an overlap level.
func levelColor(l overlap.Level) *color.Color {
	switch l {
	case overlap.LevelHigh:
		return colorHigh
	case overlap.LevelMedium:
		return colorMedium
	case overlap.LevelLow:
		return colorLow
	default:
		return colorNone
	}
}

// formatLevel formats text in the color of an overlap level.
func formatLevel(l overlap.Level, s string) string {
	return levelColor(l).Sprint(s)
}

// formatBase formats the base card marker.
func formatBase(s string) string {
	return colorBase.Sprint(s)
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatFrozen formats a pinned time.
func formatFrozen(s string) string {
	return colorFrozen.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
