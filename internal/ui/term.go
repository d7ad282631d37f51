package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/JordanDim/planpal/internal/event"
)

// Color definitions for consistent styling across the UI.
var (
	// Sports: green, the outdoors
	colorSports = color.New(color.FgGreen)

	// Culture & science: magenta
	colorCulture = color.New(color.FgMagenta)

	// Entertainment: yellow
	colorEntertainment = color.New(color.FgYellow)

	// Other: plain white
	colorOther = color.New(color.FgWhite)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)

	// Now marker: red so it stands out in the grid
	colorNow = color.New(color.FgRed, color.Bold)
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

// categoryColor returns the color used for a category.
func categoryColor(c event.Category) *color.Color {
	switch c {
	case event.CategorySports:
		return colorSports
	case event.CategoryCultureScience:
		return colorCulture
	case event.CategoryEntertainment:
		return colorEntertainment
	default:
		return colorOther
	}
}

// formatCategory colors text with the category's color.
func formatCategory(c event.Category, s string) string {
	return categoryColor(c).Sprint(s)
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}

// formatNow formats the now marker.
func formatNow(s string) string {
	return colorNow.Sprint(s)
}
