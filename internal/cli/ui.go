package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorGreen = lipgloss.Color("35")  // success
	colorWhite = lipgloss.Color("255") // values
	colorGray  = lipgloss.Color("245") // labels
)

var (
	// data values such as paths
	styleValue = lipgloss.NewStyle().Foreground(colorWhite)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleKey         = lipgloss.NewStyle().Foreground(colorGray).Width(10)
)

const iconSuccess = "✓"

// savedMessage prefixes the path of every written diagram.
const savedMessage = "Corrected architecture diagram saved as: "

// printSaved prints the confirmation line for a written diagram.
func printSaved(w io.Writer, path string) {
	fmt.Fprintln(w, savedMessage+styleValue.Render(path))
}

// printSuccess prints a success message.
func printSuccess(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+msg)
}

// printSwatch prints a palette entry: key, hex value and a color sample.
func printSwatch(w io.Writer, key, hex string) {
	swatch := lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("    ")
	fmt.Fprintln(w, styleKey.Render(key)+" "+styleValue.Render(hex)+" "+swatch)
}
