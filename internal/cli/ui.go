package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette. ANSI 256 codes so output degrades cleanly on basic terminals.
var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorAmber = lipgloss.Color("220")
	colorRed   = lipgloss.Color("167")
	colorBlue  = lipgloss.Color("75")
	colorWhite = lipgloss.Color("255")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")
)

var (
	// StyleTitle is used for headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	// StyleDim is used for secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)
	// StyleValue is used for values and paths.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)
	// StyleNumber is used for pixel sizes and counts.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)
	// StyleGlyph colours dots, bars and shells in terminal previews.
	StyleGlyph = lipgloss.NewStyle().Foreground(colorAmber)
	// StyleLabel is used for group labels (Day, Month, Year).
	StyleLabel = lipgloss.NewStyle().Bold(true).Foreground(colorGray)
	// StyleSuccess is used for confirmations.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
)

var (
	styleKey         = lipgloss.NewStyle().Foreground(colorGray).Width(12)
	styleCommand     = lipgloss.NewStyle().Foreground(colorBlue)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
)

// Status icons, rendered once.
var (
	iconSuccess = lipgloss.NewStyle().Foreground(colorGreen).Render("✓")
	iconError   = lipgloss.NewStyle().Foreground(colorRed).Render("✗")
	iconWarning = lipgloss.NewStyle().Foreground(colorAmber).Render("!")
	iconInfo    = lipgloss.NewStyle().Foreground(colorGray).Render("›")
	iconArrow   = StyleDim.Render("→")
)

// Status lines go to stdout; logs go to stderr.
func status(icon, format string, args ...any) {
	fmt.Println(icon + " " + fmt.Sprintf(format, args...))
}

func printSuccess(format string, args ...any) { status(iconSuccess, format, args...) }
func printError(format string, args ...any)   { status(iconError, format, args...) }
func printInfo(format string, args ...any)    { status(iconInfo, format, args...) }

func printWarning(format string, args ...any) {
	status(iconWarning, "%s", lipgloss.NewStyle().Foreground(colorAmber).Render(fmt.Sprintf(format, args...)))
}

// printDetail prints an indented, dimmed line.
func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints a written output path.
func printFile(path string) {
	fmt.Println("  " + iconArrow + " " + StyleValue.Render(path))
}

// printKeyValue writes key padded to a fixed column followed by value.
func printKeyValue(w io.Writer, key, value string) {
	fmt.Fprintln(w, styleKey.Render(key)+" "+StyleValue.Render(value))
}

// printStats prints one summary line such as
// "3 digits · 7 glyphs · 600x514 · cached".
func printStats(digitCount, primitiveCount int, size string, cached bool) {
	var parts []string
	if digitCount > 0 {
		parts = append(parts, fmt.Sprintf("%d digits", digitCount))
	}
	if primitiveCount > 0 {
		parts = append(parts, fmt.Sprintf("%d glyphs", primitiveCount))
	}
	if size != "" {
		parts = append(parts, size)
	}
	for i, p := range parts {
		parts[i] = StyleDim.Render(p)
	}
	if cached {
		parts = append(parts, StyleSuccess.Render("cached"))
	} else {
		parts = append(parts, lipgloss.NewStyle().Foreground(colorGray).Render("fresh"))
	}
	fmt.Println("  " + strings.Join(parts, StyleDim.Render(" · ")))
}

// printNextStep suggests a follow-up command.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

func printNewline() { fmt.Println() }
