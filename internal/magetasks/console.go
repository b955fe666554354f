package magetasks

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	out = lipgloss.NewRenderer(os.Stdout)

	h1Style      = out.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	h2Style      = out.NewStyle().Bold(true)
	successStyle = out.NewStyle().Foreground(lipgloss.Color("#04B575"))
	warnStyle    = out.NewStyle().Foreground(lipgloss.Color("#FFB86C"))
	errorStyle   = out.NewStyle().Foreground(lipgloss.Color("#FF5555"))
)

// PrintH1Header prints a top-level header with decoration.
func PrintH1Header(title string) {
	const width = 80
	rule := strings.Repeat("=", width)
	padding := max((width-lipgloss.Width(title))/2, 0)
	fmt.Println()
	fmt.Println(h1Style.Render(rule))
	fmt.Println(h1Style.Render(strings.Repeat(" ", padding) + title))
	fmt.Println(h1Style.Render(rule))
	fmt.Println()
}

// PrintH2Header prints a section header.
func PrintH2Header(title string) {
	fmt.Println()
	fmt.Println(h2Style.Render("=== " + title + " ==="))
	fmt.Println()
}

// PrintSuccess prints a success message.
func PrintSuccess(msg string) {
	fmt.Println(successStyle.Render("✅ " + msg))
}

// PrintWarning prints a warning message.
func PrintWarning(msg string) {
	fmt.Println(warnStyle.Render("⚠️  " + msg))
}

// PrintError prints an error message.
func PrintError(msg string) {
	fmt.Println(errorStyle.Render("❌ " + msg))
}
