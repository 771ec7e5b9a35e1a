package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Terminal output for humans. Log lines go to stderr through the logger;
// these helpers print results to stdout.

var (
	StyleDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	StyleValue   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	StyleWarning = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))

	styleOK      = lipgloss.NewStyle().Foreground(lipgloss.Color("35"))
	styleMuted   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	styleLabel   = styleMuted.Width(12)
	styleCommand = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
)

const (
	markOK   = "✓"
	markWarn = "!"
	markInfo = "›"
	markFile = "→"
)

func printLine(mark string, style lipgloss.Style, text string) {
	fmt.Println(style.Render(mark) + " " + text)
}

func printSuccess(format string, args ...any) {
	printLine(markOK, styleOK, fmt.Sprintf(format, args...))
}

func printWarning(format string, args ...any) {
	printLine(markWarn, StyleWarning, StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(format string, args ...any) {
	printLine(markInfo, styleMuted, fmt.Sprintf(format, args...))
}

// printFile lists a written file under the preceding status line.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(markFile) + " " + StyleValue.Render(path))
}

func printKeyValue(key, value string) {
	fmt.Println(styleLabel.Render(key) + " " + StyleValue.Render(value))
}

// printStats prints dim facts on one indented line: "  3 files · 1 cache hits".
func printStats(parts ...string) {
	sep := StyleDim.Render(" · ")
	rendered := make([]string, len(parts))
	for i, p := range parts {
		rendered[i] = StyleDim.Render(p)
	}
	fmt.Println("  " + strings.Join(rendered, sep))
}

func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}
