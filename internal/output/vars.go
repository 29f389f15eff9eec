package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Core styles
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("37"))            // dark green
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))             // red
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))            // yellow
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))            // blue
	debugStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))           // light grey
	detailStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))            // purple
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69")) // purple
)

var StyleSymbols = map[string]string{
	"pass":    "✓",
	"fail":    "✗",
	"warning": "!",
	"pending": "◉",
	"info":    "ℹ",
	"arrow":   "→",
	"bullet":  "•",
	"hline":   "━",
}

// writer receives every printed line; stdout unless replaced with SetWriter.
var writer io.Writer = os.Stdout

func SetWriter(w io.Writer) {
	writer = w
}

func PrintSuccess(text string) {
	fmt.Fprintln(writer, successStyle.Render(text))
}
func PrintError(text string) {
	fmt.Fprintln(writer, errorStyle.Render(text))
}
func PrintWarning(text string) {
	fmt.Fprintln(writer, warningStyle.Render(text))
}
func PrintPending(text string) {
	fmt.Fprintln(writer, pendingStyle.Render(text))
}
func PrintDetail(text string) {
	fmt.Fprintln(writer, detailStyle.Render(text))
}
func PrintHeader(text string) {
	fmt.Fprintln(writer, headerStyle.Render(text))
}
func FDebug(text string) string {
	return debugStyle.Render(text)
}
