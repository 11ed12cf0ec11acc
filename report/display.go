package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
)

var (
	SuccessColorFG = pterm.FgLightGreen
	SuccessStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	WarnColorFG    = pterm.FgYellow
	WarnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG    = SuccessColorFG
	InfoStyleBG    = SuccessStyleBG
)

// displayErrorMessage displays a tagged error message.
func displayErrorMessage(tag, msg string) {
	ErrorStyleBG.Print(tag)
	ErrorColorFG.Println(" " + msg)
}

// displayWarningMessage displays a tagged warning message.
func displayWarningMessage(tag, msg string) {
	WarnStyleBG.Print(tag)
	WarnColorFG.Println(" " + msg)
}

// displayInfoMessage displays a tagged informational message.
func displayInfoMessage(tag, msg string) {
	InfoStyleBG.Print(tag)
	InfoColorFG.Println(" " + msg)
}

// displayFatal displays a fatal error message.
func displayFatal(msg string) {
	fmt.Printf("fatal error: %s\n\n", msg)
}

// -----------------------------------------------------------------------------

// displaySyntaxError displays a syntax error along with the source line on
// which it occurred.  The reprPath is the representative path of the checked
// source; src is the full source text the error was produced from.
func displaySyntaxError(reprPath, src string, serr *SyntaxError) {
	fmt.Printf("%s:%d: ", reprPath, serr.Line)
	ErrorStyleBG.Print("Syntax Error")
	fmt.Printf(" %s\n\n", serr.Message)

	displaySourceLine(src, serr.Line)
}

// displaySourceLine displays a single 1-based source line with a line number
// gutter and a caret underline beneath its content.
func displaySourceLine(src string, line int) {
	lines := strings.Split(src, "\n")
	if line < 1 || line > len(lines) {
		return
	}

	text := strings.ReplaceAll(lines[line-1], "\t", "    ")

	// Trim the leading indent off the displayed line.
	trimmed := strings.TrimLeft(text, " ")
	if trimmed == "" {
		return
	}

	lineNumStr := strconv.Itoa(line)
	fmt.Printf("%s | %s\n", lineNumStr, trimmed)
	fmt.Print(strings.Repeat(" ", len(lineNumStr)), " | ")
	ErrorColorFG.Println(strings.Repeat("^", len(trimmed)))
	fmt.Println()
}
