package cmd

import (
	"strconv"

	"streamc/syntax"

	"github.com/pterm/pterm"
)

// displayTokens renders an ordered dump of a token sequence.  This is a
// read-only presentation over the lexer's output; it plays no part in
// parsing.
func displayTokens(tokens []syntax.Token) {
	data := pterm.TableData{{"Token", "Kind", "Line"}}
	for _, tok := range tokens {
		data = append(data, []string{tok.Value, tok.Kind.String(), strconv.Itoa(tok.Line)})
	}

	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
