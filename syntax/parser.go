package syntax

import (
	"streamc/ast"
	"streamc/report"
)

// Parser is a recursive descent parser for the statement grammar of the
// stream dialect.  It moves over the token sequence with a single
// forward-only cursor, deciding what to parse based on the token it is
// currently positioned on; lookahead within a statement is exactly one token.
// All parsing functions assume that they begin with the cursor just past the
// token that committed their production and must consume every remaining
// token of that production.  A parser is created once per token sequence and
// fails fast: the first structural error aborts the parse.
type Parser struct {
	// The token sequence being parsed.  Consumed read-only.
	tokens []Token

	// The parser's position within the token sequence.
	pos int

	// The bracket-matching stack: one frame per currently-open `(` or `{`.
	brackets []bracketFrame
}

// bracketFrame records a currently-open bracket and the line it opened on.
type bracketFrame struct {
	open string
	line int
}

// NewParser creates a new parser over the given token sequence.
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse parses the full token sequence as a statement list.  On success it
// returns the syntax nodes that materialized, in source order; on failure it
// returns the structural error that aborted the parse.
func Parse(tokens []Token) ([]ast.ASTNode, error) {
	return NewParser(tokens).Parse()
}

// Parse consumes the parser's token sequence and returns the resulting
// statement nodes or a structural error.
func (p *Parser) Parse() ([]ast.ASTNode, error) {
	var stmts []ast.ASTNode

	for !p.atEnd() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}

		if stmt != nil {
			stmts = append(stmts, stmt)
		}
	}

	// The bracket guards release every frame on both the success and the
	// error path, so a non-empty stack here means a construct returned
	// without closing a bracket it opened.
	if len(p.brackets) > 0 {
		return nil, report.MismatchedBrackets(p.brackets[len(p.brackets)-1].line)
	}

	return stmts, nil
}

// -----------------------------------------------------------------------------

// atEnd returns whether the cursor has consumed every token.
func (p *Parser) atEnd() bool {
	return p.pos >= len(p.tokens)
}

// peek returns the token the cursor is positioned on.
func (p *Parser) peek() Token {
	return p.tokens[p.pos]
}

// prev returns the most recently consumed token.
func (p *Parser) prev() Token {
	return p.tokens[p.pos-1]
}

// advance moves the cursor forward one token.
func (p *Parser) advance() {
	if !p.atEnd() {
		p.pos++
	}
}

// match consumes the current token and returns true if it is of the given
// kind and, when values are given, its text equals one of them.  Otherwise
// the cursor does not move and match returns false.
func (p *Parser) match(kind TokenKind, values ...string) bool {
	if p.atEnd() || p.peek().Kind != kind {
		return false
	}

	if len(values) > 0 {
		ok := false
		for _, v := range values {
			if p.peek().Value == v {
				ok = true
				break
			}
		}

		if !ok {
			return false
		}
	}

	p.pos++
	return true
}

// errLine returns the line to anchor an error on: the current token's line,
// or the last token's line if the input is exhausted.
func (p *Parser) errLine() int {
	if !p.atEnd() {
		return p.peek().Line
	}

	if len(p.tokens) > 0 {
		return p.tokens[len(p.tokens)-1].Line
	}

	return 1
}

// -----------------------------------------------------------------------------

// openBracket pushes a bracket frame for an opening bracket that was just
// consumed and returns its release function.  Callers must both defer the
// release and call it as soon as the matching closer is consumed: release is
// idempotent, so the deferred call is a no-op on the success path but
// guarantees the frame cannot go stale when an error unwinds out of a nested
// parse.
func (p *Parser) openBracket() func() {
	p.brackets = append(p.brackets, bracketFrame{open: p.prev().Value, line: p.prev().Line})

	released := false
	return func() {
		if !released {
			released = true
			p.brackets = p.brackets[:len(p.brackets)-1]
		}
	}
}

// openBracketLine returns the line of the innermost currently-open bracket.
func (p *Parser) openBracketLine() int {
	if len(p.brackets) > 0 {
		return p.brackets[len(p.brackets)-1].line
	}

	return p.errLine()
}

// expectPunct consumes the given punctuation token or fails with an error
// describing the construct, eg. expectPunct(";", "at the end of variable
// declaration").  A missing closing bracket at end of input is reported as a
// bracket mismatch anchored to the innermost open bracket.
func (p *Parser) expectPunct(value, context string) error {
	if p.match(TokPunct, value) {
		return nil
	}

	if p.atEnd() && (value == ")" || value == "}") {
		return report.MismatchedBrackets(p.openBracketLine())
	}

	return report.ExpectedToken(p.errLine(), "'"+value+"'", context)
}
