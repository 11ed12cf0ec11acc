package syntax

import "unicode/utf8"

// Lexer is responsible for tokenizing source text in the stream dialect.  The
// lexer is total: unmatched characters become Unknown tokens rather than
// errors, so all grammar validation is left to the parser.  Each Lexer is a
// pure function of its input text and cursor; independent lexers may run
// concurrently.
type Lexer struct {
	// The source text being tokenized.
	src string

	// The lexer's byte position within the source text.
	pos int

	// The current 1-based source line.
	line int

	// The lines on which brace characters occurred, in source order.  This is
	// recorded for cross-checking only: bracket mismatch detection is
	// performed by the parser's own stack.
	braceLines []int
}

// NewLexer creates a new lexer for the given source text.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src, line: 1}
}

// Tokenize converts source text into an ordered sequence of classified
// tokens.  Whitespace and newlines are discarded; newlines advance the line
// counter.
func Tokenize(src string) []Token {
	return NewLexer(src).Tokenize()
}

// Tokenize consumes the lexer's source text and returns its token sequence.
func (l *Lexer) Tokenize() []Token {
	var tokens []Token

	for l.pos < len(l.src) {
		switch c := l.src[l.pos]; {
		case c == ' ' || c == '\t' || c == '\r':
			l.pos++
		case c == '\n':
			l.pos++
			l.line++
		case c == '"':
			tokens = append(tokens, l.lexStringLit())
		case isFirstIdentChar(c):
			tokens = append(tokens, l.lexIdentOrKeyword())
		default:
			tokens = append(tokens, l.lexSymbol())
		}
	}

	return tokens
}

// BraceLines returns the lines of every brace character encountered, in
// source order.
func (l *Lexer) BraceLines() []int {
	return l.braceLines
}

// -----------------------------------------------------------------------------

// lexIdentOrKeyword lexes an identifier or a keyword.  Keyword matching is
// applied to the full identifier text, so `ifstreamx` is a single identifier
// and never the keyword `ifstream` followed by `x`.
func (l *Lexer) lexIdentOrKeyword() Token {
	start := l.pos
	l.pos++

	for l.pos < len(l.src) && isIdentChar(l.src[l.pos]) {
		l.pos++
	}

	value := l.src[start:l.pos]
	kind := TokIdentifier
	if _, ok := keywordPatterns[value]; ok {
		kind = TokKeyword
	}

	return Token{Kind: kind, Value: value, Line: l.line}
}

// lexStringLit lexes a double-quoted string literal.  The match is non-greedy
// to the next quote and the dialect has no escape sequences, so a literal can
// never contain a quote.  A quote with no closing quote on the same line is
// emitted as a lone Unknown token.
func (l *Lexer) lexStringLit() Token {
	start := l.pos

	for i := l.pos + 1; i < len(l.src); i++ {
		switch l.src[i] {
		case '"':
			l.pos = i + 1
			return Token{Kind: TokLiteral, Value: l.src[start : i+1], Line: l.line}
		case '\n':
			l.pos++
			return Token{Kind: TokUnknown, Value: `"`, Line: l.line}
		}
	}

	l.pos++
	return Token{Kind: TokUnknown, Value: `"`, Line: l.line}
}

// lexSymbol lexes an operator or punctuation symbol, extending the match one
// character at a time so that multi-character operators win over their
// prefixes.  Characters matching no symbol pattern become Unknown tokens.
func (l *Lexer) lexSymbol() Token {
	start := l.pos

	sym := string(l.src[l.pos])
	kind, ok := symbolPatterns[sym]
	l.pos++

	for l.pos < len(l.src) {
		if k, extends := symbolPatterns[sym+string(l.src[l.pos])]; extends {
			sym += string(l.src[l.pos])
			kind = k
			ok = true
			l.pos++
		} else {
			break
		}
	}

	if !ok {
		// Fall back to a single unknown character.
		_, size := utf8.DecodeRuneInString(l.src[start:])
		l.pos = start + size
		return Token{Kind: TokUnknown, Value: l.src[start : start+size], Line: l.line}
	}

	if sym == "{" || sym == "}" {
		l.braceLines = append(l.braceLines, l.line)
	}

	return Token{Kind: kind, Value: sym, Line: l.line}
}

// -----------------------------------------------------------------------------

// isFirstIdentChar returns whether c can begin an identifier.
func isFirstIdentChar(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_'
}

// isIdentChar returns whether c can continue an identifier.
func isIdentChar(c byte) bool {
	return isFirstIdentChar(c) || '0' <= c && c <= '9'
}
