package syntax

// TokenKind classifies a lexical token.
type TokenKind int

// Enumeration of token kinds.
const (
	TokKeyword TokenKind = iota
	TokIdentifier
	TokLiteral
	TokOperator
	TokPunct
	TokUnknown
)

func (tk TokenKind) String() string {
	switch tk {
	case TokKeyword:
		return "Keyword"
	case TokIdentifier:
		return "Identifier"
	case TokLiteral:
		return "Literal"
	case TokOperator:
		return "Operator"
	case TokPunct:
		return "Punctuation"
	default:
		return "Unknown"
	}
}

// Token represents a single lexical token.  Tokens are produced once by the
// lexer and are immutable thereafter.
type Token struct {
	// The kind of the token.
	Kind TokenKind

	// The exact matched source text of the token.  String literals keep their
	// enclosing quotes.
	Value string

	// The 1-based source line on which the token starts.
	Line int
}

// -----------------------------------------------------------------------------

// keywordPatterns is the closed set of keywords.  This set must be kept in
// sync with every keyword the parser's statement dispatch recognizes.
var keywordPatterns = map[string]struct{}{
	"std":      {},
	"ifstream": {},
	"ofstream": {},
	"fstream":  {},
	"string":   {},
	"while":    {},
	"if":       {},
	"else":     {},
	"return":   {},
	"int":      {},
	"for":      {},
}

// symbolPatterns maps operator and punctuation strings (patterns) to their
// token kind.  Multi-character operators are matched longest-first by the
// lexer; `<` and `>` belong to both the operator and punctuation classes of
// the dialect, and the operator class wins.
var symbolPatterns = map[string]TokenKind{
	"::": TokOperator,
	"<<": TokOperator,
	">>": TokOperator,
	"&&": TokOperator,
	"++": TokOperator,
	"--": TokOperator,
	"<=": TokOperator,
	">=": TokOperator,
	"==": TokOperator,
	"!=": TokOperator,
	"+=": TokOperator,
	"-=": TokOperator,
	"/=": TokOperator,

	"+": TokOperator,
	"-": TokOperator,
	"/": TokOperator,
	"<": TokOperator,
	">": TokOperator,
	"!": TokOperator,
	".": TokOperator,

	";": TokPunct,
	"(": TokPunct,
	")": TokPunct,
	"{": TokPunct,
	"}": TokPunct,
	"[": TokPunct,
	"]": TokPunct,
	",": TokPunct,
}
