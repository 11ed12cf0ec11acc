package syntax

import (
	"reflect"
	"strings"
	"testing"
)

func wantTokens(t *testing.T, src string, want []Token) {
	t.Helper()

	got := Tokenize(src)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("\nsource:\n%s\nwant tokens:\n%v\ngot tokens:\n%v\n", src, want, got)
	}
}

func TestTokenizeClassification(t *testing.T) {
	wantTokens(t, `ifstream inputFile("input.txt");`, []Token{
		{TokKeyword, "ifstream", 1},
		{TokIdentifier, "inputFile", 1},
		{TokPunct, "(", 1},
		{TokLiteral, `"input.txt"`, 1},
		{TokPunct, ")", 1},
		{TokPunct, ";", 1},
	})

	wantTokens(t, "int a, b;", []Token{
		{TokKeyword, "int", 1},
		{TokIdentifier, "a", 1},
		{TokPunct, ",", 1},
		{TokIdentifier, "b", 1},
		{TokPunct, ";", 1},
	})

	wantTokens(t, "std::cout << x;", []Token{
		{TokKeyword, "std", 1},
		{TokOperator, "::", 1},
		{TokIdentifier, "cout", 1},
		{TokOperator, "<<", 1},
		{TokIdentifier, "x", 1},
		{TokPunct, ";", 1},
	})
}

func TestTokenizeKeywordPrecedence(t *testing.T) {
	// A keyword prefix inside a longer identifier must not split.
	wantTokens(t, "ifstreamx ifstream intx for forx", []Token{
		{TokIdentifier, "ifstreamx", 1},
		{TokKeyword, "ifstream", 1},
		{TokIdentifier, "intx", 1},
		{TokKeyword, "for", 1},
		{TokIdentifier, "forx", 1},
	})
}

func TestTokenizeOperatorLongestMatch(t *testing.T) {
	wantTokens(t, "a<=b", []Token{
		{TokIdentifier, "a", 1},
		{TokOperator, "<=", 1},
		{TokIdentifier, "b", 1},
	})

	wantTokens(t, "++i", []Token{
		{TokOperator, "++", 1},
		{TokIdentifier, "i", 1},
	})

	// `+++` is `++` followed by `+`.
	wantTokens(t, "+++", []Token{
		{TokOperator, "++", 1},
		{TokOperator, "+", 1},
	})

	// `<` is both an operator and punctuation in the dialect; the operator
	// class wins.
	wantTokens(t, "a < b != c", []Token{
		{TokIdentifier, "a", 1},
		{TokOperator, "<", 1},
		{TokIdentifier, "b", 1},
		{TokOperator, "!=", 1},
		{TokIdentifier, "c", 1},
	})
}

func TestTokenizeUnknownFallback(t *testing.T) {
	// The dialect has no numeric, `=`, or `%` token classes: tokenization is
	// total, so each such character becomes a single Unknown token.
	wantTokens(t, "i = 10 % 3;", []Token{
		{TokIdentifier, "i", 1},
		{TokUnknown, "=", 1},
		{TokUnknown, "1", 1},
		{TokUnknown, "0", 1},
		{TokUnknown, "%", 1},
		{TokUnknown, "3", 1},
		{TokPunct, ";", 1},
	})

	// `==` is a recognized operator even though `=` alone is not.
	wantTokens(t, "a == b", []Token{
		{TokIdentifier, "a", 1},
		{TokOperator, "==", 1},
		{TokIdentifier, "b", 1},
	})
}

func TestTokenizeStringLiterals(t *testing.T) {
	// Literal matching is non-greedy to the next quote.
	wantTokens(t, `"a" x "b"`, []Token{
		{TokLiteral, `"a"`, 1},
		{TokIdentifier, "x", 1},
		{TokLiteral, `"b"`, 1},
	})

	// An unclosed quote is a lone Unknown token; the rest rescans normally.
	wantTokens(t, `"abc`, []Token{
		{TokUnknown, `"`, 1},
		{TokIdentifier, "abc", 1},
	})

	// A literal cannot span a newline.
	wantTokens(t, "\"ab\ncd\"", []Token{
		{TokUnknown, `"`, 1},
		{TokIdentifier, "ab", 1},
		{TokIdentifier, "cd", 2},
		{TokUnknown, `"`, 2},
	})
}

func TestTokenizeLineTracking(t *testing.T) {
	src := "int a;\n\nwhile (x) {\n}\n"
	want := []Token{
		{TokKeyword, "int", 1},
		{TokIdentifier, "a", 1},
		{TokPunct, ";", 1},
		{TokKeyword, "while", 3},
		{TokPunct, "(", 3},
		{TokIdentifier, "x", 3},
		{TokPunct, ")", 3},
		{TokPunct, "{", 3},
		{TokPunct, "}", 4},
	}
	wantTokens(t, src, want)
}

func TestTokenizeBraceLines(t *testing.T) {
	l := NewLexer("{\n{\n}\n}")
	l.Tokenize()

	if want := []int{1, 2, 3, 4}; !reflect.DeepEqual(l.BraceLines(), want) {
		t.Fatalf("want brace lines %v, got %v", want, l.BraceLines())
	}
}

func TestTokenizeTotality(t *testing.T) {
	src := "int a, b;\nifstream f(\"x.txt\");\nwhile (a <= b) {\n  f.read();\n  a = a @ 10;\n}\n"

	tokens := Tokenize(src)

	// Line numbers are non-decreasing.
	line := 1
	for _, tok := range tokens {
		if tok.Line < line {
			t.Fatalf("token %q at line %d appears after line %d", tok.Value, tok.Line, line)
		}
		line = tok.Line
	}

	// Concatenating the token text reproduces the source once the discarded
	// whitespace is removed.
	var sb strings.Builder
	for _, tok := range tokens {
		sb.WriteString(tok.Value)
	}

	stripped := strings.NewReplacer(" ", "", "\t", "", "\r", "", "\n", "").Replace(src)
	if sb.String() != stripped {
		t.Fatalf("token concatenation does not reproduce source:\nwant %q\ngot  %q", stripped, sb.String())
	}
}
