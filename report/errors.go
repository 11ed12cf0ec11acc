package report

import "fmt"

// ErrorKind enumerates the kinds of structural errors the parser can produce.
type ErrorKind int

const (
	ErrExpectedToken      ErrorKind = iota // A required token was not present.
	ErrExpectedIdentifier                  // An identifier was required.
	ErrUnexpectedToken                     // No statement rule matched.
	ErrMismatchedBrackets                  // Input ended with open brackets.
)

// SyntaxError is a structural error produced while parsing source text.  It
// carries a human-readable message and the 1-based source line on which the
// failure was detected.
type SyntaxError struct {
	// The kind of the error.
	Kind ErrorKind

	// The error message, without positional information.
	Message string

	// The 1-based source line at which the error was detected.
	Line int
}

func (se *SyntaxError) Error() string {
	return fmt.Sprintf("%s at line %d", se.Message, se.Line)
}

// Raise creates a new syntax error of the given kind anchored to the given
// line.  The message is formatted with the given arguments.
func Raise(kind ErrorKind, line int, msg string, args ...interface{}) *SyntaxError {
	return &SyntaxError{Kind: kind, Message: fmt.Sprintf(msg, args...), Line: line}
}

// ExpectedToken creates an error indicating that the grammar required a
// specific token which was not present.  The context describes where in the
// construct the token was required, eg. "at the end of variable declaration".
func ExpectedToken(line int, expected, context string) *SyntaxError {
	return Raise(ErrExpectedToken, line, "Expected %s %s", expected, context)
}

// ExpectedIdentifier creates an error indicating that an identifier was
// required in the given context, eg. "in variable declaration".
func ExpectedIdentifier(line int, context string) *SyntaxError {
	return Raise(ErrExpectedIdentifier, line, "Expected identifier %s", context)
}

// UnexpectedToken creates an error indicating that no statement rule matched
// the given token text.
func UnexpectedToken(line int, actual string) *SyntaxError {
	return Raise(ErrUnexpectedToken, line, "Unexpected token: %s", actual)
}

// MismatchedBrackets creates an error indicating that the end of input was
// reached with unmatched brackets.  The line is that of the innermost
// unmatched opening bracket.
func MismatchedBrackets(line int) *SyntaxError {
	return Raise(ErrMismatchedBrackets, line, "Mismatched brackets detected")
}
