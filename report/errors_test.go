package report

import "testing"

func TestSyntaxErrorMessages(t *testing.T) {
	tests := []struct {
		err  *SyntaxError
		kind ErrorKind
		want string
	}{
		{
			ExpectedToken(3, "';'", "at the end of variable declaration"),
			ErrExpectedToken,
			"Expected ';' at the end of variable declaration at line 3",
		},
		{
			ExpectedIdentifier(1, "in variable declaration"),
			ErrExpectedIdentifier,
			"Expected identifier in variable declaration at line 1",
		},
		{
			UnexpectedToken(7, "+"),
			ErrUnexpectedToken,
			"Unexpected token: + at line 7",
		},
		{
			MismatchedBrackets(2),
			ErrMismatchedBrackets,
			"Mismatched brackets detected at line 2",
		},
	}

	for _, tt := range tests {
		if tt.err.Kind != tt.kind {
			t.Errorf("%q: want kind %d, got %d", tt.want, tt.kind, tt.err.Kind)
		}

		if got := tt.err.Error(); got != tt.want {
			t.Errorf("want error %q, got %q", tt.want, got)
		}
	}
}

func TestRaiseFormatsMessage(t *testing.T) {
	err := Raise(ErrUnexpectedToken, 4, "Unexpected token: %s", "else")

	if err.Line != 4 {
		t.Errorf("want line 4, got %d", err.Line)
	}

	if want := "Unexpected token: else at line 4"; err.Error() != want {
		t.Errorf("want %q, got %q", want, err.Error())
	}
}
