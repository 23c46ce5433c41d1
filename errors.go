package calculator

// SyntaxError is the error returned for input that is not a valid
// expression. It is the only error kind the evaluator produces.
type SyntaxError struct {
	// Want describes the token the parser required, e.g. "')'" or
	// "number or '('". It is empty when a complete expression was parsed
	// but unconsumed input remained.
	Want string
	// Got is the offending character. Empty means end of line.
	Got string
}

func (err *SyntaxError) Error() string {
	got := err.Got
	if got == "" {
		got = "<EOL>"
	}
	if err.Want == "" {
		return "unexpected character after expression: '" + got + "'"
	}
	return "expected " + err.Want + " but got '" + got + "'"
}

var _ error = (*SyntaxError)(nil)
