package calculator

import (
	"errors"
	"strconv"
	"strings"
)

// expr   = term { ('+' | '-') term }
// term   = factor { ('*' | '/') factor }
// factor = number | '-' factor | '(' expr ')'

// Evaluator parses and evaluates arithmetic expressions. Its state is the
// unconsumed remainder of the current line and the most recently matched
// token; both are reset by every call to Parse, so an Evaluator may be
// reused freely. It is not safe for concurrent use.
type Evaluator struct {
	// rest is the unconsumed suffix of the input.
	rest string
	// current is the text of the most recently matched token. It is
	// meaningful only immediately after a successful accept.
	current string
}

// New creates an evaluator.
func New() *Evaluator {
	return &Evaluator{}
}

// Parse evaluates a line of text as an arithmetic expression and returns
// its numeric result. Any previous state is discarded. If the line is not a
// single complete expression, the result is a *SyntaxError describing the
// first unexpected character.
func (ev *Evaluator) Parse(line string) (Value, error) {
	ev.rest = line
	ev.current = ""
	v, err := ev.expr()
	if err != nil {
		return Value{}, err
	}
	if ev.rest != "" {
		return Value{}, &SyntaxError{Got: ev.peek()}
	}
	return v, nil
}

// expr evaluates a sequence of terms joined by + and -, folding left.
func (ev *Evaluator) expr() (Value, error) {
	v, err := ev.term()
	if err != nil {
		return Value{}, err
	}
	for ev.accept(addOps) {
		op := ev.current
		w, err := ev.term()
		if err != nil {
			return Value{}, err
		}
		if op == "+" {
			v = v.Add(w)
		} else {
			v = v.Sub(w)
		}
	}
	return v, nil
}

// term evaluates a sequence of factors joined by * and /, folding left.
func (ev *Evaluator) term() (Value, error) {
	v, err := ev.factor()
	if err != nil {
		return Value{}, err
	}
	for ev.accept(mulOps) {
		op := ev.current
		w, err := ev.factor()
		if err != nil {
			return Value{}, err
		}
		if op == "*" {
			v = v.Mul(w)
		} else {
			v = v.Div(w)
		}
	}
	return v, nil
}

// factor evaluates a literal, a negated factor, or a parenthesized
// subexpression, tried in that order.
func (ev *Evaluator) factor() (Value, error) {
	switch {
	case ev.accept(number):
		return literal(ev.current), nil
	case ev.accept(minus):
		v, err := ev.factor()
		if err != nil {
			return Value{}, err
		}
		return v.Neg(), nil
	case ev.accept(lparen):
		v, err := ev.expr()
		if err != nil {
			return Value{}, err
		}
		if !ev.accept(rparen) {
			return Value{}, &SyntaxError{Want: "')'", Got: ev.peek()}
		}
		return v, nil
	}
	return Value{}, &SyntaxError{Want: "number or '('", Got: ev.peek()}
}

// literal converts matched number text to a Value. Text without a decimal
// point is an integer; an integer too large for 64 bits degrades to the
// float representation. Literals beyond the float64 range degrade further,
// to infinity or zero, which is the value ParseFloat reports alongside
// ErrRange.
func literal(text string) Value {
	if !strings.Contains(text, ".") {
		if n, err := strconv.ParseInt(text, 10, 64); err == nil {
			return NewInt(n)
		}
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		panic("calculator: invalid number: " + text + " (" + err.Error() + ")")
	}
	return NewFloat(f)
}

// EvalString is a shortcut to evaluate a string expression with a fresh
// evaluator.
func EvalString(line string) (Value, error) {
	return New().Parse(line)
}
