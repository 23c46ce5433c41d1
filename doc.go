// Package calculator implements a four-function arithmetic calculator.
//
// Expressions are the usual infix notation: the binary operators +, -, *,
// and /, parentheses, unary minus, and integer or decimal literals like
// "42", "0.1", and ".5". There is no tokenizer and no syntax tree;
// an expression is evaluated in a single descent over the input text, and
// the result is available as soon as parsing finishes.
//
// Results keep the distinction between integers and floats: "2+2" is
// exactly the integer 4, while "2+2.0" and any division produce a float.
// Dividing by zero yields NaN rather than an error.
package calculator
