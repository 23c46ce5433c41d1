package calculator

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// matcher reports the length in bytes of the token it recognizes at the
// start of s, or 0 if there is no match.
type matcher func(s string) int

// oneOf matches any single character from chars.
func oneOf(chars string) matcher {
	return func(s string) int {
		if s != "" && strings.IndexByte(chars, s[0]) >= 0 {
			return 1
		}
		return 0
	}
}

var (
	addOps = oneOf("+-")
	mulOps = oneOf("*/")
	minus  = oneOf("-")
	lparen = oneOf("(")
	rparen = oneOf(")")
)

// number matches an integer or decimal literal: zero or more digits
// optionally followed by a decimal point and at least one digit. ".5" is a
// number; a bare "." is not, and "5." matches only the "5".
func number(s string) int {
	n := 0
	for n < len(s) && isDigit(s[n]) {
		n++
	}
	if n < len(s) && s[n] == '.' {
		m := n + 1
		for m < len(s) && isDigit(s[m]) {
			m++
		}
		if m > n+1 {
			return m
		}
	}
	return n
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// accept is the only place input is consumed. It tries m at the start of the
// remaining input after skipping leading whitespace. On a match it records
// the matched text as the current token, advances the cursor past the match
// and any trailing whitespace, and reports true. On no match the cursor and
// current token are left untouched.
func (ev *Evaluator) accept(m matcher) bool {
	rest := strings.TrimLeftFunc(ev.rest, unicode.IsSpace)
	n := m(rest)
	if n == 0 {
		return false
	}
	ev.current = rest[:n]
	ev.rest = strings.TrimLeftFunc(rest[n:], unicode.IsSpace)
	return true
}

// peek returns the first unconsumed character, or the empty string at end of
// line. It is only used to build error messages.
func (ev *Evaluator) peek() string {
	if ev.rest == "" {
		return ""
	}
	_, sz := utf8.DecodeRuneInString(ev.rest)
	return ev.rest[:sz]
}
