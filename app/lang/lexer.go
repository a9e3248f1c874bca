package lang

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Lex tokenizes an arithmetic expression. A numeral is a maximal run of
// digits containing at most one decimal point; operators are single
// characters. Whitespace is skipped and anything else is a parse error.
//
// The first operand may also be a previous result: a numeral with a
// leading sign, or one of the special-value spellings. A sign anywhere
// else is an operator.
// The returned slice always ends with a TOKEN_EOF token.
func Lex(input string) ([]Token, error) {
	var tokens []Token
	i := 0
	for i < len(input) {
		ch := input[i]

		// Skip whitespace
		if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' {
			i++
			continue
		}

		if len(tokens) == 0 {
			if n := seededLiteralLen(input[i:]); n > 0 {
				tokens = append(tokens, Token{Type: TOKEN_NUMBER, Literal: input[i : i+n], Pos: i})
				i += n
				continue
			}
		}

		switch ch {
		case '+':
			tokens = append(tokens, Token{Type: TOKEN_PLUS, Literal: "+", Pos: i})
			i++
		case '-':
			tokens = append(tokens, Token{Type: TOKEN_MINUS, Literal: "-", Pos: i})
			i++
		case '*':
			tokens = append(tokens, Token{Type: TOKEN_STAR, Literal: "*", Pos: i})
			i++
		case '/':
			tokens = append(tokens, Token{Type: TOKEN_SLASH, Literal: "/", Pos: i})
			i++
		default:
			if !isDigit(ch) && ch != '.' {
				r, _ := utf8.DecodeRuneInString(input[i:])
				return nil, parseErr("unexpected character " + strconv.QuoteRune(r) + " at " + strconv.Itoa(i))
			}
			n := numeralLen(input[i:])
			tokens = append(tokens, Token{Type: TOKEN_NUMBER, Literal: input[i : i+n], Pos: i})
			i += n
		}
	}
	tokens = append(tokens, Token{Type: TOKEN_EOF, Literal: "", Pos: i})
	return tokens, nil
}

// numeralLen returns the length of the numeral at the start of s.
func numeralLen(s string) int {
	i := 0
	dotSeen := false
	for i < len(s) {
		c := s[i]
		if isDigit(c) {
			i++
			continue
		}
		if c == '.' && !dotSeen {
			dotSeen = true
			i++
			continue
		}
		break
	}
	return i
}

// seededLiteralLen returns the length of a signed numeral or special-value
// spelling at the start of s, or 0 if there is none. Unsigned numerals are
// left to the regular numeral rule.
func seededLiteralLen(s string) int {
	sign := 0
	if s != "" && (s[0] == '+' || s[0] == '-') {
		sign = 1
	}
	rest := s[sign:]
	for _, w := range []string{InfText, NaNText} {
		if strings.HasPrefix(rest, w) {
			return sign + len(w)
		}
	}
	if sign == 1 && rest != "" && (isDigit(rest[0]) || rest[0] == '.') {
		return sign + numeralLen(rest)
	}
	return 0
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
