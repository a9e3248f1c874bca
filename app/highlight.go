package main

import (
	"image/color"
	"strings"
	"unicode/utf8"

	"keycalc/app/lang"
)

// TokenKind represents the category of a display span.
type TokenKind int

const (
	TokenPlain TokenKind = iota
	TokenNumber
	TokenOperator
	TokenKeyword
	TokenError
)

// Token is a span of display text with a syntax category.
type Token struct {
	Text string
	Kind TokenKind
}

// tokenColors maps token kinds to colors. Dark-theme oriented.
var tokenColors = map[TokenKind]color.NRGBA{
	TokenPlain:    {R: 0xD4, G: 0xD4, B: 0xD4, A: 0xFF}, // light gray
	TokenNumber:   {R: 0xB5, G: 0xCE, B: 0xA8, A: 0xFF}, // green
	TokenOperator: {R: 0xFF, G: 0xD7, B: 0x00, A: 0xFF}, // yellow
	TokenKeyword:  {R: 0x56, G: 0x9C, B: 0xD6, A: 0xFF}, // blue
	TokenError:    {R: 0xF4, G: 0x47, B: 0x47, A: 0xFF}, // red
}

// TokenColor returns the color for a token kind.
func TokenColor(kind TokenKind) color.NRGBA {
	if c, ok := tokenColors[kind]; ok {
		return c
	}
	return tokenColors[TokenPlain]
}

// specialWords are result spellings that read as numbers on the display.
var specialWords = []string{lang.NegInfText, lang.InfText, lang.NaNText}

// Tokenize splits the display text into colored spans. It never fails:
// characters the evaluator would reject are shown as plain text.
func Tokenize(line string) []Token {
	if line == "" {
		return nil
	}
	if line == lang.ErrorText {
		return []Token{{Text: line, Kind: TokenError}}
	}

	var result []Token
	i := 0
	for i < len(line) {
		rest := line[i:]
		ch := line[i]

		if strings.HasPrefix(rest, lang.ModOperator) {
			result = append(result, Token{Text: lang.ModOperator, Kind: TokenKeyword})
			i += len(lang.ModOperator)
			continue
		}
		if w := specialPrefix(rest); w != "" {
			result = append(result, Token{Text: w, Kind: TokenNumber})
			i += len(w)
			continue
		}

		switch {
		case (ch >= '0' && ch <= '9') || ch == '.':
			start := i
			for i < len(line) && ((line[i] >= '0' && line[i] <= '9') || line[i] == '.') {
				i++
			}
			result = append(result, Token{Text: line[start:i], Kind: TokenNumber})
		case strings.IndexByte("+-*/%", ch) >= 0:
			result = append(result, Token{Text: string(ch), Kind: TokenOperator})
			i++
		default:
			_, size := utf8.DecodeRuneInString(rest)
			result = appendPlain(result, rest[:size])
			i += size
		}
	}
	return result
}

func specialPrefix(s string) string {
	for _, w := range specialWords {
		if strings.HasPrefix(s, w) {
			return w
		}
	}
	return ""
}

// appendPlain merges consecutive plain characters into one span.
func appendPlain(tokens []Token, text string) []Token {
	if n := len(tokens); n > 0 && tokens[n-1].Kind == TokenPlain {
		tokens[n-1].Text += text
		return tokens
	}
	return append(tokens, Token{Text: text, Kind: TokenPlain})
}
