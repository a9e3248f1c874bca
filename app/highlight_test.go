package main

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		input string
		want  []Token
	}{
		{"", nil},
		{"12.5+3", []Token{
			{Text: "12.5", Kind: TokenNumber},
			{Text: "+", Kind: TokenOperator},
			{Text: "3", Kind: TokenNumber},
		}},
		{"10mod3", []Token{
			{Text: "10", Kind: TokenNumber},
			{Text: "mod", Kind: TokenKeyword},
			{Text: "3", Kind: TokenNumber},
		}},
		{"50%", []Token{
			{Text: "50", Kind: TokenNumber},
			{Text: "%", Kind: TokenOperator},
		}},
		{"Error", []Token{{Text: "Error", Kind: TokenError}}},
		{"Error1", []Token{
			{Text: "Error", Kind: TokenPlain},
			{Text: "1", Kind: TokenNumber},
		}},
		{"-Infinity*2", []Token{
			{Text: "-Infinity", Kind: TokenNumber},
			{Text: "*", Kind: TokenOperator},
			{Text: "2", Kind: TokenNumber},
		}},
	}

	for _, tt := range tests {
		got := Tokenize(tt.input)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestTokenizeCoversInput(t *testing.T) {
	for _, input := range []string{"1+2×3", "NaNmod 4", "  7 / 0", "modmod"} {
		var joined string
		for _, tok := range Tokenize(input) {
			joined += tok.Text
		}
		if joined != input {
			t.Errorf("Tokenize(%q) spans join to %q", input, joined)
		}
	}
}

func TestTokenColorFallsBackToPlain(t *testing.T) {
	if TokenColor(TokenKind(99)) != tokenColors[TokenPlain] {
		t.Error("unknown kinds should use the plain color")
	}
}
