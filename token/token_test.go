package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		input    string
		expected Type
	}{
		{"if", IF},
		{"then", THEN},
		{"else", ELSE},
		{"end", END},
		{"repeat", REPEAT},
		{"until", UNTIL},
		{"read", READ},
		{"write", WRITE},
		{"If", IDENTIFIER},
		{"WRITE", IDENTIFIER},
		{"fact", IDENTIFIER},
		{"x", IDENTIFIER},
		{"", IDENTIFIER},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			actual := Lookup(tt.input)
			require.Equal(t, tt.expected, actual)
		})
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		name     string
		tok      Token
		expected string
	}{
		{"reserved word", Token{Type: IF, Literal: "if"}, "reserved word: if"},
		{"identifier", Token{Type: IDENTIFIER, Literal: "fact"}, "IDENTIFIER, name= fact"},
		{"number", Token{Type: NUMBER, Literal: "42"}, "NUMBER, val= 42"},
		{"assign", Token{Type: ASSIGN, Literal: ":="}, ":="},
		{"plus", Token{Type: PLUS}, "+"},
		{"semi", Token{Type: SEMI}, ";"},
		{"endfile", Token{Type: ENDFILE}, "EOF"},
		{"error", Token{Type: ERROR, Literal: "@"}, "ERROR: @"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.tok.String())
		})
	}
}
