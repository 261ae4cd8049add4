package tiny

import (
	"bytes"

	"github.com/tinylang/go-tiny/lexer"
	"github.com/tinylang/go-tiny/token"
)

// Tokenize scans data and returns every token in source order, including
// the terminating ENDFILE token. Malformed input shows up as ERROR tokens
// in the result rather than as an error; an error is returned only when an
// option is invalid.
func Tokenize(data []byte, opts ...lexer.Option) ([]token.Token, error) {
	l, err := lexer.New(bytes.NewReader(data), opts...)
	if err != nil {
		return nil, err
	}
	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Type == token.ENDFILE {
			return toks, nil
		}
	}
}
