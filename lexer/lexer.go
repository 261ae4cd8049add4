package lexer

import (
	"bytes"
	"fmt"
	"io"

	"github.com/tinylang/go-tiny/token"
)

// state identifies a node of the scanning automaton. Every NextToken call
// starts over at stateStart; nothing is carried across tokens.
type state int

const (
	stateStart state = iota
	stateInIdentifier
	stateInNumber
	stateInAssign
	stateInComment
	stateDone
)

// maxTokenLen bounds lexeme storage. Characters beyond the bound are still
// consumed, so the scanner stays positioned correctly, but they are silently
// dropped from the literal. Kept for compatibility with the reference
// scanner; a known limitation, not a feature.
const maxTokenLen = 40

// Lexer holds the state for tokenizing TINY source.
//
// A Lexer is not safe for concurrent use: interleaved NextToken calls from
// two goroutines would corrupt the read cursor.
type Lexer struct {
	src   *sourceBuffer
	buf   bytes.Buffer
	trace io.Writer
}

// New creates and returns a new Lexer reading from r.
func New(r io.Reader, opts ...Option) (*Lexer, error) {
	l := &Lexer{src: newSourceBuffer(r)}
	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// NextToken scans the input and returns the next token. Malformed input
// yields an ERROR token and scanning continues on the next call; once the
// source is exhausted every call returns an ENDFILE token.
func (l *Lexer) NextToken() token.Token {
	l.buf.Reset()
	st := stateStart
	var kind token.Type
	for st != stateDone {
		ch := l.src.next()
		save := true
		switch st {
		case stateStart:
			switch {
			case isDigit(ch):
				st = stateInNumber
			case isLetter(ch):
				st = stateInIdentifier
			case ch == '{':
				save = false
				st = stateInComment
			case isWhitespace(ch):
				save = false
			case ch == ':':
				st = stateInAssign
			default:
				save = false
				st = stateDone
				switch ch {
				case eof:
					kind = token.ENDFILE
				case '+':
					kind = token.PLUS
				case '-':
					kind = token.MINUS
				case '*':
					kind = token.TIMES
				case '/':
					kind = token.OVER
				case ';':
					kind = token.SEMI
				case '(':
					kind = token.LPAREN
				case ')':
					kind = token.RPAREN
				case '<':
					kind = token.LT
				case '=':
					kind = token.EQ
				default:
					// Keep the unrecognized character as the error lexeme.
					save = true
					kind = token.ERROR
				}
			}
		case stateInIdentifier:
			if !isLetter(ch) {
				// The character belongs to the next token.
				l.src.unread()
				save = false
				st = stateDone
				kind = token.IDENTIFIER
			}
		case stateInNumber:
			if !isDigit(ch) {
				l.src.unread()
				save = false
				st = stateDone
				kind = token.NUMBER
			}
		case stateInAssign:
			st = stateDone
			if ch == '=' {
				kind = token.ASSIGN
			} else {
				// A lone ':' is not a token.
				l.src.unread()
				save = false
				kind = token.ERROR
			}
		case stateInComment:
			save = false
			if ch == '}' {
				st = stateStart
			} else if ch == eof {
				// Unterminated comment: end the stream rather than spin.
				st = stateDone
				kind = token.ENDFILE
			}
		}
		if save && l.buf.Len() <= maxTokenLen {
			l.buf.WriteByte(byte(ch))
		}
	}
	if kind == token.IDENTIFIER {
		kind = token.Lookup(l.buf.String())
	}
	tok := token.Token{Type: kind, Literal: l.buf.String(), Line: l.src.lineno}
	if l.trace != nil {
		fmt.Fprintf(l.trace, "\t%d: %s\n", tok.Line, tok)
	}
	return tok
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func isLetter(ch rune) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isWhitespace(ch rune) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}
