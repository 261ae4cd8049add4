package lexer

import (
	"fmt"
	"io"
)

// Option configures a Lexer. Options are applied by New and report invalid
// configuration as an error.
type Option func(*Lexer) error

// EchoSource returns an Option that writes each source line verbatim to w,
// prefixed with its line number, as the line is read. The echo is purely
// diagnostic and has no effect on tokenization.
func EchoSource(w io.Writer) Option {
	return func(l *Lexer) error {
		if w == nil {
			return fmt.Errorf("lexer: EchoSource requires a non-nil writer")
		}
		l.src.echo = w
		return nil
	}
}

// TraceTokens returns an Option that writes one line to w for every token
// returned by NextToken, carrying the line number, kind, and lexeme. The
// trace is purely diagnostic and has no effect on tokenization.
func TraceTokens(w io.Writer) Option {
	return func(l *Lexer) error {
		if w == nil {
			return fmt.Errorf("lexer: TraceTokens requires a non-nil writer")
		}
		l.trace = w
		return nil
	}
}
