package lexer

import (
	"bufio"
	"fmt"
	"io"
)

// eof is the sentinel returned by next once the source is exhausted.
const eof rune = -1

// sourceBuffer owns one line of source text at a time and hands it out a
// character at a time with single-character pushback.
type sourceBuffer struct {
	r      *bufio.Reader
	line   string // current raw line, delimiter included
	pos    int    // read cursor within line
	lineno int
	atEOF  bool
	echo   io.Writer
}

func newSourceBuffer(r io.Reader) *sourceBuffer {
	return &sourceBuffer{r: bufio.NewReader(r)}
}

// next returns the next character of the current line, reading a new line
// from the source when the current one is exhausted. Once the source is
// drained it returns eof on every call without touching the reader again.
// Read errors are treated the same as end of input.
func (b *sourceBuffer) next() rune {
	if b.atEOF {
		return eof
	}
	if b.pos >= len(b.line) {
		line, err := b.r.ReadString('\n')
		if line == "" && err != nil {
			b.atEOF = true
			return eof
		}
		b.lineno++
		b.line = line
		b.pos = 0
		if b.echo != nil {
			fmt.Fprintf(b.echo, "%4d: %s", b.lineno, line)
		}
	}
	ch := rune(b.line[b.pos])
	b.pos++
	return ch
}

// unread backs the cursor up one character within the current line. It is a
// no-op at end of input, so the eof sentinel is never pushed back onto line
// storage it was not read from. Callers never unread twice without an
// intervening next.
func (b *sourceBuffer) unread() {
	if !b.atEOF {
		b.pos--
	}
}
