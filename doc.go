/*
Package tiny provides the lexical analyzer for the TINY teaching language.

The scanner converts a stream of source characters into classified tokens.
The token set is small and fixed: identifiers, unsigned integer numbers,
eight reserved words (if, then, else, end, repeat, until, read, write), the
two-character assignment operator :=, a handful of single-character
operators and punctuation, an ERROR kind for malformed input, and ENDFILE.
Comments are enclosed in curly braces and never produce tokens.

The incremental interface lives in the lexer subpackage and hands out one
token per call:

	l, err := lexer.New(f)
	if err != nil {
		// handle error
	}
	for {
		tok := l.NextToken()
		if tok.Type == token.ENDFILE {
			break
		}
		// consume tok
	}

For whole-input scanning, Tokenize collects every token through the
terminating ENDFILE:

	toks, err := tiny.Tokenize([]byte("if x:=10;"))

Lexical errors never stop the scanner: an unrecognized character, or a ':'
not followed by '=', yields a token of kind ERROR and scanning resumes with
the next call. The caller decides whether ERROR tokens abort its pipeline.

Diagnostic output is available through functional options: EchoSource writes
each raw source line as it is read, and TraceTokens writes one record per
token. Neither affects classification.
*/
package tiny
