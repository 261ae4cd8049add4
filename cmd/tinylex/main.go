// Command tinylex tokenizes a TINY source file and prints a listing of the
// tokens it finds, one per line, until end of input.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tinylang/go-tiny/lexer"
	"github.com/tinylang/go-tiny/token"
)

// sourcePath appends the default .tny extension when name has none.
func sourcePath(name string) string {
	if !strings.Contains(filepath.Base(name), ".") {
		return name + ".tny"
	}
	return name
}

func run(path string, out io.Writer, echo, trace bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Fprintf(out, "\nTOKENIZING: %s\n", path)

	var opts []lexer.Option
	if echo {
		opts = append(opts, lexer.EchoSource(out))
	}
	if trace {
		opts = append(opts, lexer.TraceTokens(out))
	}
	l, err := lexer.New(f, opts...)
	if err != nil {
		return err
	}
	for l.NextToken().Type != token.ENDFILE {
	}
	return nil
}

func main() {
	echo := flag.Bool("echo", true, "echo each source line as it is read")
	trace := flag.Bool("trace", true, "print one line per token")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [-echo] [-trace] <file>\n", filepath.Base(os.Args[0]))
		os.Exit(1)
	}
	if err := run(sourcePath(flag.Arg(0)), os.Stdout, *echo, *trace); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
