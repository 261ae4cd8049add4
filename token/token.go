package token

// Type is the kind of a token.
type Type string

// Token represents a lexical token. Literal holds the lexeme text the
// scanner saved while matching; operator and punctuation tokens carry an
// empty Literal because their characters are never saved.
type Token struct {
	Type    Type
	Literal string
	Line    int
}

const (
	// Bookkeeping tokens
	ENDFILE Type = "ENDFILE" // end of input; returned forever once reached
	ERROR   Type = "ERROR"   // unrecognized character or malformed operator

	// Literals
	IDENTIFIER Type = "IDENTIFIER" // x, fact
	NUMBER     Type = "NUMBER"     // 12345

	// Reserved words
	IF     Type = "IF"
	THEN   Type = "THEN"
	ELSE   Type = "ELSE"
	END    Type = "END"
	REPEAT Type = "REPEAT"
	UNTIL  Type = "UNTIL"
	READ   Type = "READ"
	WRITE  Type = "WRITE"

	// Operators and punctuation
	ASSIGN Type = "ASSIGN" // :=
	EQ     Type = "EQ"     // =
	LT     Type = "LT"     // <
	PLUS   Type = "PLUS"   // +
	MINUS  Type = "MINUS"  // -
	TIMES  Type = "TIMES"  // *
	OVER   Type = "OVER"   // /
	LPAREN Type = "LPAREN" // (
	RPAREN Type = "RPAREN" // )
	SEMI   Type = "SEMI"   // ;
)

var keywords = map[string]Type{
	"if":     IF,
	"then":   THEN,
	"else":   ELSE,
	"end":    END,
	"repeat": REPEAT,
	"until":  UNTIL,
	"read":   READ,
	"write":  WRITE,
}

// Lookup checks the reserved-word table for an identifier lexeme.
// If the lexeme is a reserved word, it returns the keyword's token type.
// Otherwise, it returns IDENTIFIER. The match is exact and case-sensitive:
// "if" is a keyword, "If" is an ordinary identifier.
func Lookup(ident string) Type {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENTIFIER
}

var symbols = map[Type]string{
	ASSIGN: ":=",
	EQ:     "=",
	LT:     "<",
	PLUS:   "+",
	MINUS:  "-",
	TIMES:  "*",
	OVER:   "/",
	LPAREN: "(",
	RPAREN: ")",
	SEMI:   ";",
}

// String renders the token the way the trace listing prints it.
func (t Token) String() string {
	switch t.Type {
	case IF, THEN, ELSE, END, REPEAT, UNTIL, READ, WRITE:
		return "reserved word: " + t.Literal
	case IDENTIFIER:
		return "IDENTIFIER, name= " + t.Literal
	case NUMBER:
		return "NUMBER, val= " + t.Literal
	case ENDFILE:
		return "EOF"
	case ERROR:
		return "ERROR: " + t.Literal
	default:
		return symbols[t.Type]
	}
}
