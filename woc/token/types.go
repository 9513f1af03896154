package token

type TokenType int

const (
	ILLEGAL TokenType = iota
	EOF

	STRING
	INTEGER
	FLOAT
	IDENT

	TRUE
	FALSE
	LET
	RETURN
	FUNC
	IF
	ELSE
	FOR

	PLUS
	MINUS
	STAR
	SLASH
	COMMA
	SEMI
	EQ
	EQ_EQ
	NOT_EQ
	PLUS_EQ
	MINUS_EQ
	MULT_EQ
	DIV_EQ
	GREATER
	LESS
	GREATER_EQ
	LESS_EQ
	LPAREN
	RPAREN
	LBRACE
	RBRACE
	AND
	AND_AND
	OR
	OR_OR
	NOT
)

var Keywords = map[string]TokenType{
	"true":   TRUE,
	"false":  FALSE,
	"let":    LET,
	"return": RETURN,
	"func":   FUNC,
	"if":     IF,
	"else":   ELSE,
	"for":    FOR,
}

var SingleSymbols = map[string]TokenType{
	"+": PLUS,
	"-": MINUS,
	"*": STAR,
	"/": SLASH,
	",": COMMA,
	";": SEMI,
	"=": EQ,
	">": GREATER,
	"<": LESS,
	"(": LPAREN,
	")": RPAREN,
	"{": LBRACE,
	"}": RBRACE,
	"&": AND,
	"|": OR,
	"!": NOT,
}

var DoubleSymbols = map[string]TokenType{
	"||": OR_OR,
	">=": GREATER_EQ,
	"<=": LESS_EQ,
	"&&": AND_AND,
	"==": EQ_EQ,
	"!=": NOT_EQ,
	"+=": PLUS_EQ,
	"-=": MINUS_EQ,
	"*=": MULT_EQ,
	"/=": DIV_EQ,
}

var names = [...]string{
	ILLEGAL:    "ILLEGAL",
	EOF:        "EOF",
	STRING:     "STRING",
	INTEGER:    "INTEGER",
	FLOAT:      "FLOAT",
	IDENT:      "IDENT",
	TRUE:       "true",
	FALSE:      "false",
	LET:        "let",
	RETURN:     "return",
	FUNC:       "func",
	IF:         "if",
	ELSE:       "else",
	FOR:        "for",
	PLUS:       "+",
	MINUS:      "-",
	STAR:       "*",
	SLASH:      "/",
	COMMA:      ",",
	SEMI:       ";",
	EQ:         "=",
	EQ_EQ:      "==",
	NOT_EQ:     "!=",
	PLUS_EQ:    "+=",
	MINUS_EQ:   "-=",
	MULT_EQ:    "*=",
	DIV_EQ:     "/=",
	GREATER:    ">",
	LESS:       "<",
	GREATER_EQ: ">=",
	LESS_EQ:    "<=",
	LPAREN:     "(",
	RPAREN:     ")",
	LBRACE:     "{",
	RBRACE:     "}",
	AND:        "&",
	AND_AND:    "&&",
	OR:         "|",
	OR_OR:      "||",
	NOT:        "!",
}

// String returns the name used for t in diagnostics. Symbols and keywords
// are shown as written in source.
func (t TokenType) String() string {
	if t >= 0 && int(t) < len(names) && names[t] != "" {
		return names[t]
	}
	return "UNKNOWN"
}
