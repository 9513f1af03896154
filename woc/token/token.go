package token

import "fmt"

type Token struct {
	Type   TokenType
	Pos    Pos    // Position of first character in token
	EndPos Pos    // Position of character immediately after token
	Lexeme string // The token as a string literal
	Length int    // The character length of the token in source

	// If the token is EOF. Always true if the type is EOF and
	// vice versa. Simply a shorthand for tok.Type == token.EOF.
	Eof bool

	// True if the token is malformed. This is different from TokenType.ILLEGAL
	// which is for unknown symbols. However, the Invalid field is always true
	// if the type is ILLEGAL.
	//
	// Example: an unterminated string has the ILLEGAL type and is Invalid,
	// and its Lexeme holds the text scanned up to the end of input.
	Invalid bool
}

func (t Token) String() string {
	return fmt.Sprintf("{%s '%s' c:%d r:%d}", t.Type, t.Lexeme, t.Pos.Col, t.Pos.Row)
}

// Describe returns a short human form of the token for error messages.
func (t Token) Describe() string {
	switch t.Type {
	case EOF:
		return "end of input"
	case IDENT, INTEGER, FLOAT, ILLEGAL:
		return fmt.Sprintf("%s '%s'", t.Type, t.Lexeme)
	case STRING:
		return fmt.Sprintf("STRING \"%s\"", t.Lexeme)
	default:
		return fmt.Sprintf("'%s'", t.Lexeme)
	}
}

type Pos struct {
	Col       int   // Column in file
	Row       int   // Row in file, same as line number -1
	Offset    int   // Byte offset in file
	File      *File // File this position refers to
	LineBegin int   // Offset of beginning of line token is on
}

// String formats the position as line:col, both 1-based.
func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Row+1, p.Col+1)
}
