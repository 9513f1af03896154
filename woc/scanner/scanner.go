package scanner

import (
	"fmt"
	"unicode/utf8"

	"github.com/woclang/woc/util"
	"github.com/woclang/woc/woc/token"
)

// Scanner produces tokens from a single source file on demand. It makes one
// forward pass over the source and cannot be rewound; create a new Scanner to
// start over.
type Scanner struct {
	file      *token.File
	src       []byte
	offset    int
	row       int
	lineBegin int
	errors    util.ErrorList

	NumErrors int
}

// Error is a lexical error at a position in the source.
type Error struct {
	Pos token.Pos
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

// New makes a new Scanner for the given file. Scanner only accepts ascii text
// outside of string literals; any other byte sequence is reported as illegal.
func New(file *token.File) *Scanner {
	util.Assert(file != nil, "scanner: nil file")
	return &Scanner{
		file: file,
		src:  file.Src,
	}
}

// Scan consumes the next token and returns it, advancing the Scanner. After
// the end of input is reached every call returns an EOF token.
func (s *Scanner) Scan() token.Token {
	s.skipWhitespace()

	if s.eof() {
		pos := s.pos()
		return token.Token{
			Type:   token.EOF,
			Pos:    pos,
			EndPos: pos,
			Eof:    true,
		}
	}

	start := s.pos()
	c := s.cur()

	switch {
	case isAlpha(c):
		return s.scanIdent(start)
	case isNum(c):
		return s.scanNumber(start)
	case c == '-' && isNum(s.peek()):
		// Negative literals are folded into a single token.
		return s.scanNumber(start)
	case c == '"':
		return s.scanString(start)
	}

	return s.scanSymbol(start)
}

// ScanAll scans until the end of input and returns all tokens. The last
// token is always a single EOF token.
func (s *Scanner) ScanAll() []token.Token {
	toks := []token.Token{}
	for {
		tok := s.Scan()
		toks = append(toks, tok)
		if tok.Eof {
			return toks
		}
	}
}

// Errors returns all lexical errors found so far, in source order.
func (s *Scanner) Errors() []error {
	return s.errors.Errors()
}

// Error returns all lexical errors joined, or nil.
func (s *Scanner) Error() error {
	return s.errors.Error()
}

func (s *Scanner) scanIdent(start token.Pos) token.Token {
	for isAlpha(s.cur()) || isNum(s.cur()) {
		s.consume()
	}

	tok := s.token(token.IDENT, start)
	if typ, ok := token.Keywords[tok.Lexeme]; ok {
		tok.Type = typ
	}
	return tok
}

func (s *Scanner) scanNumber(start token.Pos) token.Token {
	if s.cur() == '-' {
		s.consume()
	}

	s.consumeDigits()
	if s.cur() == '.' && isNum(s.peek()) {
		s.consume() // Dot
		s.consumeDigits()
		return s.token(token.FLOAT, start)
	}

	return s.token(token.INTEGER, start)
}

// consumeDigits consumes a run of digits, allowing single underscores
// between them as separators.
func (s *Scanner) consumeDigits() {
	for isNum(s.cur()) || (s.cur() == '_' && isNum(s.peek())) {
		s.consume()
	}
}

func (s *Scanner) scanString(start token.Pos) token.Token {
	s.consume() // Opening quote

	for !s.eof() && s.cur() != '"' {
		// Escapes are kept verbatim, but an escaped quote does not end the
		// literal.
		if s.cur() == '\\' && s.peek() != 0 {
			s.consume()
		}
		s.consume()
	}

	if s.eof() {
		tok := s.token(token.ILLEGAL, start)
		tok.Lexeme = tok.Lexeme[1:]
		tok.Invalid = true
		s.err(start, "unterminated string literal")
		return tok
	}

	s.consume() // Closing quote
	tok := s.token(token.STRING, start)
	tok.Lexeme = tok.Lexeme[1 : len(tok.Lexeme)-1]
	return tok
}

func (s *Scanner) scanSymbol(start token.Pos) token.Token {
	if s.offset+1 < len(s.src) {
		if typ, ok := token.DoubleSymbols[string(s.src[s.offset:s.offset+2])]; ok {
			s.consume()
			s.consume()
			return s.token(typ, start)
		}
	}

	if typ, ok := token.SingleSymbols[string(s.cur())]; ok {
		s.consume()
		return s.token(typ, start)
	}

	// Consume the whole utf8 sequence so one bad character is one token.
	_, size := utf8.DecodeRune(s.src[s.offset:])
	for range size {
		s.consume()
	}

	tok := s.token(token.ILLEGAL, start)
	tok.Invalid = true
	s.err(start, fmt.Sprintf("illegal character '%s'", tok.Lexeme))
	return tok
}

// token creates a token of the given type spanning from start to the current
// position.
func (s *Scanner) token(typ token.TokenType, start token.Pos) token.Token {
	lexeme := string(s.src[start.Offset:s.offset])
	return token.Token{
		Type:   typ,
		Pos:    start,
		EndPos: s.pos(),
		Lexeme: lexeme,
		Length: len(lexeme),
	}
}

func (s *Scanner) err(pos token.Pos, msg string) {
	s.errors.Add(&Error{Pos: pos, Msg: msg})
	s.NumErrors++
}

func (s *Scanner) skipWhitespace() {
	for !s.eof() && isWhitespace(s.cur()) {
		s.consume()
	}
}

func (s *Scanner) pos() token.Pos {
	return token.Pos{
		Col:       s.offset - s.lineBegin,
		Row:       s.row,
		Offset:    s.offset,
		File:      s.file,
		LineBegin: s.lineBegin,
	}
}

func (s *Scanner) eof() bool {
	return s.offset >= len(s.src)
}

// cur returns the current byte, or 0 at the end of input.
func (s *Scanner) cur() byte {
	if s.eof() {
		return 0
	}
	return s.src[s.offset]
}

// peek returns the byte after the current one, or 0 if there is none.
func (s *Scanner) peek() byte {
	if s.offset+1 >= len(s.src) {
		return 0
	}
	return s.src[s.offset+1]
}

func (s *Scanner) consume() {
	if s.eof() {
		return
	}

	if s.cur() == '\n' {
		s.row++
		s.lineBegin = s.offset + 1
	}
	s.offset++
}
