package parser

import (
	"fmt"
	"slices"

	"github.com/woclang/woc/util"
	"github.com/woclang/woc/woc/ast"
	"github.com/woclang/woc/woc/token"
)

type Parser struct {
	errors util.ErrorList
	file   *token.File
	toks   []token.Token
	pos    int // Current token being looked at

	// Set when an error is found inside a statement. Everything up to the
	// next statement boundary is skipped and no node is produced for the
	// broken statement.
	panicMode bool

	NumErrors int
}

// Error is a parse error. Expected is empty when the error is not about a
// specific missing token.
type Error struct {
	Pos      token.Pos
	Expected string
	Got      token.Token
	Msg      string
}

func (e *Error) Error() string {
	if e.Expected != "" {
		return fmt.Sprintf("%s: expected %s, got %s", e.Pos, e.Expected, e.Got.Describe())
	}
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

// New makes a parser for the given tokens, which must end with an EOF token
// as returned by scanner.ScanAll.
func New(file *token.File, toks []token.Token) *Parser {
	// The parser rewrites its buffer when splitting signed literals.
	toks = slices.Clone(toks)

	if len(toks) == 0 || !toks[len(toks)-1].Eof {
		var pos token.Pos
		if len(toks) > 0 {
			pos = toks[len(toks)-1].EndPos
		}
		toks = append(toks, token.Token{Type: token.EOF, Pos: pos, EndPos: pos, Eof: true})
	}

	return &Parser{
		toks: toks,
		file: file,
	}
}

// Parse parses all top level statements until the end of input. Statements
// with errors are left out of the program; the errors are available through
// Error and Errors.
func (p *Parser) Parse() *ast.Program {
	prog := &ast.Program{}

	for !p.eof() {
		if p.match(token.SEMI) {
			p.next()
			continue
		}

		if p.match(token.RBRACE) {
			p.errUnexpected()
			p.next()
			p.panicMode = false
			continue
		}

		stmt := p.parseStmt()
		if p.panicMode {
			p.sync()

			// The closing brace of a broken block has no block left to end.
			if p.match(token.RBRACE) {
				p.next()
			}
			continue
		}

		prog.Stmts = append(prog.Stmts, stmt)
	}

	return prog
}

// Errors returns all parse errors in source order.
func (p *Parser) Errors() []error {
	return p.errors.Errors()
}

// Error returns all parse errors joined, or nil.
func (p *Parser) Error() error {
	return p.errors.Error()
}

// sync skips tokens until the next statement boundary and leaves panic mode.
// A semicolon is consumed, a closing brace is left for the enclosing block.
func (p *Parser) sync() {
	for !p.eof() && !p.match(token.RBRACE) {
		if p.consume().Type == token.SEMI {
			break
		}
	}
	p.panicMode = false
}

func (p *Parser) cur() token.Token {
	return p.toks[p.pos]
}

// next advances to the next token. The parser never moves past EOF.
func (p *Parser) next() {
	if !p.eof() {
		p.pos++
	}
}

// consume returns the current token and advances.
func (p *Parser) consume() token.Token {
	t := p.cur()
	p.next()
	return t
}

func (p *Parser) eof() bool {
	return p.cur().Eof
}

func (p *Parser) eofOrPanic() bool {
	return p.eof() || p.panicMode
}

func (p *Parser) match(t token.TokenType) bool {
	return p.cur().Type == t
}

func (p *Parser) matchMany(types ...token.TokenType) bool {
	for _, t := range types {
		if p.match(t) {
			return true
		}
	}
	return false
}

// expect consumes and returns the current token if it has type t, otherwise
// an error is reported and the parser enters panic mode.
func (p *Parser) expect(t token.TokenType) token.Token {
	if p.panicMode {
		return p.cur()
	}

	if !p.match(t) {
		p.errExpected(describeType(t))
		return p.cur()
	}

	return p.consume()
}

func describeType(t token.TokenType) string {
	switch t {
	case token.IDENT, token.INTEGER, token.FLOAT, token.STRING, token.EOF, token.ILLEGAL:
		return t.String()
	}
	return "'" + t.String() + "'"
}

func (p *Parser) errExpected(expected string) {
	p.report(&Error{
		Pos:      p.cur().Pos,
		Expected: expected,
		Got:      p.cur(),
	})
}

func (p *Parser) errUnexpected() {
	p.report(&Error{
		Pos: p.cur().Pos,
		Got: p.cur(),
		Msg: "unexpected " + p.cur().Describe(),
	})
}

func (p *Parser) report(err *Error) {
	if p.panicMode {
		return
	}

	p.errors.Add(err)
	p.NumErrors++
	p.panicMode = true
}
