package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/woclang/woc/woc/ast"
	"github.com/woclang/woc/woc/parser"
	"github.com/woclang/woc/woc/scanner"
	"github.com/woclang/woc/woc/token"
)

func parse(t *testing.T, src string) *ast.Program {
	t.Helper()
	file := token.NewFile("", src)
	p := parser.New(file, scanner.New(file).ScanAll())
	prog := p.Parse()
	require.NoError(t, p.Error())
	return prog
}

func TestDebugVisitor(t *testing.T) {
	prog := parse(t, `let x = -1 + 2; if (x) { f(1); } else { return "a"; }`)

	v := ast.NewDebugVisitor()
	prog.Walk(v)

	expected := "" +
		"let: x\n" +
		"  infix: +\n" +
		"    integer: -1\n" +
		"    integer: 2\n" +
		"expr:\n" +
		"  if:\n" +
		"    ident: x\n" +
		"    block:\n" +
		"      expr:\n" +
		"        call:\n" +
		"          ident: f\n" +
		"          integer: 1\n" +
		"  else:\n" +
		"    block:\n" +
		"      return:\n" +
		"        string: \"a\"\n"
	assert.Equal(t, expected, v.String())
}

func TestString(t *testing.T) {
	tests := []string{
		"let x = (1 + (2 * 3));",
		"return;",
		"return (!true);",
		"{}",
		"{ 1; 2.5; }",
		`"str";`,
		"if ((a < b)) { a; } else if (false) {} else { b; }",
		"f(1, (-x));",
	}

	for _, src := range tests {
		assert.Equal(t, src, parse(t, src).String())
	}
}

func TestStringOfSingleNode(t *testing.T) {
	prog := parse(t, "1 + 2 * 3;")
	stmt := prog.Stmts[0].(*ast.ExprStmt)
	assert.Equal(t, "(1 + (2 * 3))", ast.String(stmt.E))
	assert.Equal(t, "(1 + (2 * 3));", ast.String(stmt))
}

func TestPositions(t *testing.T) {
	prog := parse(t, "let x = 1 + 2;\n  f(a, b);")

	let := prog.Stmts[0]
	assert.Equal(t, 0, let.Pos().Col)
	assert.Equal(t, 13, let.End().Col)

	call := prog.Stmts[1]
	assert.Equal(t, 1, call.Pos().Row)
	assert.Equal(t, 2, call.Pos().Col)
	assert.Equal(t, 9, call.End().Col)
}
