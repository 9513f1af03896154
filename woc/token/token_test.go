package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineOffsets(t *testing.T) {
	cases := []struct {
		src   string
		lines []int
	}{
		{"", []int{}},
		{"a", []int{0}},
		{"a\n", []int{0}},
		{"hello there\nmy name is bob", []int{0, 12}},
		{"a\n\nb", []int{0, 2, 3}},
	}

	for _, c := range cases {
		assert.Equal(t, c.lines, lineOffsets([]byte(c.src)), "src=%q", c.src)
	}
}

func TestFileLines(t *testing.T) {
	f := NewFile("", "let x = 1;\n\nreturn x;\r\n")
	assert.NoError(t, f.Err)
	assert.Equal(t, []int{0, 11, 12}, f.Lines)
	assert.Equal(t, "let x = 1;", f.Line(0))
	assert.Equal(t, "", f.Line(1))
	assert.Equal(t, "return x;", f.Line(2))
	assert.Equal(t, "", f.Line(3))
}

func TestInvalidSource(t *testing.T) {
	f := NewFile("", 42)
	assert.Error(t, f.Err)
	assert.Empty(t, f.Src)
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "INTEGER", INTEGER.String())
	assert.Equal(t, "&&", AND_AND.String())
	assert.Equal(t, "let", LET.String())
	assert.Equal(t, "UNKNOWN", TokenType(-1).String())

	for lit, typ := range DoubleSymbols {
		assert.Equal(t, lit, typ.String())
	}
	for lit, typ := range SingleSymbols {
		assert.Equal(t, lit, typ.String())
	}
	for lit, typ := range Keywords {
		assert.Equal(t, lit, typ.String())
	}
}
