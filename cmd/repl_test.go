package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func replOutput(t *testing.T, inputs ...string) (string, bool) {
	t.Helper()
	color.NoColor = true

	var buf bytes.Buffer
	r := newRepl(&buf)

	exit := false
	for _, in := range inputs {
		if r.handle(context.Background(), in) {
			exit = true
			break
		}
	}
	return buf.String(), exit
}

func TestReplValues(t *testing.T) {
	out, exit := replOutput(t, "1 + 2;", "5 + 5.5;", "if (1 > 2) { 10; }", "!0")
	assert.False(t, exit)
	assert.Equal(t, "3\n10.5\ntrue\n", out)
}

func TestReplLet(t *testing.T) {
	out, _ := replOutput(t, "let x = 2 * 21;")
	assert.Equal(t, "x = 42\n", out)
}

func TestReplErrors(t *testing.T) {
	out, exit := replOutput(t, "1 + true;")
	assert.False(t, exit)
	assert.Equal(t, ""+
		"error: invalid operation: INTEGER + BOOLEAN\n"+
		"  1 | 1 + true;\n"+
		"    |   ^\n", out)

	out, _ = replOutput(t, "let = 1;")
	assert.Contains(t, out, "error: expected IDENT, got '='")
}

func TestReplCommands(t *testing.T) {
	out, exit := replOutput(t, ":help")
	assert.False(t, exit)
	assert.Equal(t, replHelp, out)

	out, _ = replOutput(t, ":tokens 1 +")
	assert.Equal(t, "INTEGER \"1\"\n+ \"+\"\n", out)

	out, _ = replOutput(t, ":ast -x;")
	assert.Contains(t, out, "prefix: -")

	out, _ = replOutput(t, ":nope")
	assert.Equal(t, "unknown command :nope, type :help for help\n", out)

	_, exit = replOutput(t, ":quit", "1;")
	assert.True(t, exit)
}

func TestNeedsMore(t *testing.T) {
	tests := []struct {
		src  string
		more bool
	}{
		{"1 + 2;", false},
		{"if (true) {", true},
		{"if (true) {\n 1;\n}", false},
		{"if (true) { if (false) {", true},
		{"add(1,", true},
		{`"abc`, true},
		{`"abc"`, false},
		{"}", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.more, needsMore(tt.src), "src=%q", tt.src)
	}
}
