package util

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyErrorList(t *testing.T) {
	var e ErrorList
	assert.NoError(t, e.Error())
	assert.Equal(t, 0, e.Len())
	assert.Empty(t, e.Errors())
}

func TestErrorListKeepsOrder(t *testing.T) {
	var e ErrorList
	e.Add(errors.New("first"))
	e.Add(errors.New("second"))

	require.Equal(t, 2, e.Len())
	require.Error(t, e.Error())
	assert.Equal(t, "first\nsecond", e.Error().Error())
	assert.Equal(t, "second", e.Errors()[1].Error())
}

func TestPretty(t *testing.T) {
	s := Pretty(3, "let = 5;", "expected IDENT, got =", 4, 5)
	expect := "error: expected IDENT, got =\n" +
		"  3 | let = 5;\n" +
		"    |     ^"
	assert.Equal(t, expect, s)
}
