package object

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruthy(t *testing.T) {
	cases := []struct {
		obj    Object
		truthy bool
	}{
		{TRUE, true},
		{FALSE, false},
		{NULL, false},
		{Integer{0}, false},
		{Integer{1}, true},
		{Integer{-1}, true},
		{Float{0}, false},
		{Float{0.1}, true},
		{String{""}, true},
		{String{"a"}, true},
		{Return{Value: FALSE}, false},
		{Return{Value: Integer{3}}, true},
	}

	for _, c := range cases {
		assert.Equal(t, c.truthy, Truthy(c.obj), "obj=%#v", c.obj)
	}
}

func TestString(t *testing.T) {
	cases := []struct {
		obj Object
		str string
	}{
		{Integer{42}, "42"},
		{Integer{-7}, "-7"},
		{Float{10.5}, "10.5"},
		{Float{10}, "10.0"},
		{Float{-0.25}, "-0.25"},
		{Float{1e21}, "1e+21"},
		{Float{math.Inf(1)}, "+Inf"},
		{TRUE, "true"},
		{FALSE, "false"},
		{NULL, "null"},
		{String{"hi"}, `"hi"`},
		{Return{Value: Integer{30}}, "30"},
	}

	for _, c := range cases {
		assert.Equal(t, c.str, c.obj.String())
	}
}

func TestTypes(t *testing.T) {
	assert.Equal(t, INTEGER, Integer{}.Type())
	assert.Equal(t, FLOAT, Float{}.Type())
	assert.Equal(t, BOOLEAN, TRUE.Type())
	assert.Equal(t, NULL_T, NULL.Type())
	assert.Equal(t, STRING, String{}.Type())
	assert.Equal(t, RETURN, Return{}.Type())
	assert.Equal(t, "INTEGER", INTEGER.String())
	assert.Equal(t, "NULL", NULL_T.String())
	assert.Equal(t, "INVALID", Type(99).String())
}

func TestNewReturn(t *testing.T) {
	assert.Equal(t, Return{Value: Integer{1}}, NewReturn(Integer{1}))
	assert.Equal(t, Return{Value: NULL}, NewReturn(nil))
	assert.Equal(t, Return{Value: TRUE}, NewReturn(NewReturn(TRUE)))
}

func TestUnwrap(t *testing.T) {
	assert.Equal(t, Integer{1}, Unwrap(Return{Value: Integer{1}}))
	assert.Equal(t, Integer{1}, Unwrap(Integer{1}))
}

func TestValuesAreComparable(t *testing.T) {
	assert.True(t, NativeBool(true) == TRUE)
	assert.True(t, NativeBool(false) == FALSE)
	assert.True(t, Object(Integer{5}) == Object(Integer{5}))
	assert.False(t, Object(Integer{5}) == Object(Float{5}))
}

func TestToFloat(t *testing.T) {
	f, ok := ToFloat(Integer{3})
	assert.True(t, ok)
	assert.Equal(t, 3.0, f)

	_, ok = ToFloat(TRUE)
	assert.False(t, ok)

	assert.True(t, IsNumeric(Float{1}))
	assert.False(t, IsNumeric(NULL))
}
