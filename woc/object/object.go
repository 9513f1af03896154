package object

import (
	"strconv"
	"strings"
)

// Type is the runtime kind of an Object.
type Type int

const (
	INVALID Type = iota

	INTEGER
	FLOAT
	BOOLEAN
	STRING
	NULL_T
	RETURN
)

var typeNames = [...]string{
	INVALID: "INVALID",
	INTEGER: "INTEGER",
	FLOAT:   "FLOAT",
	BOOLEAN: "BOOLEAN",
	STRING:  "STRING",
	NULL_T:  "NULL",
	RETURN:  "RETURN",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "INVALID"
}

// Object is a runtime value. All objects are immutable values and may be
// compared with ==.
type Object interface {
	Type() Type
	String() string
}

type (
	Integer struct {
		Value int64
	}

	Float struct {
		Value float64
	}

	Boolean struct {
		Value bool
	}

	String struct {
		Value string
	}

	Null struct{}

	// Return marks a value produced by a return statement. Block evaluation
	// stops when it sees one and hands it upwards unchanged.
	Return struct {
		Value Object
	}
)

var (
	NULL  Object = Null{}
	TRUE  Object = Boolean{Value: true}
	FALSE Object = Boolean{Value: false}
)

func (Integer) Type() Type { return INTEGER }
func (Float) Type() Type   { return FLOAT }
func (Boolean) Type() Type { return BOOLEAN }
func (String) Type() Type  { return STRING }
func (Null) Type() Type    { return NULL_T }
func (Return) Type() Type  { return RETURN }

func (i Integer) String() string { return strconv.FormatInt(i.Value, 10) }
func (b Boolean) String() string { return strconv.FormatBool(b.Value) }
func (s String) String() string  { return strconv.Quote(s.Value) }
func (Null) String() string      { return "null" }

// Floats always print with a decimal point so they can be told apart from
// integers, eg. 10.0 rather than 10.
func (f Float) String() string {
	s := strconv.FormatFloat(f.Value, 'g', -1, 64)
	if strings.ContainsAny(s, ".eIN") {
		return s
	}
	return s + ".0"
}

func (r Return) String() string {
	if r.Value == nil {
		return "null"
	}
	return r.Value.String()
}

// NewReturn wraps v in a Return marker. A nil value becomes NULL and an
// already wrapped value is not wrapped twice.
func NewReturn(v Object) Return {
	switch v := v.(type) {
	case nil:
		return Return{Value: NULL}
	case Return:
		return v
	}
	return Return{Value: v}
}

// NativeBool returns TRUE or FALSE.
func NativeBool(b bool) Object {
	if b {
		return TRUE
	}
	return FALSE
}

// Truthy reports whether o counts as true in a condition. Everything is
// truthy except false, null and numeric zero.
func Truthy(o Object) bool {
	switch o := Unwrap(o).(type) {
	case Boolean:
		return o.Value
	case Null, nil:
		return false
	case Integer:
		return o.Value != 0
	case Float:
		return o.Value != 0
	}
	return true
}

// Unwrap returns the value inside a Return, or o itself.
func Unwrap(o Object) Object {
	if r, ok := o.(Return); ok {
		return r.Value
	}
	return o
}

// IsNumeric reports whether o is an Integer or a Float.
func IsNumeric(o Object) bool {
	t := o.Type()
	return t == INTEGER || t == FLOAT
}

// ToFloat widens a numeric object to float64.
func ToFloat(o Object) (float64, bool) {
	switch o := o.(type) {
	case Integer:
		return float64(o.Value), true
	case Float:
		return o.Value, true
	}
	return 0, false
}
