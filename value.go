package fcubed

import (
	"strconv"

	"github.com/KimNorgaard/go-fcubed/internal/ast"
	"github.com/KimNorgaard/go-fcubed/internal/token"
)

// Kind is the closed set of value kinds FCubed can represent.
type Kind uint8

// The zero Kind is Null, so the zero Value is a null value.
const (
	KindNull Kind = iota
	KindString
	KindChar
	KindInt32
	KindBool
)

var kindNames = [...]string{
	KindNull:   "null",
	KindString: "string",
	KindChar:   "char",
	KindInt32:  "int32",
	KindBool:   "bool",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Char is a single character. It is a distinct type so that characters
// and 32-bit integers never share a Go type.
type Char rune

// Scalar is the set of Go types a Value can hold.
type Scalar interface {
	string | Char | int32 | bool
}

// Value is a tagged union over the five FCubed kinds.
// Values are comparable with ==, which compares kind and content.
type Value struct {
	kind Kind
	str  string
	num  int32
	ch   Char
	b    bool
}

// StringValue returns a String value.
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// CharValue returns a Char value.
func CharValue(c Char) Value { return Value{kind: KindChar, ch: c} }

// Int32Value returns an Int32 value.
func Int32Value(n int32) Value { return Value{kind: KindInt32, num: n} }

// BoolValue returns a Bool value.
func BoolValue(b bool) Value { return Value{kind: KindBool, b: b} }

// NullValue returns the null value. It is the zero Value.
func NullValue() Value { return Value{} }

// ValueOf converts a Go value to a Value.
//
// Strings, Chars, bools, int32s and ints that fit in 32 bits map to their
// kind. A rune is an int32 and therefore maps to Int32; use Char for
// characters. Every other type, including floats and nil, maps to Null.
// The original type of such a value cannot be recovered after encoding.
func ValueOf(v any) Value {
	switch x := v.(type) {
	case Value:
		return x
	case string:
		return StringValue(x)
	case Char:
		return CharValue(x)
	case bool:
		return BoolValue(x)
	case int32:
		return Int32Value(x)
	case int:
		if int(int32(x)) == x {
			return Int32Value(int32(x))
		}
	}
	return NullValue()
}

// Kind returns the kind of v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the null value.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsString returns the string held by v and whether v is a String.
func (v Value) AsString() (string, bool) { return v.str, v.kind == KindString }

// AsChar returns the character held by v and whether v is a Char.
func (v Value) AsChar() (Char, bool) { return v.ch, v.kind == KindChar }

// AsInt32 returns the integer held by v and whether v is an Int32.
func (v Value) AsInt32() (int32, bool) { return v.num, v.kind == KindInt32 }

// AsBool returns the boolean held by v and whether v is a Bool.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// Equal reports whether v and other have the same kind and content.
func (v Value) Equal(other Value) bool { return v == other }

// Interface returns the Go value held by v, or nil for Null.
func (v Value) Interface() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindChar:
		return v.ch
	case KindInt32:
		return v.num
	case KindBool:
		return v.b
	default:
		return nil
	}
}

// String returns the value as it appears on the right-hand side of an
// encoded line.
func (v Value) String() string {
	return v.literal().String()
}

func kindOf[T Scalar]() Kind {
	var zero T
	switch any(zero).(type) {
	case string:
		return KindString
	case Char:
		return KindChar
	case int32:
		return KindInt32
	case bool:
		return KindBool
	}
	return KindNull
}

// valueAs extracts a T from v when v holds the matching kind.
func valueAs[T Scalar](v Value) (T, bool) {
	var out T
	var ok bool
	switch p := any(&out).(type) {
	case *string:
		*p, ok = v.AsString()
	case *Char:
		*p, ok = v.AsChar()
	case *int32:
		*p, ok = v.AsInt32()
	case *bool:
		*p, ok = v.AsBool()
	}
	if !ok {
		var zero T
		return zero, false
	}
	return out, true
}

// literal builds the AST node for v.
func (v Value) literal() ast.Expression {
	switch v.kind {
	case KindString:
		return &ast.StringLiteral{Token: token.Token{Type: token.STRING, Literal: v.str}, Value: v.str}
	case KindChar:
		lit := string(rune(v.ch))
		return &ast.CharLiteral{Token: token.Token{Type: token.CHAR, Literal: lit}, Value: rune(v.ch)}
	case KindInt32:
		lit := strconv.FormatInt(int64(v.num), 10)
		return &ast.IntegerLiteral{Token: token.Token{Type: token.INT, Literal: lit}, Value: v.num}
	case KindBool:
		tokType := token.FALSE
		if v.b {
			tokType = token.TRUE
		}
		return &ast.BooleanLiteral{Token: token.Token{Type: tokType, Literal: ast.FormatBool(v.b)}, Value: v.b}
	default:
		return &ast.NullLiteral{Token: token.Token{Type: token.NONE, Literal: token.NoneLiteral}}
	}
}
