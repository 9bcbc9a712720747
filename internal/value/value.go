// Package value defines the tagged variants a validated attribute resolves to.
package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	// Blank is the resolved form of an absent or empty optional scalar.
	Blank Kind = iota
	// Integer holds a signed integer.
	Integer
	// Real holds a floating-point number.
	Real
	// Token holds a bareword, path, or enumerated token.
	Token
	// Vector holds a fixed-arity sequence of scalars.
	Vector
	// Array holds a variable-arity sequence of scalars.
	Array
	// Matrix holds a sequence of arrays.
	Matrix
	// Deferred holds a raw expression string to be resolved by an external
	// templating mechanism; it is never structurally parsed.
	Deferred
)

// String returns the kind name for diagnostics.
func (k Kind) String() string {
	switch k {
	case Blank:
		return "blank"
	case Integer:
		return "integer"
	case Real:
		return "real"
	case Token:
		return "token"
	case Vector:
		return "vector"
	case Array:
		return "array"
	case Matrix:
		return "matrix"
	case Deferred:
		return "deferred"
	default:
		return "unknown"
	}
}

// Value is one resolved attribute value. Values are immutable once built.
type Value struct {
	kind  Kind
	i     int64
	f     float64
	s     string
	items []Value
}

// NewBlank returns the blank value.
func NewBlank() Value { return Value{kind: Blank} }

// NewInteger wraps a signed integer.
func NewInteger(i int64) Value { return Value{kind: Integer, i: i} }

// NewReal wraps a floating-point number.
func NewReal(f float64) Value { return Value{kind: Real, f: f} }

// NewToken wraps a bareword or enumerated token.
func NewToken(s string) Value { return Value{kind: Token, s: s} }

// NewVector wraps a fixed-arity scalar sequence.
func NewVector(items []Value) Value { return Value{kind: Vector, items: items} }

// NewArray wraps a variable-arity scalar sequence.
func NewArray(items []Value) Value { return Value{kind: Array, items: items} }

// NewMatrix wraps a sequence of arrays.
func NewMatrix(rows []Value) Value { return Value{kind: Matrix, items: rows} }

// NewDeferred wraps a raw deferred-expression string.
func NewDeferred(raw string) Value { return Value{kind: Deferred, s: raw} }

// Kind returns the variant tag.
func (v Value) Kind() Kind { return v.kind }

// IsBlank reports whether the value is the blank variant.
func (v Value) IsBlank() bool { return v.kind == Blank }

// Int returns the integer payload. Valid only for Integer values.
func (v Value) Int() int64 { return v.i }

// Float returns the numeric payload. Valid for Real and Integer values.
func (v Value) Float() float64 {
	if v.kind == Integer {
		return float64(v.i)
	}
	return v.f
}

// Token returns the token payload. Valid for Token values.
func (v Value) Token() string { return v.s }

// Raw returns the unparsed expression. Valid for Deferred values.
func (v Value) Raw() string { return v.s }

// Items returns the element sequence. Valid for Vector, Array, and Matrix values.
func (v Value) Items() []Value { return v.items }

// Len returns the number of elements for sequence variants, zero otherwise.
func (v Value) Len() int { return len(v.items) }

// Equal reports deep equality of two values.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case Blank:
		return true
	case Integer:
		return v.i == other.i
	case Real:
		return v.f == other.f
	case Token, Deferred:
		return v.s == other.s
	default:
		if len(v.items) != len(other.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(other.items[i]) {
				return false
			}
		}
		return true
	}
}

// String renders the value in input-deck notation.
func (v Value) String() string {
	switch v.kind {
	case Blank:
		return ""
	case Integer:
		return strconv.FormatInt(v.i, 10)
	case Real:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case Token:
		return v.s
	case Deferred:
		return v.s
	default:
		parts := make([]string, len(v.items))
		for i, item := range v.items {
			parts[i] = item.String()
		}
		return fmt.Sprintf("{%s}", strings.Join(parts, ","))
	}
}
