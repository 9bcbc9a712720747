package deckschema

import (
	"fmt"

	"github.com/simware/deckschema/internal/grammar"
)

// Grammar describes the accepted value shapes for one attribute-kind field.
// The zero Grammar is unset and valid only on element-kind fields.
type Grammar struct {
	matcher  grammar.Matcher
	notation string
}

// Integer accepts an optional sign followed by digits.
func Integer() Grammar {
	return Grammar{matcher: grammar.IntegerMatcher{}, notation: "integer"}
}

// Real accepts a floating-point literal with optional exponent.
func Real() Grammar {
	return Grammar{matcher: grammar.RealMatcher{}, notation: "real"}
}

// RealOrBlank accepts a real literal or the empty string.
func RealOrBlank() Grammar {
	return Grammar{matcher: grammar.RealOrBlankMatcher{}, notation: "real?"}
}

// Enum accepts exactly one of the given literal tokens, case-sensitively.
func Enum(tokens ...string) Grammar {
	set := make([]string, len(tokens))
	copy(set, tokens)
	return Grammar{
		matcher:  grammar.EnumMatcher{Tokens: set},
		notation: "enum",
	}
}

// Name accepts identifier-style barewords (letters, digits, ".-_/*" and
// bracket wildcards).
func Name() Grammar {
	return Grammar{matcher: grammar.NameMatcher{}, notation: "name"}
}

// Path accepts filesystem-flavored tokens: anything except `*?<>|:";,` and
// whitespace.
func Path() Grammar {
	return Grammar{matcher: grammar.PathMatcher{}, notation: "path"}
}

// Tuple accepts exactly arity comma-separated scalars in braces.
func Tuple(arity int, scalar Grammar) Grammar {
	return Grammar{
		matcher:  grammar.TupleMatcher{Arity: arity, Scalar: scalar.matcher},
		notation: fmt.Sprintf("tuple:%s:%d", scalar.notation, arity),
	}
}

// Array accepts zero or more comma-separated scalars in braces.
func Array(scalar Grammar) Grammar {
	return Grammar{
		matcher:  grammar.ArrayMatcher{Scalar: scalar.matcher},
		notation: "array:" + scalar.notation,
	}
}

// Matrix accepts a braced sequence of arrays of scalars.
func Matrix(scalar Grammar) Grammar {
	return Grammar{
		matcher:  grammar.MatrixMatcher{Scalar: scalar.matcher},
		notation: "matrix:" + scalar.notation,
	}
}

// IsZero reports whether the grammar is unset.
func (g Grammar) IsZero() bool { return g.matcher == nil }

// String returns the table notation for the grammar.
func (g Grammar) String() string {
	if g.IsZero() {
		return "<none>"
	}
	return g.notation
}

// Describe returns the human-readable shape description used in diagnostics.
func (g Grammar) Describe() string {
	if g.IsZero() {
		return "<none>"
	}
	return g.matcher.Describe()
}
