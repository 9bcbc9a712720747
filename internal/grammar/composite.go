package grammar

import (
	"fmt"

	"github.com/simware/deckschema/internal/token"
	"github.com/simware/deckschema/internal/value"
)

// TupleMatcher accepts exactly Arity comma-separated scalars wrapped in
// braces, e.g. a spatial 3-vector or a symmetric tensor in Voigt notation.
type TupleMatcher struct {
	Arity  int
	Scalar Matcher
}

// Parse implements Matcher.
func (m TupleMatcher) Parse(tokens []token.Token) (value.Value, error) {
	items, err := parseBracedItems(tokens, m.Scalar)
	if err != nil {
		return value.Value{}, err
	}
	if len(items) != m.Arity {
		return value.Value{}, fmt.Errorf("expected %d values, found %d", m.Arity, len(items))
	}
	return value.NewVector(items), nil
}

// Describe implements Matcher.
func (m TupleMatcher) Describe() string {
	return fmt.Sprintf("%d-tuple of %s", m.Arity, m.Scalar.Describe())
}

// ArrayMatcher accepts zero or more comma-separated scalars wrapped in
// braces. The empty array "{}" is valid; a trailing comma is not.
type ArrayMatcher struct {
	Scalar Matcher
}

// Parse implements Matcher.
func (m ArrayMatcher) Parse(tokens []token.Token) (value.Value, error) {
	items, err := parseBracedItems(tokens, m.Scalar)
	if err != nil {
		return value.Value{}, err
	}
	return value.NewArray(items), nil
}

// Describe implements Matcher.
func (m ArrayMatcher) Describe() string {
	return "array of " + m.Scalar.Describe()
}

// MatrixMatcher accepts a braced, comma-separated sequence of arrays of
// scalars, e.g. a binary-interaction-coefficient table.
type MatrixMatcher struct {
	Scalar Matcher
}

// Parse implements Matcher.
func (m MatrixMatcher) Parse(tokens []token.Token) (value.Value, error) {
	c := &cursor{tokens: tokens}
	if err := c.expect(token.LBrace); err != nil {
		return value.Value{}, err
	}
	var rows []value.Value
	if t, ok := c.peek(); ok && t.Kind != token.RBrace {
		for {
			row, err := parseGroup(c, m.Scalar)
			if err != nil {
				return value.Value{}, err
			}
			rows = append(rows, row)
			t, ok := c.peek()
			if !ok {
				return value.Value{}, fmt.Errorf("expected %q, found end of value", token.RBrace)
			}
			if t.Kind != token.Comma {
				break
			}
			c.pos++
		}
	}
	if err := c.expect(token.RBrace); err != nil {
		return value.Value{}, err
	}
	if !c.atEnd() {
		t, _ := c.peek()
		return value.Value{}, fmt.Errorf("trailing content %q after matrix", t.Text)
	}
	return value.NewMatrix(rows), nil
}

// Describe implements Matcher.
func (m MatrixMatcher) Describe() string {
	return "array of arrays of " + m.Scalar.Describe()
}

// parseBracedItems parses "{ s1, s2, ... }" entirely, returning the scalar
// items in order.
func parseBracedItems(tokens []token.Token, scalar Matcher) ([]value.Value, error) {
	c := &cursor{tokens: tokens}
	if err := c.expect(token.LBrace); err != nil {
		return nil, err
	}
	items, err := parseItems(c, scalar)
	if err != nil {
		return nil, err
	}
	if err := c.expect(token.RBrace); err != nil {
		return nil, err
	}
	if !c.atEnd() {
		t, _ := c.peek()
		return nil, fmt.Errorf("trailing content %q after array", t.Text)
	}
	return items, nil
}

// parseGroup parses one nested "{ ... }" array inside a matrix.
func parseGroup(c *cursor, scalar Matcher) (value.Value, error) {
	if err := c.expect(token.LBrace); err != nil {
		return value.Value{}, err
	}
	items, err := parseItems(c, scalar)
	if err != nil {
		return value.Value{}, err
	}
	if err := c.expect(token.RBrace); err != nil {
		return value.Value{}, err
	}
	return value.NewArray(items), nil
}

// parseItems parses zero or more comma-separated scalars, stopping before
// the closing brace.
func parseItems(c *cursor, scalar Matcher) ([]value.Value, error) {
	var items []value.Value
	if t, ok := c.peek(); !ok || t.Kind == token.RBrace {
		return items, nil
	}
	for {
		run, err := c.scalarRun()
		if err != nil {
			return nil, err
		}
		item, err := scalar.Parse(run)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		t, ok := c.peek()
		if !ok || t.Kind != token.Comma {
			return items, nil
		}
		c.pos++
	}
}
