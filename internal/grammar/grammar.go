// Package grammar implements the matcher catalogue for input-deck attribute
// values. Each matcher parses a token stream into a resolved value or reports
// why the stream does not conform.
//
// The deferred-expression escape is a field-level policy applied by the
// validator before any matcher runs; no matcher recognizes sentinels itself.
package grammar

import (
	"fmt"

	"github.com/simware/deckschema/internal/token"
	"github.com/simware/deckschema/internal/value"
)

// Matcher parses one class of attribute value shapes.
type Matcher interface {
	// Parse resolves the token stream into a value, or returns an error
	// describing the first point of mismatch.
	Parse(tokens []token.Token) (value.Value, error)
	// Describe returns a short human-readable description of the accepted
	// shape, used in violation diagnostics.
	Describe() string
}

// trimSpace returns the index range of tokens with leading and trailing
// whitespace runs removed.
func trimSpace(tokens []token.Token) (int, int) {
	lo, hi := 0, len(tokens)
	for lo < hi && tokens[lo].Kind == token.Whitespace {
		lo++
	}
	for hi > lo && tokens[hi-1].Kind == token.Whitespace {
		hi--
	}
	return lo, hi
}

// joined returns the concatenated text of a scalar token run, after trimming
// edge whitespace. It fails when the run contains interior whitespace, since
// no scalar grammar permits it.
func joined(tokens []token.Token) (string, error) {
	lo, hi := trimSpace(tokens)
	for i := lo; i < hi; i++ {
		if tokens[i].Kind == token.Whitespace {
			return "", fmt.Errorf("unexpected whitespace inside value")
		}
	}
	return token.Join(tokens, lo, hi), nil
}

// cursor walks a token stream for the bracketed composite grammars,
// skipping insignificant whitespace between structural tokens.
type cursor struct {
	tokens []token.Token
	pos    int
}

func (c *cursor) skipSpace() {
	for c.pos < len(c.tokens) && c.tokens[c.pos].Kind == token.Whitespace {
		c.pos++
	}
}

// peek returns the next significant token without consuming it.
func (c *cursor) peek() (token.Token, bool) {
	c.skipSpace()
	if c.pos >= len(c.tokens) {
		return token.Token{}, false
	}
	return c.tokens[c.pos], true
}

// expect consumes the next significant token, which must have the given kind.
func (c *cursor) expect(kind token.Kind) error {
	t, ok := c.peek()
	if !ok {
		return fmt.Errorf("expected %q, found end of value", kind)
	}
	if t.Kind != kind {
		return fmt.Errorf("expected %q, found %q", kind, t.Text)
	}
	c.pos++
	return nil
}

// atEnd reports whether only whitespace remains.
func (c *cursor) atEnd() bool {
	c.skipSpace()
	return c.pos >= len(c.tokens)
}

// scalarRun consumes tokens up to the next comma or closing brace and returns
// them for an inner scalar matcher. The run may not be empty.
func (c *cursor) scalarRun() ([]token.Token, error) {
	c.skipSpace()
	start := c.pos
	for c.pos < len(c.tokens) {
		k := c.tokens[c.pos].Kind
		if k == token.Comma || k == token.RBrace || k == token.LBrace {
			break
		}
		c.pos++
	}
	end := c.pos
	for end > start && c.tokens[end-1].Kind == token.Whitespace {
		end--
	}
	if end == start {
		next := "end of value"
		if c.pos < len(c.tokens) {
			next = fmt.Sprintf("%q", c.tokens[c.pos].Text)
		}
		return nil, fmt.Errorf("expected value, found %s", next)
	}
	return c.tokens[start:end], nil
}
