// Package token tokenizes raw attribute values for grammar matching.
//
// Tokenization never fails: bytes outside every token class become
// single-byte Word tokens so matchers can reject them with precise
// diagnostics instead of the lexer guessing.
package token

import "strings"

// Kind identifies a token class.
type Kind uint8

const (
	// Number is a run of bytes that begins like a numeric literal. The run is
	// captured greedily; lexical validity is the matcher's responsibility.
	Number Kind = iota
	// Word is a run of bareword bytes, or a single byte outside every class.
	Word
	// LBrace is "{".
	LBrace
	// RBrace is "}".
	RBrace
	// Comma is ",".
	Comma
	// Whitespace is a run of spaces, tabs, or line breaks.
	Whitespace
)

// String returns the token class name for diagnostics.
func (k Kind) String() string {
	switch k {
	case Number:
		return "number"
	case Word:
		return "word"
	case LBrace:
		return "{"
	case RBrace:
		return "}"
	case Comma:
		return ","
	case Whitespace:
		return "whitespace"
	default:
		return "unknown"
	}
}

// Token is one lexeme of a raw attribute value.
type Token struct {
	Kind Kind
	Text string
}

// Tokenize splits a raw attribute value into tokens.
func Tokenize(raw string) []Token {
	if raw == "" {
		return nil
	}
	tokens := make([]Token, 0, 8)
	i := 0
	for i < len(raw) {
		c := raw[i]
		switch {
		case c == '{':
			tokens = append(tokens, Token{Kind: LBrace, Text: "{"})
			i++
		case c == '}':
			tokens = append(tokens, Token{Kind: RBrace, Text: "}"})
			i++
		case c == ',':
			tokens = append(tokens, Token{Kind: Comma, Text: ","})
			i++
		case isSpace(c):
			start := i
			for i < len(raw) && isSpace(raw[i]) {
				i++
			}
			tokens = append(tokens, Token{Kind: Whitespace, Text: raw[start:i]})
		case startsNumber(raw[i:]):
			start := i
			for i < len(raw) && isNumberByte(raw[i]) {
				i++
			}
			tokens = append(tokens, Token{Kind: Number, Text: raw[start:i]})
		case isWordByte(c):
			start := i
			for i < len(raw) && isWordByte(raw[i]) {
				i++
			}
			tokens = append(tokens, Token{Kind: Word, Text: raw[start:i]})
		default:
			tokens = append(tokens, Token{Kind: Word, Text: raw[i : i+1]})
			i++
		}
	}
	return tokens
}

// Join concatenates the text of tokens[lo:hi].
func Join(tokens []Token, lo, hi int) string {
	if lo >= hi {
		return ""
	}
	var b strings.Builder
	for _, t := range tokens[lo:hi] {
		b.WriteString(t.Text)
	}
	return b.String()
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// startsNumber reports whether the remaining input begins like a numeric
// literal: a digit, a sign followed by a digit or decimal point, or a decimal
// point followed by a digit.
func startsNumber(rest string) bool {
	if rest == "" {
		return false
	}
	switch {
	case isDigit(rest[0]):
		return true
	case rest[0] == '+' || rest[0] == '-':
		if len(rest) < 2 {
			return false
		}
		return isDigit(rest[1]) || (rest[1] == '.' && len(rest) > 2 && isDigit(rest[2]))
	case rest[0] == '.':
		return len(rest) > 1 && isDigit(rest[1])
	default:
		return false
	}
}

func isNumberByte(c byte) bool {
	return isDigit(c) || c == '.' || c == '+' || c == '-' || c == 'e' || c == 'E'
}

func isWordByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', isDigit(c):
		return true
	case c == '.', c == '-', c == '_', c == '/', c == '*':
		return true
	default:
		return false
	}
}
