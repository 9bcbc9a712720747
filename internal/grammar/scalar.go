package grammar

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/simware/deckschema/internal/token"
	"github.com/simware/deckschema/internal/value"
)

// IntegerMatcher accepts an optional sign followed by one or more digits.
type IntegerMatcher struct{}

// Parse implements Matcher.
func (IntegerMatcher) Parse(tokens []token.Token) (value.Value, error) {
	text, err := joined(tokens)
	if err != nil {
		return value.Value{}, err
	}
	if !isIntegerLexical(text) {
		return value.Value{}, fmt.Errorf("%q is not an integer", text)
	}
	i, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return value.Value{}, fmt.Errorf("integer %q out of range", text)
	}
	return value.NewInteger(i), nil
}

// Describe implements Matcher.
func (IntegerMatcher) Describe() string { return "integer" }

// RealMatcher accepts a floating-point literal with optional decimal point
// and optional e/E exponent.
type RealMatcher struct{}

// Parse implements Matcher.
func (RealMatcher) Parse(tokens []token.Token) (value.Value, error) {
	text, err := joined(tokens)
	if err != nil {
		return value.Value{}, err
	}
	return parseReal(text)
}

// Describe implements Matcher.
func (RealMatcher) Describe() string { return "real" }

// RealOrBlankMatcher accepts a real literal or an empty value. The source
// patterns spell this as an explicit blank alternative; it is a distinct
// grammar, not leniency in RealMatcher.
type RealOrBlankMatcher struct{}

// Parse implements Matcher.
func (RealOrBlankMatcher) Parse(tokens []token.Token) (value.Value, error) {
	text, err := joined(tokens)
	if err != nil {
		return value.Value{}, err
	}
	if text == "" {
		return value.NewBlank(), nil
	}
	return parseReal(text)
}

// Describe implements Matcher.
func (RealOrBlankMatcher) Describe() string { return "real or blank" }

// EnumMatcher accepts exactly one of a fixed set of literal tokens.
// Matching is case-sensitive with no partial matches.
type EnumMatcher struct {
	Tokens []string
}

// Parse implements Matcher.
func (m EnumMatcher) Parse(tokens []token.Token) (value.Value, error) {
	text, err := joined(tokens)
	if err != nil {
		return value.Value{}, err
	}
	for _, t := range m.Tokens {
		if text == t {
			return value.NewToken(text), nil
		}
	}
	return value.Value{}, fmt.Errorf("%q is not one of %s", text, strings.Join(m.Tokens, "|"))
}

// Describe implements Matcher.
func (m EnumMatcher) Describe() string {
	return "one of " + strings.Join(m.Tokens, "|")
}

// NameMatcher accepts barewords drawn from the restricted identifier
// character class used for mesh, region, and wildcard references.
type NameMatcher struct{}

// Parse implements Matcher.
func (NameMatcher) Parse(tokens []token.Token) (value.Value, error) {
	text, err := joined(tokens)
	if err != nil {
		return value.Value{}, err
	}
	if text == "" {
		return value.Value{}, fmt.Errorf("empty name")
	}
	for i := 0; i < len(text); i++ {
		if !isNameByte(text[i]) {
			return value.Value{}, fmt.Errorf("%q is not a valid name: bad character %q", text, text[i])
		}
	}
	return value.NewToken(text), nil
}

// Describe implements Matcher.
func (NameMatcher) Describe() string { return "name token" }

// PathMatcher accepts filesystem-flavored tokens: any characters except a
// short forbidden set and whitespace. This is the second bareword dialect of
// the source schema, deliberately looser than NameMatcher.
type PathMatcher struct{}

const pathForbidden = `*?<>|:";,`

// Parse implements Matcher.
func (PathMatcher) Parse(tokens []token.Token) (value.Value, error) {
	text, err := joined(tokens)
	if err != nil {
		return value.Value{}, err
	}
	if text == "" {
		return value.Value{}, fmt.Errorf("empty path")
	}
	if i := strings.IndexAny(text, pathForbidden); i >= 0 {
		return value.Value{}, fmt.Errorf("%q is not a valid path: bad character %q", text, text[i])
	}
	return value.NewToken(text), nil
}

// Describe implements Matcher.
func (PathMatcher) Describe() string { return "path token" }

func parseReal(text string) (value.Value, error) {
	if !isRealLexical(text) {
		return value.Value{}, fmt.Errorf("%q is not a real number", text)
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return value.Value{}, fmt.Errorf("real %q out of range", text)
	}
	return value.NewReal(f), nil
}

func isIntegerLexical(text string) bool {
	if text == "" {
		return false
	}
	i := 0
	if text[i] == '+' || text[i] == '-' {
		i++
		if i == len(text) {
			return false
		}
	}
	for ; i < len(text); i++ {
		if !isDigit(text[i]) {
			return false
		}
	}
	return true
}

// isRealLexical checks the floating-point shape: optional sign, digits with
// an optional decimal point (at least one digit on one side), optional e/E
// exponent with optional sign and mandatory digits.
func isRealLexical(text string) bool {
	if text == "" {
		return false
	}
	i := 0
	if text[i] == '+' || text[i] == '-' {
		i++
		if i == len(text) {
			return false
		}
	}
	intDigits := 0
	for i < len(text) && isDigit(text[i]) {
		i++
		intDigits++
	}
	if i < len(text) && text[i] == '.' {
		i++
		fracDigits := 0
		for i < len(text) && isDigit(text[i]) {
			i++
			fracDigits++
		}
		if intDigits == 0 && fracDigits == 0 {
			return false
		}
	} else if intDigits == 0 {
		return false
	}
	if i < len(text) && (text[i] == 'e' || text[i] == 'E') {
		i++
		if i == len(text) {
			return false
		}
		if text[i] == '+' || text[i] == '-' {
			i++
		}
		expDigits := 0
		for i < len(text) && isDigit(text[i]) {
			i++
			expDigits++
		}
		if expDigits == 0 {
			return false
		}
	}
	return i == len(text)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isNameByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', isDigit(c):
		return true
	case c == '.', c == '-', c == '_', c == '/', c == '*', c == '[', c == ']':
		return true
	default:
		return false
	}
}
