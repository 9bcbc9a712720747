package errors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Code identifies one class of validation problem with a stable string
// suitable for tooling and log filters.
type Code string

const (
	// CodeMissingRequired indicates a required attribute is absent.
	CodeMissingRequired Code = "deck-missing-required"
	// CodeGrammarMismatch indicates an attribute value does not conform to its declared grammar.
	CodeGrammarMismatch Code = "deck-grammar-mismatch"
	// CodeUnknownChild indicates a child element whose tag is not declared by the parent
	// or not present in the registry at all.
	CodeUnknownChild Code = "deck-unknown-child"
	// CodeUnknownAttribute indicates an attribute with no corresponding field specification.
	CodeUnknownAttribute Code = "deck-unknown-attribute"
	// CodeDuplicateField indicates the same attribute was supplied more than once.
	CodeDuplicateField Code = "deck-duplicate-field"
)

// Severity ranks a violation. Informational violations never block validation;
// callers decide whether error-tier violations are fatal.
type Severity uint8

const (
	// SeverityError marks a violation that indicates an invalid document.
	SeverityError Severity = iota
	// SeverityInfo marks a diagnostic kept for forward compatibility, such as
	// an attribute unknown to the current schema version.
	SeverityInfo
)

// String returns the severity label used in rendered violations.
func (s Severity) String() string {
	if s == SeverityInfo {
		return "info"
	}
	return "error"
}

// Violation describes a single validation problem with element and field
// context. Violations are collected over a full document pass, never raised
// one at a time.
//
//nolint:errname // public API name uses input-deck domain term.
type Violation struct {
	Code       Code
	Severity   Severity
	ElementTag string
	Field      string
	Path       string
	RawValue   string
	Message    string
	Expected   []string
}

// ViolationList is an error aggregating every violation found in one pass.
type ViolationList []Violation //nolint:errname // public API name, keep for compatibility.

// Error returns a compact summary of the collected violations.
func (v ViolationList) Error() string {
	switch len(v) {
	case 0:
		return "no violations"
	case 1:
		return v[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more)", v[0].Error(), len(v)-1)
	}
}

// Errors returns only the error-tier violations.
func (v ViolationList) Errors() ViolationList {
	return lo.Filter(v, func(item Violation, _ int) bool {
		return item.Severity == SeverityError
	})
}

// Infos returns only the informational violations.
func (v ViolationList) Infos() ViolationList {
	return lo.Filter(v, func(item Violation, _ int) bool {
		return item.Severity == SeverityInfo
	})
}

// HasErrors reports whether any error-tier violation is present.
func (v ViolationList) HasErrors() bool {
	return lo.SomeBy(v, func(item Violation) bool {
		return item.Severity == SeverityError
	})
}

// Error formats the violation for display, including code, message, and context.
func (v *Violation) Error() string {
	if v == nil {
		return "violation <nil>"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s] %s", v.Code, v.Message))
	if v.Path != "" {
		b.WriteString(fmt.Sprintf(" at %s", v.Path))
	}
	if v.Field != "" {
		b.WriteString(fmt.Sprintf(" (field %s)", v.Field))
	}
	if len(v.Expected) > 0 {
		b.WriteString(fmt.Sprintf(" (expected: %s)", strings.Join(v.Expected, ", ")))
	}
	if v.RawValue != "" {
		b.WriteString(fmt.Sprintf(" (actual: %q)", v.RawValue))
	}
	return b.String()
}

// New builds an error-tier violation with a code, message, and path.
func New(code Code, msg, path string) Violation {
	return Violation{Code: code, Severity: SeverityError, Message: msg, Path: path}
}

// Newf formats a message and builds an error-tier violation.
func Newf(code Code, path, format string, args ...any) Violation {
	return New(code, fmt.Sprintf(format, args...), path)
}

// AsViolations extracts a violation list from an error returned by Assemble
// and friends.
func AsViolations(err error) ([]Violation, bool) {
	list, ok := asViolationList(err)
	if !ok {
		return nil, false
	}
	return []Violation(list), true
}

func asViolationList(err error) (ViolationList, bool) {
	if err == nil {
		return nil, false
	}
	var list ViolationList
	if errors.As(err, &list) {
		return list, true
	}

	var listPtr *ViolationList
	if errors.As(err, &listPtr) && listPtr != nil {
		return *listPtr, true
	}

	return nil, false
}
