package deckschema

import (
	"fmt"

	deckerrors "github.com/simware/deckschema/errors"
)

// Assemble validates a raw document tree depth-first against the schema and
// returns the validated record tree with every violation found, aggregated
// into one flat list. An unrecognized root tag is a hard error: it usually
// indicates a schema/version mismatch rather than a bad attribute.
//
// Callers decide whether violations are fatal; informational violations
// never indicate an invalid document on their own.
func (s *Schema) Assemble(root *Element) (*Record, deckerrors.ViolationList) {
	if root == nil {
		return nil, deckerrors.ViolationList{
			deckerrors.New(deckerrors.CodeUnknownChild, "document has no root element", ""),
		}
	}
	et, ok := s.reg.lookup(root.Tag)
	if !ok {
		return nil, deckerrors.ViolationList{
			deckerrors.Violation{
				Code:     deckerrors.CodeUnknownChild,
				Severity: deckerrors.SeverityError,
				Field:    root.Tag,
				Path:     "/" + root.Tag,
				Message:  fmt.Sprintf("element tag %q is not declared in the schema", root.Tag),
			},
		}
	}
	return s.reg.validateElement(et, root, "/"+root.Tag)
}
