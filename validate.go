package deckschema

import (
	"fmt"

	deckerrors "github.com/simware/deckschema/errors"
	"github.com/simware/deckschema/internal/deferred"
	"github.com/simware/deckschema/internal/token"
	"github.com/simware/deckschema/internal/value"
)

// validateElement applies one compiled element type to one raw element. It
// always completes the full pass, collecting violations instead of stopping
// at the first problem.
func (r *registry) validateElement(et *elementType, el *Element, path string) (*Record, deckerrors.ViolationList) {
	var violations deckerrors.ViolationList

	rec := &Record{
		tag:    et.tag,
		fields: make(map[string]Value, len(et.fields)),
		groups: make(map[string][]*Record, len(et.elementFields)),
	}
	// Absent optional child groups stay empty, never missing.
	groupByTag := make(map[string]string, len(et.elementFields))
	for _, i := range et.elementFields {
		f := et.fields[i]
		rec.groups[f.spec.Name] = []*Record{}
		groupByTag[f.wire] = f.spec.Name
	}

	attrs, dups := firstAttrOccurrences(el)
	for _, d := range dups {
		violations = append(violations, deckerrors.Violation{
			Code:       deckerrors.CodeDuplicateField,
			Severity:   deckerrors.SeverityError,
			ElementTag: et.tag,
			Field:      d.Name,
			Path:       path,
			RawValue:   d.Value,
			Message:    fmt.Sprintf("attribute %q supplied more than once", d.Name),
		})
	}

	for _, cf := range et.fields {
		if cf.spec.Kind == KindElement {
			continue
		}
		raw, present := attrs[cf.wire]
		switch {
		case !present && cf.spec.Required:
			violations = append(violations, deckerrors.Violation{
				Code:       deckerrors.CodeMissingRequired,
				Severity:   deckerrors.SeverityError,
				ElementTag: et.tag,
				Field:      cf.spec.Name,
				Path:       path,
				Message:    fmt.Sprintf("required attribute %q is missing", cf.wire),
			})
		case !present:
			rec.fields[cf.spec.Name] = cf.fallback
			rec.order = append(rec.order, cf.spec.Name)
		default:
			v, vio := resolveAttribute(cf, raw, et.tag, path)
			if vio != nil {
				violations = append(violations, *vio)
				continue
			}
			rec.fields[cf.spec.Name] = v
			rec.order = append(rec.order, cf.spec.Name)
		}
	}

	reported := make(map[string]struct{}, len(el.Attrs))
	for _, a := range el.Attrs {
		if _, done := reported[a.Name]; done {
			continue
		}
		reported[a.Name] = struct{}{}
		if _, declared := et.byWire[a.Name]; !declared {
			violations = append(violations, deckerrors.Violation{
				Code:       deckerrors.CodeUnknownAttribute,
				Severity:   deckerrors.SeverityInfo,
				ElementTag: et.tag,
				Field:      a.Name,
				Path:       path,
				RawValue:   a.Value,
				Message:    fmt.Sprintf("attribute %q is not declared", a.Name),
			})
		}
	}

	occurrence := make(map[string]int, len(el.Children))
	for _, child := range el.Children {
		childPath := fmt.Sprintf("%s/%s[%d]", path, child.Tag, occurrence[child.Tag])
		occurrence[child.Tag]++

		groupName, grouped := groupByTag[child.Tag]
		_, allowed := et.childTags[child.Tag]
		if !grouped && !allowed {
			violations = append(violations, deckerrors.Violation{
				Code:       deckerrors.CodeUnknownChild,
				Severity:   deckerrors.SeverityError,
				ElementTag: et.tag,
				Field:      child.Tag,
				Path:       childPath,
				Message:    fmt.Sprintf("child element %q is not allowed in %q", child.Tag, et.tag),
			})
			continue
		}

		// Registry construction guarantees declared child tags resolve.
		childType := r.types[child.Tag]
		childRec, childViolations := r.validateElement(childType, child, childPath)
		violations = append(violations, childViolations...)
		if grouped {
			rec.groups[groupName] = append(rec.groups[groupName], childRec)
		} else {
			rec.children = append(rec.children, childRec)
		}
	}

	for _, i := range et.elementFields {
		f := et.fields[i]
		if f.spec.Required && len(rec.groups[f.spec.Name]) == 0 {
			violations = append(violations, deckerrors.Violation{
				Code:       deckerrors.CodeMissingRequired,
				Severity:   deckerrors.SeverityError,
				ElementTag: et.tag,
				Field:      f.spec.Name,
				Path:       path,
				Message:    fmt.Sprintf("required child element %q is missing", f.wire),
			})
		}
	}

	return rec, violations
}

// resolveAttribute turns one raw attribute string into its resolved value,
// checking the deferred-expression escape before grammar matching.
func resolveAttribute(cf compiledField, raw, tag, path string) (Value, *deckerrors.Violation) {
	if deferred.IsExpression(raw) {
		return value.NewDeferred(raw), nil
	}
	v, err := cf.matcher.Parse(token.Tokenize(raw))
	if err != nil {
		return Value{}, &deckerrors.Violation{
			Code:       deckerrors.CodeGrammarMismatch,
			Severity:   deckerrors.SeverityError,
			ElementTag: tag,
			Field:      cf.spec.Name,
			Path:       path,
			RawValue:   raw,
			Expected:   []string{cf.matcher.Describe()},
			Message:    fmt.Sprintf("invalid value for %q: %v", cf.wire, err),
		}
	}
	return v, nil
}

type duplicateAttr struct {
	Name  string
	Value string
}

// firstAttrOccurrences maps attribute names to their first value and reports
// later duplicate occurrences.
func firstAttrOccurrences(el *Element) (map[string]string, []duplicateAttr) {
	attrs := make(map[string]string, len(el.Attrs))
	var dups []duplicateAttr
	for _, a := range el.Attrs {
		if _, seen := attrs[a.Name]; seen {
			dups = append(dups, duplicateAttr{Name: a.Name, Value: a.Value})
			continue
		}
		attrs[a.Name] = a.Value
	}
	return attrs, dups
}
