package deckschema

import (
	"fmt"
	"sort"

	"github.com/samber/lo"

	"github.com/simware/deckschema/internal/deferred"
	"github.com/simware/deckschema/internal/grammar"
	"github.com/simware/deckschema/internal/token"
	"github.com/simware/deckschema/internal/value"
)

// registry is the compiled, immutable schema table. It is built once and
// shared read-only across all validation calls.
type registry struct {
	types map[string]*elementType
	tags  []string
}

// elementType is the compiled form of one ElementDef.
type elementType struct {
	tag           string
	fields        []compiledField
	byWire        map[string]int
	elementFields []int
	childTags     map[string]struct{}
}

// compiledField carries a FieldSpec with its matcher and pre-resolved
// default, so per-document validation does no default parsing.
type compiledField struct {
	spec     FieldSpec
	wire     string
	matcher  grammar.Matcher
	fallback value.Value
}

// newRegistry compiles the schema table, failing on any malformed entry:
// duplicate tags, duplicate field or wire names, dangling child references,
// grammar/kind conflicts, required fields with defaults, and defaults that
// do not parse under their own grammar. A malformed table indicates a broken
// deployment and is never a per-document condition.
func newRegistry(defs []ElementDef) (*registry, error) {
	reg := &registry{types: make(map[string]*elementType, len(defs))}
	for _, def := range defs {
		if def.Tag == "" {
			return nil, fmt.Errorf("schema registry: element with empty tag")
		}
		if _, exists := reg.types[def.Tag]; exists {
			return nil, fmt.Errorf("schema registry: duplicate element tag %q", def.Tag)
		}
		et, err := compileElement(def)
		if err != nil {
			return nil, err
		}
		reg.types[def.Tag] = et
	}

	// Child references, including element-kind field tags, must resolve.
	for _, et := range reg.types {
		for tag := range et.childTags {
			if _, ok := reg.types[tag]; !ok {
				return nil, fmt.Errorf("schema registry: element %q declares unknown child tag %q", et.tag, tag)
			}
		}
		for _, i := range et.elementFields {
			tag := et.fields[i].wire
			if _, ok := reg.types[tag]; !ok {
				return nil, fmt.Errorf("schema registry: element %q field %q references unknown element tag %q",
					et.tag, et.fields[i].spec.Name, tag)
			}
		}
	}

	reg.tags = lo.Keys(reg.types)
	sort.Strings(reg.tags)
	return reg, nil
}

func compileElement(def ElementDef) (*elementType, error) {
	et := &elementType{
		tag:       def.Tag,
		fields:    make([]compiledField, 0, len(def.Fields)),
		byWire:    make(map[string]int, len(def.Fields)),
		childTags: make(map[string]struct{}, len(def.Children)),
	}

	names := make(map[string]struct{}, len(def.Fields))
	elementWires := make(map[string]string)
	for _, spec := range def.Fields {
		if spec.Name == "" {
			return nil, fmt.Errorf("schema registry: element %q has a field with empty name", def.Tag)
		}
		if _, dup := names[spec.Name]; dup {
			return nil, fmt.Errorf("schema registry: element %q duplicates field %q", def.Tag, spec.Name)
		}
		names[spec.Name] = struct{}{}

		cf, err := compileField(def.Tag, spec)
		if err != nil {
			return nil, err
		}

		idx := len(et.fields)
		et.fields = append(et.fields, cf)
		if spec.Kind == KindElement {
			if prev, dup := elementWires[cf.wire]; dup {
				return nil, fmt.Errorf("schema registry: element %q fields %q and %q share child tag %q",
					def.Tag, prev, spec.Name, cf.wire)
			}
			elementWires[cf.wire] = spec.Name
			et.elementFields = append(et.elementFields, idx)
			continue
		}
		if prev, dup := et.byWire[cf.wire]; dup {
			return nil, fmt.Errorf("schema registry: element %q fields %q and %q share attribute name %q",
				def.Tag, et.fields[prev].spec.Name, spec.Name, cf.wire)
		}
		et.byWire[cf.wire] = idx
	}

	for _, tag := range lo.Uniq(def.Children) {
		if tag == "" {
			return nil, fmt.Errorf("schema registry: element %q declares empty child tag", def.Tag)
		}
		et.childTags[tag] = struct{}{}
	}
	return et, nil
}

func compileField(tag string, spec FieldSpec) (compiledField, error) {
	cf := compiledField{spec: spec, wire: spec.wireName()}

	if spec.Kind == KindElement {
		if !spec.Grammar.IsZero() {
			return cf, fmt.Errorf("schema registry: element %q field %q is element-kind but declares a grammar",
				tag, spec.Name)
		}
		if spec.Default != "" {
			return cf, fmt.Errorf("schema registry: element %q field %q is element-kind but declares a default",
				tag, spec.Name)
		}
		return cf, nil
	}

	if spec.Grammar.IsZero() {
		return cf, fmt.Errorf("schema registry: element %q field %q has no grammar", tag, spec.Name)
	}
	cf.matcher = spec.Grammar.matcher

	if spec.Required {
		if spec.Default != "" {
			return cf, fmt.Errorf("schema registry: element %q field %q is required and has a default",
				tag, spec.Name)
		}
		return cf, nil
	}

	fallback, err := resolveDefault(cf.matcher, spec.Default)
	if err != nil {
		return cf, fmt.Errorf("schema registry: element %q field %q default %q: %w",
			tag, spec.Name, spec.Default, err)
	}
	cf.fallback = fallback
	return cf, nil
}

// resolveDefault parses a default literal under the field's own grammar at
// build time. An empty literal resolves to the kind-specific empty value.
func resolveDefault(m grammar.Matcher, literal string) (value.Value, error) {
	if literal == "" {
		switch m.(type) {
		case grammar.ArrayMatcher:
			return value.NewArray(nil), nil
		case grammar.MatrixMatcher:
			return value.NewMatrix(nil), nil
		default:
			return value.NewBlank(), nil
		}
	}
	if deferred.IsExpression(literal) {
		return value.NewDeferred(literal), nil
	}
	return m.Parse(token.Tokenize(literal))
}

// lookup resolves an element tag to its compiled type.
func (r *registry) lookup(tag string) (*elementType, bool) {
	et, ok := r.types[tag]
	return et, ok
}
