package deckschema

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	gojson "github.com/goccy/go-json"
)

// tableFile is the on-disk JSON schema table, typically generated from the
// simulation's schema definition.
type tableFile struct {
	Elements []tableElement `json:"elements"`
}

type tableElement struct {
	Tag      string       `json:"tag"`
	Fields   []tableField `json:"fields"`
	Children []string     `json:"children"`
}

type tableField struct {
	Name      string `json:"name"`
	Attribute string `json:"attribute"`
	Required  bool   `json:"required"`
	Default   string `json:"default"`
	Grammar   string `json:"grammar"`
	Kind      string `json:"kind"`
}

// decodeTable reads a JSON schema table into ElementDefs.
func decodeTable(r io.Reader) ([]ElementDef, error) {
	var file tableFile
	dec := gojson.NewDecoder(r)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode schema table: %w", err)
	}
	if len(file.Elements) == 0 {
		return nil, fmt.Errorf("decode schema table: no elements")
	}

	defs := make([]ElementDef, 0, len(file.Elements))
	for _, te := range file.Elements {
		def := ElementDef{Tag: te.Tag, Children: te.Children}
		for _, tf := range te.Fields {
			spec, err := tf.fieldSpec(te.Tag)
			if err != nil {
				return nil, err
			}
			def.Fields = append(def.Fields, spec)
		}
		defs = append(defs, def)
	}
	return defs, nil
}

func (tf tableField) fieldSpec(tag string) (FieldSpec, error) {
	spec := FieldSpec{
		Name:      tf.Name,
		Attribute: tf.Attribute,
		Required:  tf.Required,
		Default:   tf.Default,
	}
	switch tf.Kind {
	case "", "attribute":
		g, err := ParseGrammar(tf.Grammar)
		if err != nil {
			return spec, fmt.Errorf("schema table: element %q field %q: %w", tag, tf.Name, err)
		}
		spec.Grammar = g
	case "element":
		spec.Kind = KindElement
		if tf.Grammar != "" {
			return spec, fmt.Errorf("schema table: element %q field %q: element-kind field declares grammar %q",
				tag, tf.Name, tf.Grammar)
		}
	default:
		return spec, fmt.Errorf("schema table: element %q field %q: unknown kind %q", tag, tf.Name, tf.Kind)
	}
	return spec, nil
}

// ParseGrammar parses the schema-table grammar notation:
//
//	integer | real | real? | name | path
//	enum:a|b|c
//	tuple:<scalar>:<n>
//	array:<scalar>
//	matrix:<scalar>
func ParseGrammar(notation string) (Grammar, error) {
	if notation == "" {
		return Grammar{}, fmt.Errorf("empty grammar notation")
	}
	head, rest, _ := strings.Cut(notation, ":")
	switch head {
	case "integer", "real", "real?", "name", "path":
		if rest != "" {
			return Grammar{}, fmt.Errorf("grammar %q takes no arguments", head)
		}
		return scalarGrammar(head)
	case "enum":
		if rest == "" {
			return Grammar{}, fmt.Errorf("enum grammar requires tokens, e.g. %q", "enum:silent|error|warning")
		}
		return Enum(strings.Split(rest, "|")...), nil
	case "tuple":
		scalar, arityText, ok := strings.Cut(rest, ":")
		if !ok {
			return Grammar{}, fmt.Errorf("tuple grammar requires a scalar and arity, e.g. %q", "tuple:real:3")
		}
		inner, err := scalarGrammar(scalar)
		if err != nil {
			return Grammar{}, err
		}
		arity, err := strconv.Atoi(arityText)
		if err != nil || arity < 1 {
			return Grammar{}, fmt.Errorf("invalid tuple arity %q", arityText)
		}
		return Tuple(arity, inner), nil
	case "array":
		inner, err := scalarGrammar(rest)
		if err != nil {
			return Grammar{}, err
		}
		return Array(inner), nil
	case "matrix":
		inner, err := scalarGrammar(rest)
		if err != nil {
			return Grammar{}, err
		}
		return Matrix(inner), nil
	default:
		return Grammar{}, fmt.Errorf("unknown grammar %q", notation)
	}
}

func scalarGrammar(name string) (Grammar, error) {
	switch name {
	case "integer":
		return Integer(), nil
	case "real":
		return Real(), nil
	case "real?":
		return RealOrBlank(), nil
	case "name":
		return Name(), nil
	case "path":
		return Path(), nil
	default:
		if tokens, ok := strings.CutPrefix(name, "enum="); ok && tokens != "" {
			return Enum(strings.Split(tokens, "|")...), nil
		}
		return Grammar{}, fmt.Errorf("unknown scalar grammar %q", name)
	}
}
