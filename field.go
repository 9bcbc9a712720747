package deckschema

// FieldKind distinguishes attribute-kind fields (a single string value) from
// element-kind fields (a named group of nested child records).
type FieldKind uint8

const (
	// KindAttribute is the default: the field is a string-valued attribute
	// validated against its grammar.
	KindAttribute FieldKind = iota
	// KindElement marks a field whose value is a list of nested child
	// records, validated recursively against the registry entry named by
	// the field's serialized name.
	KindElement
)

// FieldSpec declares one field of an element type.
//
// Invariants, enforced at registry construction: a required field has no
// default; an element-kind field has no grammar; an attribute-kind field
// must have one.
type FieldSpec struct {
	// Name is the field identifier, unique within its element type.
	Name string
	// Attribute is the serialized (wire) name. Empty means same as Name.
	// For element-kind fields it names the child element tag.
	Attribute string
	// Required marks absence as a validation error.
	Required bool
	// Default is the literal applied when an optional field is absent.
	Default string
	// Grammar describes the accepted value shapes for attribute-kind fields.
	Grammar Grammar
	// Kind selects attribute or element semantics.
	Kind FieldKind
}

// wireName returns the serialized attribute or child-tag name.
func (f FieldSpec) wireName() string {
	if f.Attribute != "" {
		return f.Attribute
	}
	return f.Name
}

// ElementDef declares one element type of the schema table.
//
// ElementDef values are plain data: the registry compiles them once at
// startup into an immutable form shared by all validation calls.
type ElementDef struct {
	// Tag is the external element name.
	Tag string
	// Fields is the ordered field list.
	Fields []FieldSpec
	// Children lists the tags that may appear as nested elements, each with
	// zero-or-more cardinality. A tag may name the element itself
	// (recursive nesting).
	Children []string
}
