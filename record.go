package deckschema

import (
	"github.com/simware/deckschema/internal/value"
)

// Value is the resolved, typed form of one attribute. See the value kinds
// for the closed set of variants (integer, real, token, vector, array,
// matrix, deferred, blank).
type Value = value.Value

// Value kind re-exports for callers switching on resolved variants.
const (
	ValueBlank    = value.Blank
	ValueInteger  = value.Integer
	ValueReal     = value.Real
	ValueToken    = value.Token
	ValueVector   = value.Vector
	ValueArray    = value.Array
	ValueMatrix   = value.Matrix
	ValueDeferred = value.Deferred
)

// Record is the validated instance of one element: resolved field values in
// declaration order, named child groups for element-kind fields, and the
// ordered list of remaining child records. Records are immutable once
// returned by Assemble.
type Record struct {
	tag      string
	order    []string
	fields   map[string]Value
	groups   map[string][]*Record
	children []*Record
}

// Tag returns the element tag the record was validated as.
func (r *Record) Tag() string { return r.tag }

// Value returns the resolved value for a field name. The boolean is false
// for fields excluded after a grammar mismatch and for element-kind fields.
func (r *Record) Value(name string) (Value, bool) {
	v, ok := r.fields[name]
	return v, ok
}

// Fields returns the resolved field names in declaration order.
func (r *Record) Fields() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Group returns the validated child records of an element-kind field.
// Absent optional groups are empty, never nil semantics beyond emptiness.
func (r *Record) Group(name string) []*Record {
	return r.groups[name]
}

// Children returns the validated nested records, in document order.
func (r *Record) Children() []*Record { return r.children }

// Equal reports deep equality of two record trees.
func (r *Record) Equal(other *Record) bool {
	if r == nil || other == nil {
		return r == other
	}
	if r.tag != other.tag || len(r.order) != len(other.order) ||
		len(r.children) != len(other.children) || len(r.groups) != len(other.groups) {
		return false
	}
	for i, name := range r.order {
		if other.order[i] != name {
			return false
		}
		if !r.fields[name].Equal(other.fields[name]) {
			return false
		}
	}
	for name, group := range r.groups {
		otherGroup, ok := other.groups[name]
		if !ok || len(group) != len(otherGroup) {
			return false
		}
		for i := range group {
			if !group[i].Equal(otherGroup[i]) {
				return false
			}
		}
	}
	for i := range r.children {
		if !r.children[i].Equal(other.children[i]) {
			return false
		}
	}
	return true
}
