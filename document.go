package deckschema

import (
	"encoding/xml"
	"fmt"
	"io"
	"sort"

	gojson "github.com/goccy/go-json"
)

// Attr is one raw attribute occurrence. Attributes are kept as an ordered
// list rather than a map so duplicate occurrences survive to validation.
type Attr struct {
	Name  string
	Value string
}

// Element is one raw, unvalidated node of an input deck, as produced by a
// document reader.
type Element struct {
	Tag      string
	Attrs    []Attr
	Children []*Element
}

// Attr returns the first value for the given attribute name.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// ReadXML parses an XML input deck into the raw element model. Character
// data, comments, and processing instructions are skipped: decks carry all
// information in attributes and nesting.
func ReadXML(r io.Reader) (*Element, error) {
	dec := xml.NewDecoder(r)
	var root *Element
	var stack []*Element
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read xml: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{Tag: t.Name.Local}
			for _, a := range t.Attr {
				if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" || a.Name.Space != "" {
					continue
				}
				el.Attrs = append(el.Attrs, Attr{Name: a.Name.Local, Value: a.Value})
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("read xml: multiple root elements")
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			if len(stack) == 0 {
				return nil, fmt.Errorf("read xml: unbalanced end element %q", t.Name.Local)
			}
			stack = stack[:len(stack)-1]
		}
	}
	if root == nil {
		return nil, fmt.Errorf("read xml: no root element")
	}
	return root, nil
}

type jsonElement struct {
	Tag        string            `json:"tag"`
	Attributes map[string]string `json:"attributes"`
	Children   []jsonElement     `json:"children"`
}

// ReadJSON parses the JSON raw-document form. Attribute order is not
// significant in JSON objects, so attributes are sorted by name to keep
// validation output deterministic.
func ReadJSON(r io.Reader) (*Element, error) {
	var doc jsonElement
	dec := gojson.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("read json: %w", err)
	}
	if doc.Tag == "" {
		return nil, fmt.Errorf("read json: missing root tag")
	}
	return doc.element(), nil
}

func (j jsonElement) element() *Element {
	el := &Element{Tag: j.Tag}
	if len(j.Attributes) > 0 {
		names := make([]string, 0, len(j.Attributes))
		for name := range j.Attributes {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			el.Attrs = append(el.Attrs, Attr{Name: name, Value: j.Attributes[name]})
		}
	}
	for _, child := range j.Children {
		el.Children = append(el.Children, child.element())
	}
	return el
}
