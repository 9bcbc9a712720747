package deckschema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simware/deckschema"
)

func TestNewRejectsMalformedTables(t *testing.T) {
	tests := []struct {
		name    string
		defs    []deckschema.ElementDef
		wantErr string
	}{
		{
			name: "duplicate tag",
			defs: []deckschema.ElementDef{
				{Tag: "Box"},
				{Tag: "Box"},
			},
			wantErr: "duplicate element tag",
		},
		{
			name: "empty tag",
			defs: []deckschema.ElementDef{
				{Tag: ""},
			},
			wantErr: "empty tag",
		},
		{
			name: "dangling child reference",
			defs: []deckschema.ElementDef{
				{Tag: "Geometry", Children: []string{"Sphere"}},
			},
			wantErr: "unknown child tag",
		},
		{
			name: "dangling element-kind field reference",
			defs: []deckschema.ElementDef{
				{Tag: "Solvers", Fields: []deckschema.FieldSpec{
					{Name: "solvers", Attribute: "Solver", Kind: deckschema.KindElement},
				}},
			},
			wantErr: "unknown element tag",
		},
		{
			name: "duplicate field name",
			defs: []deckschema.ElementDef{
				{Tag: "Box", Fields: []deckschema.FieldSpec{
					{Name: "strike", Grammar: deckschema.Real()},
					{Name: "strike", Grammar: deckschema.Real()},
				}},
			},
			wantErr: "duplicates field",
		},
		{
			name: "colliding serialized names",
			defs: []deckschema.ElementDef{
				{Tag: "Box", Fields: []deckschema.FieldSpec{
					{Name: "lower", Attribute: "xMin", Grammar: deckschema.Tuple(3, deckschema.Real())},
					{Name: "min", Attribute: "xMin", Grammar: deckschema.Tuple(3, deckschema.Real())},
				}},
			},
			wantErr: "share attribute name",
		},
		{
			name: "element-kind fields sharing a child tag",
			defs: []deckschema.ElementDef{
				{Tag: "Solver"},
				{Tag: "Solvers", Fields: []deckschema.FieldSpec{
					{Name: "primary", Attribute: "Solver", Kind: deckschema.KindElement},
					{Name: "secondary", Attribute: "Solver", Kind: deckschema.KindElement},
				}},
			},
			wantErr: "share child tag",
		},
		{
			name: "required with default",
			defs: []deckschema.ElementDef{
				{Tag: "Box", Fields: []deckschema.FieldSpec{
					{Name: "strike", Required: true, Default: "-90", Grammar: deckschema.Real()},
				}},
			},
			wantErr: "required and has a default",
		},
		{
			name: "attribute field without grammar",
			defs: []deckschema.ElementDef{
				{Tag: "Box", Fields: []deckschema.FieldSpec{
					{Name: "strike"},
				}},
			},
			wantErr: "no grammar",
		},
		{
			name: "element-kind field with grammar",
			defs: []deckschema.ElementDef{
				{Tag: "Solvers", Fields: []deckschema.FieldSpec{
					{Name: "solvers", Attribute: "Solvers", Kind: deckschema.KindElement, Grammar: deckschema.Real()},
				}},
			},
			wantErr: "declares a grammar",
		},
		{
			name: "default does not parse",
			defs: []deckschema.ElementDef{
				{Tag: "Box", Fields: []deckschema.FieldSpec{
					{Name: "strike", Default: "north", Grammar: deckschema.Real()},
				}},
			},
			wantErr: "default",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := deckschema.New(tc.defs)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestDefaultsResolveAtBuildTime(t *testing.T) {
	schema, err := deckschema.New([]deckschema.ElementDef{
		{Tag: "Output", Fields: []deckschema.FieldSpec{
			{Name: "interval", Default: "10", Grammar: deckschema.Integer()},
			{Name: "fields", Grammar: deckschema.Array(deckschema.Name())},
			{Name: "table", Grammar: deckschema.Matrix(deckschema.Real())},
			{Name: "target", Default: "$outputDir", Grammar: deckschema.Path()},
			{Name: "dt", Grammar: deckschema.RealOrBlank()},
		}},
	})
	require.NoError(t, err)

	rec, violations := schema.Assemble(&deckschema.Element{Tag: "Output"})
	require.Empty(t, violations)

	interval, _ := rec.Value("interval")
	assert.Equal(t, deckschema.ValueInteger, interval.Kind())
	assert.Equal(t, int64(10), interval.Int())

	fields, _ := rec.Value("fields")
	assert.Equal(t, deckschema.ValueArray, fields.Kind())
	assert.Equal(t, 0, fields.Len())

	table, _ := rec.Value("table")
	assert.Equal(t, deckschema.ValueMatrix, table.Kind())
	assert.Equal(t, 0, table.Len())

	target, _ := rec.Value("target")
	assert.Equal(t, deckschema.ValueDeferred, target.Kind())
	assert.Equal(t, "$outputDir", target.Raw())

	dt, _ := rec.Value("dt")
	assert.True(t, dt.IsBlank())
}

func TestSchemaTags(t *testing.T) {
	schema := geometrySchema(t)
	assert.Equal(t, []string{"Box", "Geometry", "Group", "Problem", "Solver", "Solvers"}, schema.Tags())
	assert.True(t, schema.Lookup("Box"))
	assert.False(t, schema.Lookup("Sphere"))
}
